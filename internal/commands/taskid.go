package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTaskID reads the single positional id argument.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIDRequired
	}
	if len(args) > 1 {
		return 0, ErrTooManyArgs
	}

	raw := strings.TrimSpace(args[0])
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}
