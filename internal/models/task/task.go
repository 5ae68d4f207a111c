package task

import (
	"encoding/json"
	"fmt"
	"time"
)

type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Status string

const StatusTodo Status = "todo"
const StatusDone Status = "done"

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusDone
}

// Done mirrors the legacy boolean completion flag.
func (t Task) Done() bool {
	return t.Status == StatusDone
}

// layouts accepted when reading timestamps. Older task files were written
// without a UTC offset.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// stored is the on-disk shape, including the legacy "done" flag.
type stored struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Done        *bool  `json:"done,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// UnmarshalJSON backfills Status from the legacy "done" flag when the
// status field is missing. The flag itself is not kept.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw stored
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	createdAt, err := parseTimestamp(raw.CreatedAt)
	if err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(raw.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updated_at: %w", err)
	}

	status := raw.Status
	if status == "" {
		status = StatusTodo
		if raw.Done != nil && *raw.Done {
			status = StatusDone
		}
	}

	*t = Task{
		ID:          raw.ID,
		Description: raw.Description,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	return nil
}
