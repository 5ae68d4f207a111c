package commands

import (
	"errors"
	"fmt"
	"io"

	"taskcli/internal/exitcode"
	"taskcli/internal/logger"
	"taskcli/internal/service"

	"go.uber.org/zap"
)

var (
	ErrIDRequired          = errors.New("task id required")
	ErrTooManyArgs         = errors.New("too many arguments")
	ErrDescriptionRequired = errors.New("description required")
)

// handleServiceError reports err and returns the exit code. A missing task
// is not a failure: the message goes to out and the exit code is Success.
func handleServiceError(out, errOut io.Writer, err error) int {
	var businessErr *service.BusinessError
	if !errors.As(err, &businessErr) {
		logger.Error("CMD: unexpected error", err)
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}

	code := mapBusinessErrorToExit(businessErr.Code)
	logger.Debug("CMD: business error",
		zap.String("error_code", businessErr.Code),
		zap.Int("exit_code", code))

	switch businessErr.Code {
	case service.CodeNotFound:
		fmt.Fprintln(out, businessErr.Message)
	case service.CodePersistence:
		fmt.Fprintf(errOut, "error: %s: %v\n", businessErr.Message, businessErr.Err)
	default:
		fmt.Fprintf(errOut, "error: %s\n", businessErr.Message)
	}
	return code
}

func mapBusinessErrorToExit(code string) int {
	switch code {
	case service.CodeNotFound:
		return exitcode.Success
	case service.CodeValidation:
		return exitcode.UserError
	case service.CodePersistence:
		return exitcode.StorageError
	default:
		return exitcode.UserError
	}
}

func userError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
