// Package exitcode defines the process exit codes of task-tracker.
package exitcode

const (
	Success = 0

	// UserError covers unknown commands or flags, missing or non-numeric
	// ids and empty descriptions.
	UserError = 1

	// ConfigError means the config file could not be read or is invalid.
	ConfigError = 2

	// StorageError means the task file could not be written.
	StorageError = 3
)
