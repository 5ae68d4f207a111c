// Package output renders task snapshots for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"taskcli/internal/models/task"
)

const (
	NoTasksMessage = "No tasks found."

	// Separator is printed under the table header.
	Separator = "--------------------------------------------------"
)

// FormatTasks writes the task table, or NoTasksMessage for an empty list.
func FormatTasks(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, NoTasksMessage)
		return
	}

	fmt.Fprintf(w, "%-4s %-6s %s\n", "ID", "Done", "Description")
	fmt.Fprintln(w, Separator)
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatTask writes one row: "{ID:<4} {[x]|[ ]:<6} {DESCRIPTION}".
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%-4d %-6s %s\n", t.ID, checkbox(t), normalizeDescription(t.Description))
}

// FormatTasksJSON writes the tasks as an indented JSON array.
func FormatTasksJSON(w io.Writer, tasks []task.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromTaskList(tasks)); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return nil
}

func checkbox(t task.Task) string {
	if t.Done() {
		return "[x]"
	}
	return "[ ]"
}

// normalizeDescription keeps each task on a single table row.
func normalizeDescription(description string) string {
	description = strings.ReplaceAll(description, "\r", " ")
	return strings.ReplaceAll(description, "\n", " ")
}
