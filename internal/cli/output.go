package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amirphiladam2/Actionable-sub001/internal/tasks"
)

// printData writes v as JSON when format is json and as YAML otherwise
func printData(w io.Writer, format string, v any) error {
	if strings.EqualFold(format, "json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// printTasks writes a task list in the requested format
func printTasks(w io.Writer, format string, list []tasks.Task) error {
	if !strings.EqualFold(format, "table") {
		return printData(w, format, list)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return nil
	}
	for _, t := range list {
		fmt.Fprintln(w, taskLine(t))
	}
	return nil
}

func taskLine(t tasks.Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	due := "-"
	if t.HasDueDate() {
		due = t.DueDate.Format("2006-01-02 15:04")
	}
	category := t.Category
	if category == "" {
		category = "-"
	}
	return fmt.Sprintf("%s %-36s  %-6s  %-16s  %-12s  %s", mark, t.ID, t.Priority, due, category, t.Title)
}
