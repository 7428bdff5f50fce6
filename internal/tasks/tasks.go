// Package tasks manages the user's personal cybersecurity task list.
// Tasks live in memory for the session; indices in the public API are
// 1-based to mirror the numbering shown to the user.
package tasks

import (
	"fmt"
	"strings"
	"time"
)

// Task is a single to-do item. Completion is one-way: once completed a task
// never reverts to pending.
type Task struct {
	Description string
	DueDate     *time.Time
	Completed   bool
}

// List holds the ordered task list. Tasks are never deleted.
type List struct {
	tasks []Task
}

// NewList returns an empty task list.
func NewList() *List {
	return &List{}
}

// Len reports the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// Tasks returns a copy of the current tasks for read-only inspection.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Add appends a task and returns the user-facing confirmation. Empty
// descriptions are rejected upstream by the dialogue flow; Add itself never
// refuses.
func (l *List) Add(description string, dueDate *time.Time) string {
	l.tasks = append(l.tasks, Task{Description: description, DueDate: dueDate})
	if dueDate != nil {
		return fmt.Sprintf("Task '%s' has been added to your list with due date: %s.", description, dueDate.Format("2006-01-02"))
	}
	return fmt.Sprintf("Task '%s' has been added to your list.", description)
}

// ListText renders the numbered task list, or a "no tasks" message.
func (l *List) ListText() string {
	if len(l.tasks) == 0 {
		return "You currently have no tasks."
	}

	var sb strings.Builder
	sb.WriteString("\n--- Your Cybersecurity Tasks ---\n")
	for i, task := range l.tasks {
		status := "⏳ Pending"
		if task.Completed {
			status = "✅ Completed"
		}
		due := ""
		if task.DueDate != nil {
			due = fmt.Sprintf(" (Due: %s)", task.DueDate.Format("2006-01-02"))
		}
		fmt.Fprintf(&sb, "%d. %s%s - %s\n", i+1, task.Description, due, status)
	}
	return sb.String()
}

// Complete marks the task at the given 1-based number as completed.
// Out-of-range numbers and already-completed tasks leave the list untouched
// and report why. The (text, ok) pair tells the caller whether anything
// actually changed.
func (l *List) Complete(number int) (string, bool) {
	if number <= 0 || number > len(l.tasks) {
		return "Invalid task number. Please provide a number from the list.", false
	}

	task := &l.tasks[number-1]
	if task.Completed {
		return fmt.Sprintf("Task '%s' is already marked as completed.", task.Description), false
	}

	task.Completed = true
	return fmt.Sprintf("Task '%s' marked as completed! Well done!", task.Description), true
}
