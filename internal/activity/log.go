// Package activity keeps the in-memory audit trail of everything the
// assistant does during a session. Entries are append-only and live for the
// lifetime of the process; nothing is persisted to disk.
package activity

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a single timestamped audit record.
type Entry struct {
	Timestamp time.Time
	Action    string
	Details   string
}

// Log is an append-only ordered list of entries. It is owned by a single
// assistant instance and mutated only from the sequential input path, so it
// needs no locking.
type Log struct {
	entries []Entry
	now     func() time.Time
}

// NewLog returns an empty log stamping entries with time.Now.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// NewLogWithClock returns an empty log with an injected clock for tests.
func NewLogWithClock(now func() time.Time) *Log {
	return &Log{now: now}
}

// Append records an action. Timestamps are assigned here and never change.
func (l *Log) Append(action, details string) {
	l.entries = append(l.entries, Entry{
		Timestamp: l.now(),
		Action:    action,
		Details:   details,
	})
}

// Len reports the number of recorded entries.
func (l *Log) Len() int { return len(l.entries) }

// Recent returns up to n of the newest entries, newest first.
func (l *Log) Recent(n int) []Entry {
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	tail := l.entries[start:]
	out := make([]Entry, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}

// All returns every entry, newest first.
func (l *Log) All() []Entry {
	return l.Recent(len(l.entries))
}

// FormatEntries renders entries under a header, one line per entry.
func FormatEntries(header string, entries []Entry) string {
	var sb strings.Builder
	sb.WriteString("\n--- " + header + " ---\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "[%s] %s: %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Details)
	}
	return sb.String()
}
