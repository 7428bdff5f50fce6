// Package assistant holds the conversational core of the cyber awareness
// hub: the assistant context that owns all session state, and the dialogue
// router that decides which handler gets each line of user input.
//
// Everything here is presentation-free. The TUI feeds raw lines in and
// styles the tagged replies that come back out.
package assistant

import (
	"errors"
	"fmt"
	"time"

	"cyberhub/internal/activity"
	"cyberhub/internal/knowledge"
	"cyberhub/internal/quiz"
	"cyberhub/internal/remind"
	"cyberhub/internal/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const menuText = "\n--- Main Menu ---\n" +
	"1. Ask about a topic (e.g., 'What is phishing?')\n" +
	"2. Start Quiz\n" +
	"3. Add a Task\n" +
	"4. Show My Tasks\n" +
	"5. Complete Task\n" +
	"6. Set a Reminder\n" +
	"7. Show Activity Log\n" +
	"8. Exit\n" +
	"What would you like to do?"

// Assistant owns the per-session state: knowledge base, activity log, task
// list, quiz bank, and the user's name. One instance per process; all access
// happens from the single sequential input path.
type Assistant struct {
	kb        *knowledge.Base
	log       *activity.Log
	tasks     *tasks.List
	bank      []quiz.Question
	userName  string
	sessionID string
	logger    *zap.Logger
	now       func() time.Time
}

// New builds an assistant with the embedded knowledge base and quiz bank.
// The zap logger mirrors every activity record; pass zap.NewNop() to keep
// the session log purely in memory.
func New(logger *zap.Logger) *Assistant {
	return NewWithClock(logger, time.Now)
}

// NewWithClock is New with an injected clock, for deterministic tests.
func NewWithClock(logger *zap.Logger, now func() time.Time) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Assistant{
		kb:        knowledge.MustLoadDefault(),
		log:       activity.NewLogWithClock(now),
		tasks:     tasks.NewList(),
		bank:      quiz.MustLoadDefaultBank(),
		sessionID: uuid.NewString(),
		logger:    logger,
		now:       now,
	}
	a.LogActivity("Chatbot Initialized", "Chatbot system has started.")
	return a
}

// SessionID returns the unique ID tagged onto this session's log events.
func (a *Assistant) SessionID() string { return a.sessionID }

// UserName returns the captured name, or "" before name capture completes.
func (a *Assistant) UserName() string { return a.userName }

// Bank exposes the quiz bank for the router's quiz sessions.
func (a *Assistant) Bank() []quiz.Question { return a.bank }

// Knowledge exposes the loaded knowledge base.
func (a *Assistant) Knowledge() *knowledge.Base { return a.kb }

// Tasks exposes the task list for read-only inspection.
func (a *Assistant) Tasks() *tasks.List { return a.tasks }

// LogActivity appends to the in-memory audit trail and mirrors the event to
// the structured log.
func (a *Assistant) LogActivity(action, details string) {
	a.log.Append(action, details)
	a.logger.Info("activity",
		zap.String("session", a.sessionID),
		zap.String("action", action),
		zap.String("details", details),
	)
}

// SetUserName records the session user name and returns the greeting.
func (a *Assistant) SetUserName(name string) string {
	a.userName = name
	a.LogActivity("User Name Set", fmt.Sprintf("User's name set to: %s", name))
	return fmt.Sprintf("Nice to meet you, %s!", name)
}

// Respond resolves free text against the knowledge base: ordered keyword
// scan first, then the small-talk battery, then the fixed fallback.
func (a *Assistant) Respond(input string) Reply {
	a.LogActivity("User Input", input)

	if answer, keyword, ok := a.kb.Lookup(input); ok {
		a.LogActivity("Knowledge Base Lookup", fmt.Sprintf("Found answer for: %s", keyword))
		return reply(KindAnswer, answer)
	}
	if answer, ok := a.kb.Smalltalk(input); ok {
		return reply(KindAnswer, answer)
	}

	a.LogActivity("Unrecognized Input", fmt.Sprintf("Could not find response for: %s", input))
	return reply(KindAnswer, a.kb.Fallback())
}

// MenuText returns the static main menu.
func (a *Assistant) MenuText() string {
	a.LogActivity("Main Menu Displayed", "User requested main menu.")
	return menuText
}

// AddTask adds a task and returns the confirmation line.
func (a *Assistant) AddTask(description string, dueDate *time.Time) Reply {
	text := a.tasks.Add(description, dueDate)
	due := "no due date"
	if dueDate != nil {
		due = "due " + dueDate.Format("2006-01-02")
	}
	a.LogActivity("Task Added", fmt.Sprintf("Task: '%s' %s", description, due))
	return reply(KindSuccess, text)
}

// TasksText renders the numbered task list.
func (a *Assistant) TasksText() string {
	text := a.tasks.ListText()
	a.LogActivity("Tasks Displayed", "User viewed their tasks.")
	return text
}

// CompleteTask marks the 1-based task number completed. Out-of-range and
// already-completed numbers leave state untouched and come back as errors.
func (a *Assistant) CompleteTask(number int) Reply {
	text, ok := a.tasks.Complete(number)
	if !ok {
		return reply(KindError, text)
	}
	desc := a.tasks.Tasks()[number-1].Description
	a.LogActivity("Task Completed", fmt.Sprintf("Task '%s' marked as completed.", desc))
	return reply(KindSuccess, text)
}

// SetReminder parses the time expression and records the reminder. Nothing
// is scheduled; the reminder lives in the activity log.
func (a *Assistant) SetReminder(subject, dateTimeInput string) Reply {
	when, err := remind.Parse(a.now(), dateTimeInput)
	switch {
	case errors.Is(err, remind.ErrBadMinutes):
		a.LogActivity("Reminder Failed", fmt.Sprintf("Could not parse minutes for reminder: '%s'", dateTimeInput))
		return reply(KindError, "I couldn't understand the time for the reminder. Please be more specific (e.g., '2024-12-31 14:30', 'tomorrow', 'in 30 minutes').")
	case errors.Is(err, remind.ErrPast):
		a.LogActivity("Reminder Failed", "Reminder time is in the past.")
		return reply(KindError, "The reminder time must be in the future. Please try again.")
	case err != nil:
		a.LogActivity("Reminder Failed", fmt.Sprintf("Could not parse reminder date/time: '%s'", dateTimeInput))
		return reply(KindError, "I couldn't understand the time for the reminder. Please be more specific (e.g., '2024-12-31 14:30', 'tomorrow', 'next week').")
	}

	stamp := when.Format("2006-01-02 15:04")
	a.LogActivity("Reminder Set", fmt.Sprintf("Reminder for '%s' set for %s.", subject, stamp))
	return reply(KindSuccess, fmt.Sprintf("Okay, I'll remind you about '%s' on %s.", subject, stamp))
}

// ActivityLogText renders the last ten audit entries, newest first.
func (a *Assistant) ActivityLogText() string {
	if a.log.Len() == 0 {
		return "No activities logged yet."
	}
	text := activity.FormatEntries("Activity Log (Last 10)", a.log.Recent(10))
	a.LogActivity("Activity Log Displayed", "User viewed activity log.")
	return text
}

// FullActivityLogText renders every audit entry, newest first.
func (a *Assistant) FullActivityLogText() string {
	if a.log.Len() == 0 {
		return "No activities logged yet."
	}
	text := activity.FormatEntries("Full Activity Log", a.log.All())
	a.LogActivity("Full Activity Log Displayed", "User viewed full activity log.")
	return text
}
