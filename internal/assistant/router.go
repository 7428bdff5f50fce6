package assistant

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cyberhub/internal/quiz"
)

// Mode identifies which handler owns the next line of input. Staged data
// from earlier turns of a flow rides inside the variant, so nothing can
// leak between unrelated flows.
type Mode interface {
	isMode()
}

type (
	// ModeNameCapture is the initial state: waiting for the user's name.
	ModeNameCapture struct{}
	// ModeGeneral is the steady state: commands and knowledge-base queries.
	ModeGeneral struct{}
	// ModeTaskDescription waits for the description of a new task.
	ModeTaskDescription struct{}
	// ModeTaskReminderChoice waits for yes/no on adding a due date.
	ModeTaskReminderChoice struct{ Description string }
	// ModeTaskDueDate waits for a YYYY-MM-DD due date.
	ModeTaskDueDate struct{ Description string }
	// ModeCompleteTaskNumber waits for the number of the task to complete.
	ModeCompleteTaskNumber struct{}
	// ModeReminderSubject waits for the reminder subject.
	ModeReminderSubject struct{}
	// ModeReminderDate waits for the reminder time expression.
	ModeReminderDate struct{ Subject string }
	// ModeQuizAnswer routes input to the running quiz session.
	ModeQuizAnswer struct{}
)

func (ModeNameCapture) isMode()        {}
func (ModeGeneral) isMode()            {}
func (ModeTaskDescription) isMode()    {}
func (ModeTaskReminderChoice) isMode() {}
func (ModeTaskDueDate) isMode()        {}
func (ModeCompleteTaskNumber) isMode() {}
func (ModeReminderSubject) isMode()    {}
func (ModeReminderDate) isMode()       {}
func (ModeQuizAnswer) isMode()         {}

// Router is the single-active-handler state machine over the assistant. One
// call to Handle processes one submitted line and yields at most one mode
// transition.
type Router struct {
	bot  *Assistant
	quiz *quiz.Session
	mode Mode
}

// NewRouter wires a router over the assistant, starting in name capture.
// The rand source seeds quiz shuffles; nil means time-seeded.
func NewRouter(bot *Assistant, rng *rand.Rand) *Router {
	return &Router{
		bot:  bot,
		quiz: quiz.NewSession(rng),
		mode: ModeNameCapture{},
	}
}

// Mode exposes the current dialogue mode.
func (r *Router) Mode() Mode { return r.mode }

// Quiz exposes the quiz session for status display.
func (r *Router) Quiz() *quiz.Session { return r.quiz }

// Handle routes one raw line of user input to whichever handler owns the
// current mode and returns the replies to display.
func (r *Router) Handle(raw string) Turn {
	switch mode := r.mode.(type) {
	case ModeNameCapture:
		return r.handleNameCapture(raw)
	case ModeGeneral:
		return r.handleGeneral(raw)
	case ModeTaskDescription:
		return r.handleTaskDescription(raw)
	case ModeTaskReminderChoice:
		return r.handleTaskReminderChoice(mode, raw)
	case ModeTaskDueDate:
		return r.handleTaskDueDate(mode, raw)
	case ModeCompleteTaskNumber:
		return r.handleCompleteTaskNumber(raw)
	case ModeReminderSubject:
		return r.handleReminderSubject(raw)
	case ModeReminderDate:
		return r.handleReminderDate(mode, raw)
	case ModeQuizAnswer:
		return r.handleQuizAnswer(raw)
	default:
		// Unknown modes cannot arise from Handle itself; recover anyway.
		r.mode = ModeGeneral{}
		return Turn{Replies: []Reply{reply(KindError, "Something went wrong. Back to the main menu.")}}
	}
}

func (r *Router) handleNameCapture(raw string) Turn {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Turn{Replies: []Reply{reply(KindError, "⚠️ I didn't catch that. Please enter your name: ")}}
	}

	name = capitalizeFirst(name)
	r.bot.SetUserName(name)
	r.mode = ModeGeneral{}
	return Turn{Replies: []Reply{
		reply(KindSuccess, fmt.Sprintf("🛡️ Welcome, %s! I'm your Cyber Awareness Assistant.\nI'm here to help you stay safe in the digital world.\n", name)),
		reply(KindAccent, "Type 'menu' to see topics, or ask me anything about cybersecurity!"),
	}}
}

func (r *Router) handleGeneral(raw string) Turn {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Turn{}
	}
	lower := strings.ToLower(input)

	switch {
	case lower == "exit":
		return Turn{
			Replies: []Reply{reply(KindAccent, "Goodbye! Remember to stay cyber aware.")},
			Exit:    true,
		}

	case lower == "menu":
		return Turn{Replies: []Reply{reply(KindAccent, r.bot.MenuText())}}

	case lower == "start quiz" || lower == "take quiz":
		return r.startQuiz()

	case lower == "add a task" || lower == "create task":
		r.mode = ModeTaskDescription{}
		return Turn{Replies: []Reply{reply(KindPrompt, "What task would you like to add? (e.g., 'Enable two-factor authentication')")}}

	case lower == "show my tasks" || lower == "list tasks":
		return Turn{Replies: []Reply{reply(KindAnswer, r.bot.TasksText())}}

	case strings.HasPrefix(lower, "complete task"):
		rest := strings.TrimSpace(strings.TrimPrefix(lower, "complete task"))
		if number, err := strconv.Atoi(rest); err == nil {
			return Turn{Replies: []Reply{r.bot.CompleteTask(number)}}
		}
		return r.beginCompleteTask()

	case strings.HasPrefix(lower, "set a reminder") || strings.HasPrefix(lower, "remind me"):
		r.mode = ModeReminderSubject{}
		return Turn{Replies: []Reply{reply(KindPrompt, "What would you like me to remind you about?")}}

	case strings.Contains(lower, "show activity log") || strings.Contains(lower, "what have you done") || strings.Contains(lower, "my history"):
		return Turn{Replies: []Reply{reply(KindAnswer, r.bot.ActivityLogText())}}

	case lower == "show full log":
		return Turn{Replies: []Reply{reply(KindAnswer, r.bot.FullActivityLogText())}}

	default:
		return Turn{Replies: []Reply{r.bot.Respond(input)}}
	}
}

func (r *Router) startQuiz() Turn {
	if r.quiz.Active() {
		// Unreachable from General mode, but guards direct callers.
		return Turn{Replies: []Reply{reply(KindWarn, "A quiz is already in progress. Please answer the current question.")}}
	}

	replies := []Reply{
		reply(KindAccent, "\n--- Cybersecurity Quiz Time! ---"),
		reply(KindAccent, "Answer the following questions to test your knowledge."),
		reply(KindAccent, "Type 'A', 'B', 'C', 'D' for multiple choice or 'True'/'False'.\n"),
	}
	progress := r.quiz.Start(r.bot.Bank())
	for _, line := range progress.Lines {
		replies = append(replies, reply(KindPrompt, line))
	}
	r.mode = ModeQuizAnswer{}
	r.bot.LogActivity("Quiz Started", fmt.Sprintf("Quiz started with %d questions.", len(r.bot.Bank())))
	return Turn{Replies: replies}
}

func (r *Router) beginCompleteTask() Turn {
	replies := []Reply{reply(KindAnswer, r.bot.TasksText())}
	if r.bot.Tasks().Len() == 0 {
		replies = append(replies, reply(KindWarn, "You have no tasks to complete."))
		return Turn{Replies: replies}
	}
	r.mode = ModeCompleteTaskNumber{}
	replies = append(replies, reply(KindPrompt, "Which task would you like to mark as complete? Please enter the number:"))
	return Turn{Replies: replies}
}

func (r *Router) handleTaskDescription(raw string) Turn {
	description := strings.TrimSpace(raw)
	if description == "" {
		return Turn{Replies: []Reply{reply(KindError, "Task description cannot be empty. Please try again or type 'cancel'.")}}
	}
	if strings.EqualFold(description, "cancel") {
		r.mode = ModeGeneral{}
		return Turn{Replies: []Reply{reply(KindMuted, "Task addition cancelled.")}}
	}

	r.mode = ModeTaskReminderChoice{Description: description}
	return Turn{Replies: []Reply{reply(KindPrompt, "Do you want to set a reminder date for this task? (yes/no)")}}
}

func (r *Router) handleTaskReminderChoice(mode ModeTaskReminderChoice, raw string) Turn {
	answer := strings.ToLower(strings.TrimSpace(raw))
	if answer == "yes" || answer == "y" {
		r.mode = ModeTaskDueDate{Description: mode.Description}
		return Turn{Replies: []Reply{reply(KindPrompt, "Please enter the due date for the task (YYYY-MM-DD):")}}
	}

	// Anything but yes commits the task without a due date.
	r.mode = ModeGeneral{}
	return Turn{Replies: []Reply{r.bot.AddTask(mode.Description, nil)}}
}

func (r *Router) handleTaskDueDate(mode ModeTaskDueDate, raw string) Turn {
	input := strings.TrimSpace(raw)
	r.mode = ModeGeneral{}

	if due, err := time.Parse("2006-01-02", input); err == nil {
		return Turn{Replies: []Reply{r.bot.AddTask(mode.Description, &due)}}
	}
	return Turn{Replies: []Reply{
		reply(KindError, "Invalid date format. Task added without a specific due date."),
		r.bot.AddTask(mode.Description, nil),
	}}
}

func (r *Router) handleCompleteTaskNumber(raw string) Turn {
	r.mode = ModeGeneral{}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Turn{Replies: []Reply{reply(KindError, "Invalid input. Please enter a valid task number.")}}
	}
	return Turn{Replies: []Reply{r.bot.CompleteTask(number)}}
}

func (r *Router) handleReminderSubject(raw string) Turn {
	subject := strings.TrimSpace(raw)
	if subject == "" {
		return Turn{Replies: []Reply{reply(KindError, "Reminder subject cannot be empty. Please try again or type 'cancel'.")}}
	}
	if strings.EqualFold(subject, "cancel") {
		r.mode = ModeGeneral{}
		return Turn{Replies: []Reply{reply(KindMuted, "Reminder setting cancelled.")}}
	}

	r.mode = ModeReminderDate{Subject: subject}
	return Turn{Replies: []Reply{reply(KindPrompt, "When should I remind you? (e.g., 'tomorrow', 'next week', 'YYYY-MM-DD')")}}
}

func (r *Router) handleReminderDate(mode ModeReminderDate, raw string) Turn {
	r.mode = ModeGeneral{}
	return Turn{Replies: []Reply{r.bot.SetReminder(mode.Subject, strings.TrimSpace(raw))}}
}

func (r *Router) handleQuizAnswer(raw string) Turn {
	feedback, err := r.quiz.Answer(raw)
	if err != nil {
		// The session still winds down normally: summary, log entry, back
		// to the main flow.
		r.mode = ModeGeneral{}
		score, attempted := r.quiz.Score(), r.quiz.Attempted()
		r.bot.LogActivity("Quiz Completed", fmt.Sprintf("User scored %d out of %d on the quiz.", score, attempted))
		return Turn{Replies: []Reply{
			reply(KindError, "Error: No active quiz question."),
			reply(KindAccent, fmt.Sprintf("\nQuiz complete! You scored %d out of %d. Keep learning to boost your cyber awareness!", score, attempted)),
		}}
	}

	verdictKind := KindError
	if feedback.Correct {
		verdictKind = KindSuccess
	}
	replies := []Reply{reply(verdictKind, feedback.Verdict)}

	if feedback.Next.Done {
		for _, line := range feedback.Next.Lines {
			replies = append(replies, reply(KindAccent, line))
		}
		r.bot.LogActivity("Quiz Completed", fmt.Sprintf("User scored %d out of %d on the quiz.", r.quiz.Score(), r.quiz.Attempted()))
		r.mode = ModeGeneral{}
		return Turn{Replies: replies}
	}

	for _, line := range feedback.Next.Lines {
		replies = append(replies, reply(KindPrompt, line))
	}
	return Turn{Replies: replies}
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
