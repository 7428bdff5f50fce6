package assistant

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	bot := NewWithClock(zap.NewNop(), func() time.Time { return testNow })
	return NewRouter(bot, rand.New(rand.NewSource(1)))
}

// past name capture, into the steady state
func readyRouter(t *testing.T) *Router {
	t.Helper()
	r := newTestRouter(t)
	r.Handle("alice")
	return r
}

func TestNameCaptureBlankStays(t *testing.T) {
	r := newTestRouter(t)

	turn := r.Handle("   ")
	if _, ok := r.Mode().(ModeNameCapture); !ok {
		t.Fatalf("mode = %T, want ModeNameCapture", r.Mode())
	}
	if len(turn.Replies) != 1 || turn.Replies[0].Kind != KindError {
		t.Fatalf("blank name reply = %+v", turn.Replies)
	}
}

func TestNameCaptureCapitalizesAndTransitions(t *testing.T) {
	r := newTestRouter(t)

	turn := r.Handle("  alice ")
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.Mode())
	}
	if got := r.bot.UserName(); got != "Alice" {
		t.Fatalf("user name = %q, want Alice", got)
	}
	if !strings.Contains(turn.Replies[0].Text, "Welcome, Alice!") {
		t.Fatalf("greeting = %q", turn.Replies[0].Text)
	}
}

func TestGeneralBlankIsNoOp(t *testing.T) {
	r := readyRouter(t)

	turn := r.Handle("   ")
	if len(turn.Replies) != 0 || turn.Exit {
		t.Fatalf("blank input in General should produce nothing, got %+v", turn)
	}
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.Mode())
	}
}

func TestExitSignalsHost(t *testing.T) {
	r := readyRouter(t)

	turn := r.Handle("exit")
	if !turn.Exit {
		t.Fatal("exit should set Turn.Exit")
	}
	if !strings.Contains(turn.Replies[0].Text, "Goodbye") {
		t.Fatalf("goodbye reply = %q", turn.Replies[0].Text)
	}
}

func TestMenuCommand(t *testing.T) {
	r := readyRouter(t)

	turn := r.Handle("MENU")
	if !strings.Contains(turn.Replies[0].Text, "--- Main Menu ---") {
		t.Fatalf("menu reply = %q", turn.Replies[0].Text)
	}
	if turn.Replies[0].Kind != KindAccent {
		t.Fatalf("menu kind = %v, want KindAccent", turn.Replies[0].Kind)
	}
}

func TestAddTaskFlowWithoutDueDate(t *testing.T) {
	r := readyRouter(t)

	turn := r.Handle("add a task")
	if _, ok := r.Mode().(ModeTaskDescription); !ok {
		t.Fatalf("mode = %T, want ModeTaskDescription", r.Mode())
	}
	if turn.Replies[0].Kind != KindPrompt {
		t.Fatalf("expected prompt, got %+v", turn.Replies[0])
	}

	// Blank description reprompts without leaving the flow.
	turn = r.Handle("")
	if _, ok := r.Mode().(ModeTaskDescription); !ok {
		t.Fatalf("blank description left the flow: %T", r.Mode())
	}
	if turn.Replies[0].Kind != KindError {
		t.Fatalf("blank description reply = %+v", turn.Replies[0])
	}

	r.Handle("Enable 2FA")
	if mode, ok := r.Mode().(ModeTaskReminderChoice); !ok || mode.Description != "Enable 2FA" {
		t.Fatalf("mode = %#v, want ModeTaskReminderChoice{Enable 2FA}", r.Mode())
	}

	// Anything but yes commits without a due date.
	turn = r.Handle("nah")
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.Mode())
	}
	want := Turn{Replies: []Reply{{
		Text: "Task 'Enable 2FA' has been added to your list.",
		Kind: KindSuccess,
	}}}
	if diff := cmp.Diff(want, turn); diff != "" {
		t.Fatalf("commit turn mismatch (-want +got):\n%s", diff)
	}
}

func TestAddTaskFlowWithDueDate(t *testing.T) {
	r := readyRouter(t)

	r.Handle("create task")
	r.Handle("Enable 2FA")
	turn := r.Handle("yes")
	if mode, ok := r.Mode().(ModeTaskDueDate); !ok || mode.Description != "Enable 2FA" {
		t.Fatalf("mode = %#v, want ModeTaskDueDate{Enable 2FA}", r.Mode())
	}
	if !strings.Contains(turn.Replies[0].Text, "YYYY-MM-DD") {
		t.Fatalf("due date prompt = %q", turn.Replies[0].Text)
	}

	turn = r.Handle("2030-06-01")
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.Mode())
	}
	if turn.Replies[0].Text != "Task 'Enable 2FA' has been added to your list with due date: 2030-06-01." {
		t.Fatalf("commit reply = %q", turn.Replies[0].Text)
	}

	listing := r.Handle("show my tasks")
	if !strings.Contains(listing.Replies[0].Text, "1. Enable 2FA (Due: 2030-06-01) - ⏳ Pending") {
		t.Fatalf("listing = %q", listing.Replies[0].Text)
	}
}

func TestAddTaskFlowInvalidDueDateStillCommits(t *testing.T) {
	r := readyRouter(t)

	r.Handle("add a task")
	r.Handle("Backup laptop")
	r.Handle("y")
	turn := r.Handle("next tuesday-ish")

	if len(turn.Replies) != 2 {
		t.Fatalf("expected invalid-format notice plus commit, got %+v", turn.Replies)
	}
	if turn.Replies[0].Kind != KindError || !strings.Contains(turn.Replies[0].Text, "Invalid date format") {
		t.Fatalf("notice = %+v", turn.Replies[0])
	}
	if turn.Replies[1].Kind != KindSuccess {
		t.Fatalf("commit = %+v", turn.Replies[1])
	}
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.Mode())
	}
}

func TestAddTaskCancel(t *testing.T) {
	r := readyRouter(t)

	r.Handle("add a task")
	turn := r.Handle("CANCEL")
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("cancel should return to General, got %T", r.Mode())
	}
	if turn.Replies[0].Kind != KindMuted || turn.Replies[0].Text != "Task addition cancelled." {
		t.Fatalf("cancel reply = %+v", turn.Replies[0])
	}
	if r.bot.Tasks().Len() != 0 {
		t.Fatal("cancelled flow must not create a task")
	}
}

func TestCompleteTaskDirectCommand(t *testing.T) {
	r := readyRouter(t)
	r.Handle("add a task")
	r.Handle("Enable 2FA")
	r.Handle("no")

	turn := r.Handle("complete task 1")
	if turn.Replies[0].Kind != KindSuccess || !strings.Contains(turn.Replies[0].Text, "marked as completed") {
		t.Fatalf("direct complete = %+v", turn.Replies[0])
	}
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.Mode())
	}

	// Second completion reports, mutates nothing.
	turn = r.Handle("complete task 1")
	if turn.Replies[0].Kind != KindError || !strings.Contains(turn.Replies[0].Text, "already marked as completed") {
		t.Fatalf("repeat complete = %+v", turn.Replies[0])
	}
}

func TestCompleteTaskPromptedFlow(t *testing.T) {
	r := readyRouter(t)
	r.Handle("add a task")
	r.Handle("Enable 2FA")
	r.Handle("no")

	turn := r.Handle("complete task")
	if _, ok := r.Mode().(ModeCompleteTaskNumber); !ok {
		t.Fatalf("mode = %T, want ModeCompleteTaskNumber", r.Mode())
	}
	if len(turn.Replies) != 2 {
		t.Fatalf("expected listing plus prompt, got %+v", turn.Replies)
	}

	turn = r.Handle("not a number")
	if turn.Replies[0].Kind != KindError {
		t.Fatalf("invalid number reply = %+v", turn.Replies[0])
	}
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("invalid number should reset to General, got %T", r.Mode())
	}
}

func TestCompleteTaskWithNoTasks(t *testing.T) {
	r := readyRouter(t)

	turn := r.Handle("complete task")
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("no tasks should stay in General, got %T", r.Mode())
	}
	last := turn.Replies[len(turn.Replies)-1]
	if last.Kind != KindWarn || last.Text != "You have no tasks to complete." {
		t.Fatalf("no-tasks reply = %+v", last)
	}
}

func TestReminderFlow(t *testing.T) {
	r := readyRouter(t)

	r.Handle("remind me")
	if _, ok := r.Mode().(ModeReminderSubject); !ok {
		t.Fatalf("mode = %T, want ModeReminderSubject", r.Mode())
	}

	// Blank subject reprompts.
	turn := r.Handle(" ")
	if _, ok := r.Mode().(ModeReminderSubject); !ok {
		t.Fatalf("blank subject left the flow: %T", r.Mode())
	}
	if turn.Replies[0].Kind != KindError {
		t.Fatalf("blank subject reply = %+v", turn.Replies[0])
	}

	r.Handle("Change my router password")
	if mode, ok := r.Mode().(ModeReminderDate); !ok || mode.Subject != "Change my router password" {
		t.Fatalf("mode = %#v", r.Mode())
	}

	turn = r.Handle("in 30 minutes")
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.Mode())
	}
	if turn.Replies[0].Kind != KindSuccess {
		t.Fatalf("reminder reply = %+v", turn.Replies[0])
	}
	if turn.Replies[0].Text != "Okay, I'll remind you about 'Change my router password' on 2026-09-01 10:30." {
		t.Fatalf("reminder text = %q", turn.Replies[0].Text)
	}
}

func TestReminderCancelAndFailure(t *testing.T) {
	r := readyRouter(t)

	r.Handle("set a reminder for things")
	turn := r.Handle("cancel")
	if turn.Replies[0].Text != "Reminder setting cancelled." {
		t.Fatalf("cancel reply = %q", turn.Replies[0].Text)
	}

	r.Handle("remind me")
	r.Handle("patch day")
	turn = r.Handle("whenever")
	if turn.Replies[0].Kind != KindError {
		t.Fatalf("unparseable reminder reply = %+v", turn.Replies[0])
	}
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("failed reminder should reset to General, got %T", r.Mode())
	}
}

func TestQuizFullRun(t *testing.T) {
	r := readyRouter(t)

	turn := r.Handle("start quiz")
	if _, ok := r.Mode().(ModeQuizAnswer); !ok {
		t.Fatalf("mode = %T, want ModeQuizAnswer", r.Mode())
	}
	if !strings.Contains(turn.Replies[0].Text, "Cybersecurity Quiz Time!") {
		t.Fatalf("quiz intro = %q", turn.Replies[0].Text)
	}

	total := len(r.bot.Bank())
	for i := 0; i < total-1; i++ {
		r.Handle("x")
		if _, ok := r.Mode().(ModeQuizAnswer); !ok {
			t.Fatalf("quiz ended early after %d answers", i+1)
		}
	}

	final := r.Handle("x")
	if _, ok := r.Mode().(ModeGeneral); !ok {
		t.Fatalf("mode after last answer = %T, want ModeGeneral", r.Mode())
	}
	summary := final.Replies[len(final.Replies)-1]
	if !strings.Contains(summary.Text, fmt.Sprintf("You scored 0 out of %d", total)) {
		t.Fatalf("summary = %q", summary.Text)
	}
}

func TestQuizRestartWhileActive(t *testing.T) {
	r := readyRouter(t)
	r.Handle("start quiz")
	attempted := r.Quiz().Attempted()

	// "start quiz" mid-quiz is quiz input now, graded as a wrong answer.
	// The guard lives at the session level:
	progress := r.Quiz().Start(r.bot.Bank())
	if !progress.AlreadyActive {
		t.Fatal("restart should report already active")
	}
	if r.Quiz().Attempted() != attempted {
		t.Fatal("restart must not change session state")
	}
}

func TestQuizAnswerWithoutQuestionEndsSession(t *testing.T) {
	r := readyRouter(t)
	r.mode = ModeQuizAnswer{}

	turn := r.Handle("true")
	if len(turn.Replies) != 2 {
		t.Fatalf("replies = %d, want error plus summary", len(turn.Replies))
	}
	if turn.Replies[0].Kind != KindError || !strings.Contains(turn.Replies[0].Text, "No active quiz question") {
		t.Fatalf("first reply = %+v", turn.Replies[0])
	}
	if !strings.Contains(turn.Replies[1].Text, "You scored 0 out of 0") {
		t.Fatalf("summary = %q", turn.Replies[1].Text)
	}
	if _, ok := r.mode.(ModeGeneral); !ok {
		t.Fatalf("mode = %T, want ModeGeneral", r.mode)
	}
	if !strings.Contains(r.bot.FullActivityLogText(), "Quiz Completed") {
		t.Fatal("expected a Quiz Completed log entry")
	}
}

func TestQuizCorrectAnswerScores(t *testing.T) {
	r := readyRouter(t)
	turn := r.Handle("take quiz")

	// Extract the current question and answer it correctly.
	questionLine := turn.Replies[3].Text
	answer := correctAnswerFor(t, r, questionLine)

	result := r.Handle(answer)
	if result.Replies[0].Kind != KindSuccess || result.Replies[0].Text != "Correct! 🎉" {
		t.Fatalf("correct answer reply = %+v", result.Replies[0])
	}
	if r.Quiz().Score() != 1 {
		t.Fatalf("score = %d, want 1", r.Quiz().Score())
	}
}

func correctAnswerFor(t *testing.T, r *Router, questionLine string) string {
	t.Helper()
	for _, q := range r.bot.Bank() {
		if strings.Contains(questionLine, q.Prompt) {
			return q.Answer
		}
	}
	t.Fatalf("no bank question matches line %q", questionLine)
	return ""
}

func TestKnowledgeBaseRoutedFromGeneral(t *testing.T) {
	r := readyRouter(t)

	// Both keywords match; phishing is registered before malware, so it wins.
	turn := r.Handle("malware and phishing")
	if !strings.Contains(turn.Replies[0].Text, "Phishing is a type of cyberattack") {
		t.Fatalf("expected first-registered keyword (phishing) to win, got %q", turn.Replies[0].Text)
	}

	turn = r.Handle("something entirely unrelated to security")
	if !strings.HasPrefix(turn.Replies[0].Text, "I'm not sure how to respond to that.") {
		t.Fatalf("fallback = %q", turn.Replies[0].Text)
	}
}

func TestActivityLogCommands(t *testing.T) {
	r := readyRouter(t)

	turn := r.Handle("so, what have you done for me?")
	if !strings.Contains(turn.Replies[0].Text, "--- Activity Log (Last 10) ---") {
		t.Fatalf("activity log reply = %q", turn.Replies[0].Text)
	}
	if !strings.Contains(turn.Replies[0].Text, "User Name Set") {
		t.Fatalf("log should include name capture event, got %q", turn.Replies[0].Text)
	}

	turn = r.Handle("show full log")
	if !strings.Contains(turn.Replies[0].Text, "--- Full Activity Log ---") {
		t.Fatalf("full log reply = %q", turn.Replies[0].Text)
	}
}
