package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// State is the session lifecycle phase.
type State int

const (
	Inactive State = iota
	InProgress
	Complete
)

// ErrNoCurrentQuestion is returned when Answer is called without an active
// question. The session is ended defensively when this happens.
var ErrNoCurrentQuestion = errors.New("no active quiz question")

// Session plays one shuffled pass over a question bank. It is created on
// quiz start and thrown away afterwards; Start on a running session is a
// reported no-op.
type Session struct {
	state     State
	remaining []Question
	current   *Question
	score     int
	attempted int
	rng       *rand.Rand
}

// NewSession returns an inactive session. The rand source is injectable so
// tests can pin the shuffle order; pass nil for a time-seeded source.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{rng: rng}
}

// State reports the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Active reports whether a quiz is running.
func (s *Session) Active() bool { return s.state == InProgress }

// Score reports correct answers so far.
func (s *Session) Score() int { return s.score }

// Attempted reports questions dequeued so far.
func (s *Session) Attempted() int { return s.attempted }

// Progress is the displayable outcome of advancing the session.
type Progress struct {
	Lines         []string // question text (and choices), or the final summary
	Done          bool     // true when the bank is exhausted and the session completed
	AlreadyActive bool     // true when Start was called mid-quiz
}

// Start shuffles a copy of the bank, resets counters, and advances to the
// first question. Calling Start while a quiz is in progress changes nothing.
func (s *Session) Start(bank []Question) Progress {
	if s.state == InProgress {
		return Progress{
			Lines:         []string{"A quiz is already in progress. Please answer the current question."},
			AlreadyActive: true,
		}
	}

	s.remaining = make([]Question, len(bank))
	copy(s.remaining, bank)
	s.rng.Shuffle(len(s.remaining), func(i, j int) {
		s.remaining[i], s.remaining[j] = s.remaining[j], s.remaining[i]
	})
	s.current = nil
	s.score = 0
	s.attempted = 0
	s.state = InProgress

	return s.displayNext()
}

// displayNext pops the front of the queue and renders it, or completes the
// session when the queue is empty.
func (s *Session) displayNext() Progress {
	if len(s.remaining) == 0 {
		s.state = Complete
		s.current = nil
		return Progress{
			Lines: []string{fmt.Sprintf("\nQuiz complete! You scored %d out of %d. Keep learning to boost your cyber awareness!", s.score, s.attempted)},
			Done:  true,
		}
	}

	q := s.remaining[0]
	s.remaining = s.remaining[1:]
	s.current = &q
	s.attempted++

	lines := []string{fmt.Sprintf("\nQuestion %d: %s", s.attempted, q.Prompt)}
	if q.Kind == MultipleChoice {
		lines = append(lines, q.Choices...)
	}
	lines = append(lines, "Your answer: ")
	return Progress{Lines: lines}
}

// Feedback is the result of answering the current question.
type Feedback struct {
	Verdict string // praise, or the correct answer plus its explanation
	Correct bool
	Next    Progress
}

// Answer grades raw against the current question and advances. Comparison is
// case- and surrounding-whitespace-insensitive on both sides.
func (s *Session) Answer(raw string) (Feedback, error) {
	if s.current == nil {
		s.state = Inactive
		return Feedback{}, ErrNoCurrentQuestion
	}

	q := *s.current
	if normalize(raw) == normalize(q.Answer) {
		s.score++
		return Feedback{Verdict: "Correct! 🎉", Correct: true, Next: s.displayNext()}, nil
	}
	return Feedback{
		Verdict: fmt.Sprintf("Incorrect. The correct answer was %s. %s", q.Answer, q.Explanation),
		Next:    s.displayNext(),
	}, nil
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
