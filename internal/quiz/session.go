// Package quiz runs a graded session over a read-only snapshot of a
// worksheet's questions, independent of renderer and builder state.
package quiz

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"sheetwise/internal/worksheet"
)

// MaxHistory is the number of attempt records retained per session.
const MaxHistory = 10

// Attempt is an immutable record of one submitted quiz run.
type Attempt struct {
	Score int
	Total int
	At    time.Time
}

// Recorder persists attempt records. Persistence is best-effort and
// purely additive: a failed append never blocks or rolls back scoring.
type Recorder interface {
	AppendAttempt(ctx context.Context, worksheetID string, a Attempt) error
}

// Session holds the state of one quiz run. It is single-writer and
// UI-event driven; no locking.
type Session struct {
	worksheetID string
	questions   []worksheet.Question // scoreable subset, document order

	answers   map[string]string
	submitted bool
	score     int

	history  []Attempt // most-recent-first, capped at MaxHistory
	recorder Recorder
	now      func() time.Time
}

// New creates a session over a snapshot of the document's questions.
// Drill and page-break kinds are excluded from grading. recorder may be
// nil to disable persistence.
func New(doc *worksheet.Document, recorder Recorder) *Session {
	return &Session{
		worksheetID: doc.ID,
		questions:   worksheet.ScoreableQuestions(doc.Questions),
		answers:     make(map[string]string),
		recorder:    recorder,
		now:         time.Now,
	}
}

// Questions returns the scoreable questions in document order.
func (s *Session) Questions() []worksheet.Question {
	return s.questions
}

// Total returns the number of gradeable questions.
func (s *Session) Total() int {
	return len(s.questions)
}

// Answer returns the recorded answer for a question id.
func (s *Session) Answer(questionID string) string {
	return s.answers[questionID]
}

// Submitted reports whether the session has been graded.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Score returns the tally from the last submission.
func (s *Session) Score() int {
	return s.score
}

// SetAnswer upserts an answer. Answers are frozen after submission; the
// call is then a no-op.
func (s *Session) SetAnswer(questionID, value string) {
	if s.submitted {
		return
	}
	s.answers[questionID] = value
}

// Submit grades the session: each answer is compared to the question's
// correct answer after trimming leading/trailing whitespace on both
// sides, case-insensitively. The attempt is prepended to the bounded
// history and persisted best-effort.
func (s *Session) Submit(ctx context.Context) Attempt {
	if s.submitted {
		return s.history[0]
	}

	score := 0
	for _, q := range s.questions {
		if Match(s.answers[q.ID], q.CorrectAnswer) {
			score++
		}
	}

	s.score = score
	s.submitted = true

	attempt := Attempt{Score: score, Total: len(s.questions), At: s.now()}
	s.history = append([]Attempt{attempt}, s.history...)
	if len(s.history) > MaxHistory {
		s.history = s.history[:MaxHistory]
	}

	if s.recorder != nil && s.worksheetID != "" {
		if err := s.recorder.AppendAttempt(ctx, s.worksheetID, attempt); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to persist quiz attempt: %v\n", err)
		}
	}

	return attempt
}

// Reset clears answers, the submitted flag, and the score. History is
// retained.
func (s *Session) Reset() {
	s.answers = make(map[string]string)
	s.submitted = false
	s.score = 0
}

// History returns the retained attempts, most recent first.
func (s *Session) History() []Attempt {
	return s.history
}

// Correct reports whether the recorded answer for a question grades as
// correct. Only meaningful after submission.
func (s *Session) Correct(questionID string) bool {
	for _, q := range s.questions {
		if q.ID == questionID {
			return Match(s.answers[questionID], q.CorrectAnswer)
		}
	}
	return false
}

// Match compares a learner answer to the correct answer using the quiz
// normalization: trim surrounding whitespace, then case-insensitive
// equality. Empty answers never match.
func Match(answer, correct string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	return strings.EqualFold(answer, strings.TrimSpace(correct))
}
