package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"sheetwise/internal/worksheet"
)

func quizDoc() *worksheet.Document {
	return &worksheet.Document{
		ID: "ws-1",
		Questions: []worksheet.Question{
			{ID: "q1", Kind: worksheet.KindMCQ, Text: "Capital of France?", Options: []string{"Paris", "Lyon"}, CorrectAnswer: "Paris"},
			{ID: "q2", Kind: worksheet.KindTrueFalse, Text: "The sky is green.", CorrectAnswer: worksheet.AnswerFalse},
			{ID: "q3", Kind: worksheet.KindCharacterDrill, CorrectAnswer: "F"},
			{ID: "q4", Kind: worksheet.KindShortAnswer, Text: "2+2?", CorrectAnswer: "4"},
			{ID: "q5", Kind: worksheet.KindPageBreak},
		},
	}
}

type recorderFunc func(ctx context.Context, worksheetID string, a Attempt) error

func (f recorderFunc) AppendAttempt(ctx context.Context, worksheetID string, a Attempt) error {
	return f(ctx, worksheetID, a)
}

func TestSessionExcludesNonScoreableKinds(t *testing.T) {
	s := New(quizDoc(), nil)
	if s.Total() != 3 {
		t.Fatalf("Total = %d, want 3", s.Total())
	}
	for _, q := range s.Questions() {
		if !q.Scoreable() {
			t.Errorf("question %s (%s) should not be in the session", q.ID, q.Kind)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct string
		want    bool
	}{
		{"exact", "Paris", "Paris", true},
		{"case insensitive", "PARIS", "Paris", true},
		{"surrounding whitespace trimmed", "  paris  ", "Paris", true},
		{"correct side trimmed too", "4", " 4 ", true},
		{"wrong answer", "Lyon", "Paris", false},
		{"empty never matches", "", "Paris", false},
		{"whitespace-only never matches", "   ", "Paris", false},
		{"interior whitespace is significant", "Par is", "Paris", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.answer, tt.correct); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.answer, tt.correct, got, tt.want)
			}
		})
	}
}

func TestSubmitGradesWithNormalization(t *testing.T) {
	s := New(quizDoc(), nil)
	s.SetAnswer("q1", " paris ")
	s.SetAnswer("q2", "false")
	s.SetAnswer("q4", "5")

	attempt := s.Submit(context.Background())

	if attempt.Score != 2 || attempt.Total != 3 {
		t.Errorf("attempt = %d/%d, want 2/3", attempt.Score, attempt.Total)
	}
	if !s.Submitted() {
		t.Error("Submitted = false after Submit")
	}
	if !s.Correct("q1") || !s.Correct("q2") || s.Correct("q4") {
		t.Errorf("per-question grading wrong: q1=%v q2=%v q4=%v",
			s.Correct("q1"), s.Correct("q2"), s.Correct("q4"))
	}
}

func TestAnswersFrozenAfterSubmit(t *testing.T) {
	s := New(quizDoc(), nil)
	s.SetAnswer("q1", "Lyon")
	s.Submit(context.Background())

	s.SetAnswer("q1", "Paris")
	if s.Answer("q1") != "Lyon" {
		t.Errorf("answer mutated after submit: %q", s.Answer("q1"))
	}

	// A second Submit must not re-grade or append a second attempt.
	s.SetAnswer("q4", "4")
	attempt := s.Submit(context.Background())
	if attempt.Score != 0 {
		t.Errorf("second Submit re-graded: score %d", attempt.Score)
	}
	if len(s.History()) != 1 {
		t.Errorf("history grew on repeat Submit: %d entries", len(s.History()))
	}
}

func TestResetKeepsHistory(t *testing.T) {
	s := New(quizDoc(), nil)
	s.SetAnswer("q1", "Paris")
	s.Submit(context.Background())

	s.Reset()

	if s.Submitted() {
		t.Error("Submitted = true after Reset")
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d after Reset, want 0", s.Score())
	}
	if s.Answer("q1") != "" {
		t.Errorf("answer survived Reset: %q", s.Answer("q1"))
	}
	if len(s.History()) != 1 {
		t.Errorf("history lost on Reset: %d entries", len(s.History()))
	}
}

func TestHistoryCappedMostRecentFirst(t *testing.T) {
	s := New(quizDoc(), nil)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	run := 0
	s.now = func() time.Time {
		run++
		return base.Add(time.Duration(run) * time.Minute)
	}

	for i := 0; i < MaxHistory+3; i++ {
		s.SetAnswer("q1", "Paris")
		s.Submit(context.Background())
		s.Reset()
	}

	history := s.History()
	if len(history) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(history), MaxHistory)
	}
	for i := 1; i < len(history); i++ {
		if history[i].At.After(history[i-1].At) {
			t.Fatalf("history not most-recent-first at index %d", i)
		}
	}
}

func TestRecorderFailureDoesNotBlockScoring(t *testing.T) {
	recorder := recorderFunc(func(ctx context.Context, worksheetID string, a Attempt) error {
		return errors.New("disk full")
	})
	s := New(quizDoc(), recorder)
	s.SetAnswer("q1", "Paris")

	attempt := s.Submit(context.Background())

	if attempt.Score != 1 {
		t.Errorf("score = %d despite recorder failure, want 1", attempt.Score)
	}
	if !s.Submitted() {
		t.Error("session not submitted after recorder failure")
	}
	if len(s.History()) != 1 {
		t.Errorf("history = %d entries, want 1", len(s.History()))
	}
}

func TestRecorderReceivesAttempt(t *testing.T) {
	var gotID string
	var got Attempt
	recorder := recorderFunc(func(ctx context.Context, worksheetID string, a Attempt) error {
		gotID = worksheetID
		got = a
		return nil
	})

	s := New(quizDoc(), recorder)
	s.SetAnswer("q1", "Paris")
	s.SetAnswer("q2", "False")
	s.Submit(context.Background())

	if gotID != "ws-1" {
		t.Errorf("recorded worksheet id = %q, want ws-1", gotID)
	}
	if got.Score != 2 || got.Total != 3 {
		t.Errorf("recorded attempt = %d/%d, want 2/3", got.Score, got.Total)
	}
}
