package sheetgen

import (
	"fmt"

	"sheetwise/internal/worksheet"
)

// StructuralValidator checks that the worksheet as a whole matches the
// request: non-empty title, at least one question, question texts within
// length limits, and the per-kind counts the caller asked for.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(doc *worksheet.Document, input GenerateInput) *ValidationError {
	if doc.Title == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "title is empty",
			Retryable: true,
		}
	}
	if len(doc.Questions) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "worksheet has no questions",
			Retryable: true,
		}
	}

	challenges := 0
	counts := make(map[worksheet.Kind]int)
	for i, q := range doc.Questions {
		// Drill kinds carry their content in CorrectAnswer; the prompt
		// text is optional for them.
		if q.Text == "" && !q.IsDrill() {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d has empty text", i+1),
				Retryable: true,
			}
		}
		if len(q.Text) > 500 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d exceeds 500 characters", i+1),
				Retryable: true,
			}
		}
		if q.IsChallenge {
			challenges++
			continue
		}
		counts[q.Kind]++
	}

	if input.IncludeChallenge && challenges == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "a challenge question was requested but none was generated",
			Retryable: true,
		}
	}
	if challenges > 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected at most 1 challenge question, got %d", challenges),
			Retryable: true,
		}
	}

	for kind, want := range input.KindCounts {
		if want > 0 && counts[kind] != want {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("expected %d %s questions, got %d", want, kind, counts[kind]),
				Retryable: true,
			}
		}
	}
	return nil
}

// DocumentValidator runs the document model's own invariant checks
// (option counts, correct answer membership, True/False values) so a
// worksheet that would fail to grade is rejected at the boundary.
type DocumentValidator struct{}

func (v *DocumentValidator) Name() string { return "document" }

func (v *DocumentValidator) Validate(doc *worksheet.Document, _ GenerateInput) *ValidationError {
	if err := worksheet.Validate(doc); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	return nil
}
