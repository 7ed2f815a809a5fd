package worksheet

import (
	"fmt"
	"slices"
)

// ValidationError describes why a document failed validation.
type ValidationError struct {
	QuestionID string // empty for document-level failures
	Message    string
}

func (e *ValidationError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("invalid worksheet: %s", e.Message)
	}
	return fmt.Sprintf("invalid question %s: %s", e.QuestionID, e.Message)
}

// Validate checks the document invariants:
//   - every question has a non-empty id, unique across the sequence
//   - MCQ questions have 2+ options and CorrectAnswer equal (case-sensitive)
//     to one of them
//   - True/False answers are exactly "True" or "False"
//   - page breaks carry no answer or options
//
// The renderer tolerates documents that fail these checks (builder edits
// can transiently break them); generation output must pass before it is
// accepted.
func Validate(d *Document) error {
	seen := make(map[string]bool, len(d.Questions))
	for i := range d.Questions {
		q := &d.Questions[i]
		if q.ID == "" {
			return &ValidationError{Message: fmt.Sprintf("question at index %d has no id", i)}
		}
		if seen[q.ID] {
			return &ValidationError{QuestionID: q.ID, Message: "duplicate id"}
		}
		seen[q.ID] = true

		if err := validateQuestion(q); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(q *Question) error {
	switch q.Kind {
	case KindMCQ:
		if q.Text == "" {
			return &ValidationError{QuestionID: q.ID, Message: "mcq question text is empty"}
		}
		if len(q.Options) < 2 {
			return &ValidationError{QuestionID: q.ID, Message: "mcq needs at least 2 options"}
		}
		if !slices.Contains(q.Options, q.CorrectAnswer) {
			return &ValidationError{QuestionID: q.ID, Message: "correctAnswer is not one of the options"}
		}
	case KindTrueFalse:
		if q.Text == "" {
			return &ValidationError{QuestionID: q.ID, Message: "true/false question text is empty"}
		}
		if q.CorrectAnswer != AnswerTrue && q.CorrectAnswer != AnswerFalse {
			return &ValidationError{QuestionID: q.ID, Message: `correctAnswer must be "True" or "False"`}
		}
	case KindShortAnswer, KindVocabulary:
		if q.Text == "" {
			return &ValidationError{QuestionID: q.ID, Message: "question text is empty"}
		}
		if q.CorrectAnswer == "" {
			return &ValidationError{QuestionID: q.ID, Message: "correctAnswer is empty"}
		}
	case KindCharacterDrill, KindSentenceDrill:
		if q.CorrectAnswer == "" {
			return &ValidationError{QuestionID: q.ID, Message: "drill text is empty"}
		}
	case KindSymbolDrill:
		if q.CorrectAnswer == "" {
			return &ValidationError{QuestionID: q.ID, Message: "symbol is empty"}
		}
	case KindPageBreak:
		if q.CorrectAnswer != "" || len(q.Options) > 0 {
			return &ValidationError{QuestionID: q.ID, Message: "page break must carry no answer or options"}
		}
	default:
		return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf("unknown kind %q", q.Kind)}
	}
	return nil
}
