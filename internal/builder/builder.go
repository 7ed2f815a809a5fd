// Package builder implements structural worksheet editing as an explicit
// command log applied to a working copy. The generation boundary always
// replaces documents wholesale; builder commands are the only mutation
// path, which keeps the original generation output intact and leaves
// room for undo later.
package builder

import (
	"fmt"

	"sheetwise/internal/worksheet"
)

// ErrQuestionNotFound is returned by commands addressing a missing id.
type ErrQuestionNotFound struct {
	ID string
}

func (e *ErrQuestionNotFound) Error() string {
	return fmt.Sprintf("question %s not found", e.ID)
}

// Command is a single builder edit.
type Command interface {
	apply(doc *worksheet.Document) error
}

// AddQuestion appends a freshly created question of the given kind with
// placeholder content.
type AddQuestion struct {
	Kind worksheet.Kind
}

func (c AddQuestion) apply(doc *worksheet.Document) error {
	doc.Questions = append(doc.Questions, NewQuestion(c.Kind))
	return nil
}

// RemoveQuestion removes exactly the question with the given id.
type RemoveQuestion struct {
	ID string
}

func (c RemoveQuestion) apply(doc *worksheet.Document) error {
	for i := range doc.Questions {
		if doc.Questions[i].ID == c.ID {
			doc.Questions = append(doc.Questions[:i], doc.Questions[i+1:]...)
			return nil
		}
	}
	return &ErrQuestionNotFound{ID: c.ID}
}

// EditText replaces a question's prompt text.
type EditText struct {
	ID   string
	Text string
}

func (c EditText) apply(doc *worksheet.Document) error {
	q := doc.QuestionByID(c.ID)
	if q == nil {
		return &ErrQuestionNotFound{ID: c.ID}
	}
	q.Text = c.Text
	return nil
}

// EditAnswer replaces a question's correct answer.
type EditAnswer struct {
	ID    string
	Value string
}

func (c EditAnswer) apply(doc *worksheet.Document) error {
	q := doc.QuestionByID(c.ID)
	if q == nil {
		return &ErrQuestionNotFound{ID: c.ID}
	}
	q.CorrectAnswer = c.Value
	return nil
}

// EditOption replaces MCQ option text by (question id, option index).
type EditOption struct {
	ID    string
	Index int
	Text  string
}

func (c EditOption) apply(doc *worksheet.Document) error {
	q := doc.QuestionByID(c.ID)
	if q == nil {
		return &ErrQuestionNotFound{ID: c.ID}
	}
	if c.Index < 0 || c.Index >= len(q.Options) {
		return fmt.Errorf("option index %d out of range for question %s", c.Index, c.ID)
	}
	// Keep the correctAnswer invariant intact when the edited option was
	// the correct one.
	if q.Options[c.Index] == q.CorrectAnswer {
		q.CorrectAnswer = c.Text
	}
	q.Options[c.Index] = c.Text
	return nil
}

// Log owns the working copy and the sequence of applied commands.
type Log struct {
	doc      *worksheet.Document
	commands []Command
}

// New starts an edit log over a deep copy of doc. A nil doc starts an
// empty worksheet shell.
func New(doc *worksheet.Document) *Log {
	if doc == nil {
		doc = &worksheet.Document{ID: worksheet.NewID()}
	} else {
		doc = doc.Clone()
	}
	return &Log{doc: doc}
}

// Apply runs a command against the working copy. Commands are synchronous
// and take effect immediately; a failed command is not recorded.
func (l *Log) Apply(cmd Command) error {
	if err := cmd.apply(l.doc); err != nil {
		return err
	}
	l.commands = append(l.commands, cmd)
	return nil
}

// Document returns the working copy.
func (l *Log) Document() *worksheet.Document {
	return l.doc
}

// Len returns the number of applied commands.
func (l *Log) Len() int {
	return len(l.commands)
}

// NewQuestion builds a question of the given kind with a fresh unique id
// and kind-appropriate placeholder content.
func NewQuestion(kind worksheet.Kind) worksheet.Question {
	q := worksheet.Question{ID: worksheet.NewID(), Kind: kind}
	switch kind {
	case worksheet.KindMCQ:
		q.Text = "New question"
		q.Options = []string{"Option A", "Option B", "Option C", "Option D"}
		q.CorrectAnswer = "Option A"
	case worksheet.KindTrueFalse:
		q.Text = "New true/false statement"
		q.CorrectAnswer = worksheet.AnswerTrue
	case worksheet.KindShortAnswer:
		q.Text = "New question"
		q.CorrectAnswer = "Answer"
		q.Explanation = ""
	case worksheet.KindVocabulary:
		q.Text = "New term"
		q.CorrectAnswer = "Definition"
	case worksheet.KindCharacterDrill:
		q.CorrectAnswer = "A"
	case worksheet.KindSymbolDrill:
		q.Text = "New symbol"
		q.CorrectAnswer = "+"
	case worksheet.KindSentenceDrill:
		q.CorrectAnswer = "Practice sentence."
	case worksheet.KindPageBreak:
		// No content.
	}
	return q
}
