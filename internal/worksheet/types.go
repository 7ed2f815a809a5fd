package worksheet

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the question variants a worksheet can hold.
type Kind string

const (
	// KindMCQ is a multiple-choice question with 2+ options.
	KindMCQ Kind = "mcq"

	// KindTrueFalse is a binary True/False question.
	KindTrueFalse Kind = "true_false"

	// KindShortAnswer is a free-text question answered on blank lines.
	KindShortAnswer Kind = "short_answer"

	// KindVocabulary is a definition question; junior tiers add a
	// handwriting trace of the term.
	KindVocabulary Kind = "vocabulary"

	// KindCharacterDrill is a single character or short string to trace.
	KindCharacterDrill Kind = "character_drill"

	// KindSymbolDrill is a symbol to trace, with a label explaining it.
	KindSymbolDrill Kind = "symbol_drill"

	// KindSentenceDrill is a full sentence to trace.
	KindSentenceDrill Kind = "sentence_drill"

	// KindPageBreak is a layout-only marker. It carries no content, is
	// never numbered, and is never scored.
	KindPageBreak Kind = "page_break"
)

// TrueFalse answer values. Comparison against CorrectAnswer uses these
// exact strings.
const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// Question is one entry in a worksheet. Exactly the fields meaningful for
// its Kind are populated; Validate enforces the per-kind shape.
type Question struct {
	// ID is unique within a Document. It is the join key for builder
	// edits, quiz answers, and attempt records.
	ID string `json:"id"`

	Kind Kind `json:"kind"`

	// Text is the question prompt. Unused for character/sentence drills
	// and page breaks. For symbol drills it is the label under the symbol.
	Text string `json:"question,omitempty"`

	// Options is populated only for KindMCQ (2 or more entries).
	Options []string `json:"options,omitempty"`

	// CorrectAnswer is the canonical answer. For MCQ it equals one of
	// Options (case-sensitive). For drills it is the text to trace.
	// Empty for page breaks.
	CorrectAnswer string `json:"correctAnswer,omitempty"`

	// Explanation is instructional context, present for short answer and
	// vocabulary questions.
	Explanation string `json:"explanation,omitempty"`

	// IsChallenge marks the question for visual emphasis.
	IsChallenge bool `json:"isChallenge,omitempty"`
}

// Document is the canonical in-memory worksheet. It is created wholesale
// by generation (or as an empty shell in builder mode) and mutated only
// through builder commands.
type Document struct {
	ID               string     `json:"id,omitempty"`
	Title            string     `json:"title"`
	Topic            string     `json:"topic"`
	EducationalLevel string     `json:"educationalLevel"`
	Questions        []Question `json:"questions"`

	// ColoringImage and DiagramImage are opaque base64 raster payloads
	// carried for export tooling. The terminal renderer only marks their
	// presence.
	ColoringImage string `json:"coloringImage,omitempty"`
	DiagramImage  string `json:"diagramImage,omitempty"`

	// SavedAt is persistence metadata owned by the store; zero for
	// unsaved documents.
	SavedAt time.Time `json:"savedAt,omitempty"`
}

// NewID returns a fresh question or document id.
func NewID() string {
	return uuid.NewString()
}

// Scoreable reports whether a question kind participates in quiz scoring.
// Drill kinds and page breaks are practice-only.
func (q Question) Scoreable() bool {
	switch q.Kind {
	case KindMCQ, KindTrueFalse, KindShortAnswer:
		return true
	}
	return false
}

// IsDrill reports whether the question is a handwriting/tracing drill.
func (q Question) IsDrill() bool {
	switch q.Kind {
	case KindCharacterDrill, KindSymbolDrill, KindSentenceDrill:
		return true
	}
	return false
}

// QuestionByID returns a pointer to the question with the given id, or
// nil if absent.
func (d *Document) QuestionByID(id string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the document. Builder mode edits a clone
// so the generation output is never mutated in place.
func (d *Document) Clone() *Document {
	out := *d
	out.Questions = make([]Question, len(d.Questions))
	copy(out.Questions, d.Questions)
	for i := range out.Questions {
		if d.Questions[i].Options != nil {
			out.Questions[i].Options = append([]string(nil), d.Questions[i].Options...)
		}
	}
	return &out
}
