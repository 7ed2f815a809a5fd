package sheetgen

import (
	"strings"
	"testing"

	"sheetwise/internal/worksheet"
)

func docWith(questions ...worksheet.Question) *worksheet.Document {
	return &worksheet.Document{
		ID:    worksheet.NewID(),
		Title: "Test Sheet",
		Topic: "Testing",
		Questions: func() []worksheet.Question {
			for i := range questions {
				if questions[i].ID == "" {
					questions[i].ID = worksheet.NewID()
				}
			}
			return questions
		}(),
	}
}

func TestStructural_EmptyTitle(t *testing.T) {
	v := &StructuralValidator{}
	doc := docWith(worksheet.Question{Kind: worksheet.KindTrueFalse, Text: "Water is wet.", CorrectAnswer: "True"})
	doc.Title = ""

	verr := v.Validate(doc, GenerateInput{})
	if verr == nil || !strings.Contains(verr.Message, "title") {
		t.Errorf("Validate() = %v, want title failure", verr)
	}
}

func TestStructural_NoQuestions(t *testing.T) {
	v := &StructuralValidator{}
	verr := v.Validate(docWith(), GenerateInput{})
	if verr == nil || !strings.Contains(verr.Message, "no questions") {
		t.Errorf("Validate() = %v, want no-questions failure", verr)
	}
}

func TestStructural_DrillMayOmitText(t *testing.T) {
	v := &StructuralValidator{}
	doc := docWith(worksheet.Question{Kind: worksheet.KindCharacterDrill, CorrectAnswer: "A"})

	input := GenerateInput{
		KindCounts: map[worksheet.Kind]int{worksheet.KindCharacterDrill: 1},
	}
	if verr := v.Validate(doc, input); verr != nil {
		t.Errorf("Validate() = %v, want nil for a bare drill", verr)
	}
}

func TestStructural_KindCountMismatch(t *testing.T) {
	v := &StructuralValidator{}
	doc := docWith(
		worksheet.Question{Kind: worksheet.KindTrueFalse, Text: "Water is wet.", CorrectAnswer: "True"},
	)

	input := GenerateInput{
		KindCounts: map[worksheet.Kind]int{worksheet.KindTrueFalse: 2},
	}
	verr := v.Validate(doc, input)
	if verr == nil || !strings.Contains(verr.Message, "expected 2 true_false") {
		t.Errorf("Validate() = %v, want count mismatch", verr)
	}
}

func TestStructural_ChallengeExcludedFromCounts(t *testing.T) {
	v := &StructuralValidator{}
	doc := docWith(
		worksheet.Question{Kind: worksheet.KindTrueFalse, Text: "Water is wet.", CorrectAnswer: "True"},
		worksheet.Question{Kind: worksheet.KindTrueFalse, Text: "Fire is cold.", CorrectAnswer: "False", IsChallenge: true},
	)

	input := GenerateInput{
		KindCounts:       map[worksheet.Kind]int{worksheet.KindTrueFalse: 1},
		IncludeChallenge: true,
	}
	if verr := v.Validate(doc, input); verr != nil {
		t.Errorf("Validate() = %v, want nil; challenge should not count toward the mix", verr)
	}
}

func TestStructural_MissingChallenge(t *testing.T) {
	v := &StructuralValidator{}
	doc := docWith(
		worksheet.Question{Kind: worksheet.KindTrueFalse, Text: "Water is wet.", CorrectAnswer: "True"},
	)

	input := GenerateInput{
		KindCounts:       map[worksheet.Kind]int{worksheet.KindTrueFalse: 1},
		IncludeChallenge: true,
	}
	verr := v.Validate(doc, input)
	if verr == nil || !strings.Contains(verr.Message, "challenge") {
		t.Errorf("Validate() = %v, want missing-challenge failure", verr)
	}
}

func TestDocument_InvalidAnswer(t *testing.T) {
	v := &DocumentValidator{}
	doc := docWith(
		worksheet.Question{
			Kind:          worksheet.KindMCQ,
			Text:          "Pick one",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "e",
		},
	)

	verr := v.Validate(doc, GenerateInput{})
	if verr == nil {
		t.Fatal("Validate() = nil, want correctAnswer failure")
	}
	if verr.Validator != "document" {
		t.Errorf("Validator = %q, want document", verr.Validator)
	}
}
