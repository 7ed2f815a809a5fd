package sheetgen

import (
	"strings"
	"testing"

	"sheetwise/internal/worksheet"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Topic:            "Fractions",
		EducationalLevel: "3rd Grade",
		Difficulty:       "challenging",
		Language:         "Spanish",
		KindCounts: map[worksheet.Kind]int{
			worksheet.KindMCQ:         3,
			worksheet.KindShortAnswer: 2,
		},
		IncludeChallenge: true,
	})

	for _, want := range []string{
		"Topic: Fractions",
		"Educational level: 3rd Grade",
		"Difficulty: challenging",
		"Language: Spanish",
		"3 x mcq",
		"2 x short_answer",
		"challenge question",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_Defaults(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Topic:            "Weather",
		EducationalLevel: "Preschool",
		KindCounts:       map[worksheet.Kind]int{worksheet.KindCharacterDrill: 5},
	})

	if !strings.Contains(msg, "Difficulty: standard") {
		t.Error("empty difficulty should default to standard")
	}
	if strings.Contains(msg, "Language:") {
		t.Error("empty language should be omitted")
	}
	if strings.Contains(msg, "challenge") {
		t.Error("challenge line should be omitted when not requested")
	}
}

func TestBuildUserMessage_SourceText(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Topic:            "Reading comprehension",
		EducationalLevel: "4th Grade",
		KindCounts:       map[worksheet.Kind]int{worksheet.KindTrueFalse: 4},
		SourceText:       "The mitochondria is the powerhouse of the cell.",
	})

	if !strings.Contains(msg, "source material") {
		t.Error("source text preamble missing")
	}
	if !strings.Contains(msg, "powerhouse of the cell") {
		t.Error("source text missing from prompt")
	}
}

func TestBuildKindMix_SkipsZeroCounts(t *testing.T) {
	mix := buildKindMix(map[worksheet.Kind]int{
		worksheet.KindMCQ:        2,
		worksheet.KindVocabulary: 0,
	})

	if strings.Contains(mix, "vocabulary") {
		t.Errorf("zero-count kind should be omitted:\n%s", mix)
	}
	if !strings.Contains(mix, "2 x mcq") {
		t.Errorf("requested kind missing:\n%s", mix)
	}
}

func TestBuildKindMix_Empty(t *testing.T) {
	if got := buildKindMix(nil); got != "None\n" {
		t.Errorf("buildKindMix(nil) = %q, want None", got)
	}
}
