package sheetgen

import (
	"fmt"
	"sort"
	"strings"

	"sheetwise/internal/worksheet"
)

const systemPrompt = `You are an experienced teacher creating printable practice worksheets.

Rules:
- Generate a complete worksheet for the given topic, audience, and question mix.
- Every question must be self-contained, factually correct, and age-appropriate for the stated educational level.
- For mcq questions, provide exactly 4 options where exactly one is correct, and set correct_answer to the exact text of that option. Distractors should reflect plausible mistakes, not random values.
- For true_false questions, set correct_answer to exactly "True" or "False".
- For short_answer questions, the expected answer should be a word or short phrase, not a sentence.
- For vocabulary questions, put the definition or prompt in the question field and the term being practiced in correct_answer.
- For character_drill and sentence_drill questions, put the character or sentence to trace in correct_answer and leave the question field empty.
- For symbol_drill questions, put the symbol to trace in correct_answer; the question field may hold a short label like "Plus sign".
- Drill questions need no explanation; leave it empty.
- Write explanations a student at this level can follow.
- Produce exactly the requested number of questions of each kind, in a sensible teaching order (easier material first).
- If a challenge question is requested, add exactly one extra question of any requested kind with is_challenge set to true, harder than the rest.`

// kindLabels is the prompt vocabulary for each question kind, in a
// stable presentation order.
var kindLabels = []struct {
	kind  worksheet.Kind
	label string
}{
	{worksheet.KindMCQ, "mcq (multiple choice)"},
	{worksheet.KindTrueFalse, "true_false"},
	{worksheet.KindShortAnswer, "short_answer"},
	{worksheet.KindVocabulary, "vocabulary"},
	{worksheet.KindCharacterDrill, "character_drill (letter tracing)"},
	{worksheet.KindSymbolDrill, "symbol_drill (symbol or number tracing)"},
	{worksheet.KindSentenceDrill, "sentence_drill (sentence copying)"},
}

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Educational level: %s\n", input.EducationalLevel)

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "standard"
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)

	if input.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", input.Language)
	}
	if input.Title != "" {
		fmt.Fprintf(&b, "Worksheet title: %s\n", input.Title)
	}

	b.WriteString("\nQuestion mix:\n")
	b.WriteString(buildKindMix(input.KindCounts))

	if input.IncludeChallenge {
		b.WriteString("\nInclude one extra challenge question.\n")
	}

	if input.SourceText != "" {
		b.WriteString("\nBase all questions on this source material:\n")
		b.WriteString(input.SourceText)
		b.WriteString("\n")
	}

	return b.String()
}

// buildKindMix formats the requested kind counts, skipping zero counts.
// Unknown kinds are listed after the known ones so nothing requested is
// silently dropped from the prompt.
func buildKindMix(counts map[worksheet.Kind]int) string {
	var b strings.Builder
	seen := make(map[worksheet.Kind]bool)

	for _, kl := range kindLabels {
		if n := counts[kl.kind]; n > 0 {
			fmt.Fprintf(&b, "- %d x %s\n", n, kl.label)
		}
		seen[kl.kind] = true
	}

	var rest []worksheet.Kind
	for k, n := range counts {
		if !seen[k] && n > 0 {
			rest = append(rest, k)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, k := range rest {
		fmt.Fprintf(&b, "- %d x %s\n", counts[k], k)
	}

	if b.Len() == 0 {
		return "None\n"
	}
	return b.String()
}
