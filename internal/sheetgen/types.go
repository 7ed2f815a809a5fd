package sheetgen

import "sheetwise/internal/worksheet"

// GenerateInput holds all context needed to generate a worksheet.
type GenerateInput struct {
	// Topic is the subject matter, e.g. "Fractions" or "The Water Cycle".
	Topic string

	// Title optionally overrides the generated worksheet title.
	// When empty the model chooses one.
	Title string

	// EducationalLevel is the free-text audience label, e.g.
	// "3rd Grade", "Preschool", "University".
	EducationalLevel string

	// Difficulty is "easy", "standard", or "challenging".
	// Empty means "standard".
	Difficulty string

	// Language is the language the worksheet content should be written
	// in. Empty means English.
	Language string

	// KindCounts maps each requested question kind to how many of that
	// kind the worksheet should contain. Kinds with a zero count are
	// omitted from the prompt.
	KindCounts map[worksheet.Kind]int

	// SourceText is optional reference material the questions should be
	// drawn from, e.g. a pasted reading passage.
	SourceText string

	// IncludeChallenge asks for one extra stretch question marked as a
	// challenge.
	IncludeChallenge bool
}

// TotalQuestions sums the requested kind counts.
func (in GenerateInput) TotalQuestions() int {
	total := 0
	for _, n := range in.KindCounts {
		total += n
	}
	return total
}
