// Package layout resolves presentation parameters for a worksheet from
// its educational level and the caller's requested theme and mode flags.
// Resolution is pure: same inputs, same Plan, no stored state. Screens
// call Resolve on every render, so tier overrides are never sticky.
package layout

import (
	"strings"
	"unicode/utf8"
)

// Theme selects the worksheet's visual register.
type Theme string

const (
	// ThemeClassic is the plain, print-oriented look.
	ThemeClassic Theme = "classic"

	// ThemeCreative is the playful look with doodle borders and tracing.
	ThemeCreative Theme = "creative"
)

// Tier is the coarse audience classification derived from the
// educational-level label. It is always derived, never stored.
type Tier int

const (
	TierStandard Tier = iota
	TierPreschool
	TierSenior
)

// seniorMarkers are the exact level substrings that classify a document
// as senior. Renaming level labels must preserve these markers.
var seniorMarkers = []string{"High School", "University", "Professional"}

// ClassifyTier derives the tier from the free-form educational level.
// Preschool wins over senior if a label somehow matches both.
func ClassifyTier(educationalLevel string) Tier {
	if strings.Contains(educationalLevel, "Preschool") {
		return TierPreschool
	}
	for _, m := range seniorMarkers {
		if strings.Contains(educationalLevel, m) {
			return TierSenior
		}
	}
	return TierStandard
}

// Request carries the caller's presentation choices before tier
// overrides are applied.
type Request struct {
	EducationalLevel string
	Theme            Theme
	MathMode         bool
	Doodles          bool
}

// Plan is the resolved rendering plan the renderer consumes.
type Plan struct {
	// Theme is the effective theme after tier overrides.
	Theme Theme

	// Doodles is the effective doodle setting after tier overrides.
	Doodles bool

	Tier     Tier
	MathMode bool

	// ClassicProfessional is true for a classic-themed senior worksheet:
	// the dense, print-first presentation.
	ClassicProfessional bool

	// QuestionGap is the number of blank lines between questions.
	QuestionGap int

	// ResponseLines is the number of blank answer lines for short-answer
	// and vocabulary questions.
	ResponseLines int

	// TraceRepeats is how many faint trace repetitions the trace
	// affordance renders. Zero disables tracing entirely; it is always
	// zero for senior documents.
	TraceRepeats int
}

// Resolve maps a Request to a Plan.
//
// Override precedence, highest first:
//  1. Preschool forces the creative theme and doodles on.
//  2. Senior forces the classic theme (creative tracing UI must never
//     reach a senior document) and tracing off.
//  3. Math mode tightens density for the classic professional tier.
func Resolve(req Request) Plan {
	tier := ClassifyTier(req.EducationalLevel)

	theme := req.Theme
	if theme != ThemeCreative {
		theme = ThemeClassic
	}
	doodles := req.Doodles

	switch tier {
	case TierPreschool:
		theme = ThemeCreative
		doodles = true
	case TierSenior:
		theme = ThemeClassic
		doodles = false
	}

	p := Plan{
		Theme:               theme,
		Doodles:             doodles,
		Tier:                tier,
		MathMode:            req.MathMode,
		ClassicProfessional: theme == ThemeClassic && tier == TierSenior,
	}

	switch {
	case tier == TierPreschool:
		p.QuestionGap = 2
		p.ResponseLines = 6
		p.TraceRepeats = 3
	case p.ClassicProfessional:
		p.QuestionGap = 1
		p.ResponseLines = 4
		if p.MathMode {
			p.ResponseLines = 5 // working space for derivations
		}
	case theme == ThemeCreative:
		p.QuestionGap = 2
		p.ResponseLines = 5
		p.TraceRepeats = 2
		if doodles {
			p.TraceRepeats = 3
		}
	default:
		p.QuestionGap = 1
		p.ResponseLines = 5
		p.TraceRepeats = 2
	}

	return p
}

// MCQColumns picks the option-grid column count from the longest option.
// Boundaries are strict: <15 chars gives 4 columns, <40 gives 2,
// anything longer collapses to a single column.
func MCQColumns(options []string) int {
	longest := 0
	for _, o := range options {
		if n := utf8.RuneCountInString(o); n > longest {
			longest = n
		}
	}
	switch {
	case longest < 15:
		return 4
	case longest < 40:
		return 2
	default:
		return 1
	}
}
