package render

import (
	"strings"

	"sheetwise/internal/layout"
	"sheetwise/internal/ui/theme"
)

// renderTrace renders the handwriting trace affordance: the text once in
// a bold reference style, a plan-controlled number of faint repetitions,
// and dotted practice lines matched to the text width.
//
// Senior plans carry TraceRepeats == 0 and get the bare reference text
// with no practice scaffolding. The affordance is a tier rule, not a
// style toggle.
func renderTrace(text string, plan layout.Plan, sheet theme.Sheet) string {
	var b strings.Builder

	b.WriteString("   " + sheet.TraceRef.Render(text) + "\n")
	if plan.TraceRepeats == 0 {
		return b.String()
	}

	for range plan.TraceRepeats {
		b.WriteString("   " + sheet.TraceGhost.Render(text) + "\n")
	}

	// Dotted practice lines, at least as wide as the text.
	width := len([]rune(text))
	if width < 16 {
		width = 16
	}
	dotted := sheet.Blank.Render(strings.Repeat("·", width))
	for range 2 {
		b.WriteString("   " + dotted + "\n")
	}
	return b.String()
}
