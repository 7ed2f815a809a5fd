// Package render projects a worksheet document and a resolved layout
// plan into a styled terminal page. Rendering is read-only: the answer
// key and builder affordances are additive overlays and never touch the
// document.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"sheetwise/internal/layout"
	"sheetwise/internal/ui/theme"
	"sheetwise/internal/worksheet"
)

// Options control the additive overlays on top of the resolved plan.
type Options struct {
	// ShowKey overlays correct answers. Toggling it on and off yields
	// the same output as never enabling it.
	ShowKey bool

	// Builder shows edit affordances (question ids, selection marker).
	Builder bool

	// SelectedID highlights one question while in builder mode.
	SelectedID string

	// Width is the render width in cells. Values below 40 are clamped.
	Width int
}

// Document renders the full worksheet page.
func Document(doc *worksheet.Document, plan layout.Plan, opts Options) string {
	width := opts.Width
	if width < 40 {
		width = 40
	}
	sheet := theme.SheetFor(plan.Theme)

	var b strings.Builder
	b.WriteString(renderHeading(doc, plan, sheet, width))
	b.WriteString("\n")

	nums := worksheet.DisplayNumbers(doc.Questions)
	gap := strings.Repeat("\n", plan.QuestionGap)

	for i := range doc.Questions {
		q := &doc.Questions[i]
		b.WriteString(gap)
		b.WriteString(Question(q, nums[i], plan, sheet, opts, width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderHeading renders the title block: doodle banner for creative
// worksheets, a plain centered title otherwise.
func renderHeading(doc *worksheet.Document, plan layout.Plan, sheet theme.Sheet, width int) string {
	title := doc.Title
	if title == "" {
		title = doc.Topic
	}

	var b strings.Builder
	if plan.Doodles {
		b.WriteString(sheet.Divider.Render(centerLine("✿ ✎ ✿ ✎ ✿", width)))
		b.WriteString("\n")
	}
	b.WriteString(sheet.Title.Width(width).Render(title))
	b.WriteString("\n")
	if doc.Topic != "" && doc.Topic != title {
		b.WriteString(sheet.Topic.Width(width).Render(doc.Topic))
		b.WriteString("\n")
	}
	if doc.EducationalLevel != "" {
		b.WriteString(sheet.Muted.Width(width).Align(lipgloss.Center).Render(doc.EducationalLevel))
		b.WriteString("\n")
	}
	if doc.DiagramImage != "" {
		b.WriteString(sheet.Muted.Width(width).Align(lipgloss.Center).Render("[diagram attached, shown on export]"))
		b.WriteString("\n")
	}
	if doc.ColoringImage != "" {
		b.WriteString(sheet.Muted.Width(width).Align(lipgloss.Center).Render("[coloring picture attached, shown on export]"))
		b.WriteString("\n")
	}
	if plan.Doodles {
		b.WriteString(sheet.Divider.Render(centerLine("✿ ✎ ✿ ✎ ✿", width)))
		b.WriteString("\n")
	}
	return b.String()
}

// Question renders one question. num is the display number (0 for page
// breaks, which render as an unnumbered divider).
func Question(q *worksheet.Question, num int, plan layout.Plan, sheet theme.Sheet, opts Options, width int) string {
	if q.Kind == worksheet.KindPageBreak {
		return renderPageBreak(sheet, opts, width)
	}

	var b strings.Builder
	b.WriteString(renderPrompt(q, num, sheet, opts))

	switch q.Kind {
	case worksheet.KindMCQ:
		b.WriteString(renderMCQ(q, sheet, opts))
	case worksheet.KindTrueFalse:
		b.WriteString(renderTrueFalse(q, sheet, opts))
	case worksheet.KindShortAnswer:
		b.WriteString(renderShortAnswer(q, plan, sheet, opts, false))
	case worksheet.KindVocabulary:
		b.WriteString(renderShortAnswer(q, plan, sheet, opts, true))
	case worksheet.KindCharacterDrill, worksheet.KindSentenceDrill:
		b.WriteString(renderTrace(q.CorrectAnswer, plan, sheet))
	case worksheet.KindSymbolDrill:
		b.WriteString(renderSymbolDrill(q, plan, sheet))
	}

	return b.String()
}

// renderPrompt renders the number, challenge marker, and question text.
// Bare drills (no prompt text) get only the number line.
func renderPrompt(q *worksheet.Question, num int, sheet theme.Sheet, opts Options) string {
	var b strings.Builder

	prefix := sheet.Number.Render(fmt.Sprintf("%d.", num))
	if opts.Builder {
		marker := "  "
		if q.ID == opts.SelectedID {
			marker = sheet.Challenge.Render("▸ ")
		}
		prefix = marker + prefix
	}
	b.WriteString(prefix)

	if q.IsChallenge {
		b.WriteString(" " + sheet.Challenge.Render("★"))
	}
	if q.Text != "" {
		b.WriteString(" " + sheet.Question.Render(q.Text))
	}
	b.WriteString("\n")
	return b.String()
}

// renderMCQ lays the options out in the column count the content
// dictates, flagging the correct option only under the key overlay.
func renderMCQ(q *worksheet.Question, sheet theme.Sheet, opts Options) string {
	cols := layout.MCQColumns(q.Options)
	cellWidth := 0
	for _, o := range q.Options {
		if w := lipgloss.Width(o); w > cellWidth {
			cellWidth = w
		}
	}
	cellWidth += 8 // label, marker, padding

	var b strings.Builder
	for i, opt := range q.Options {
		label := optionLabel(i)
		mark := " "
		style := sheet.Option
		// A builder edit can break the correctAnswer invariant; then the
		// key simply flags nothing.
		if opts.ShowKey && opt == q.CorrectAnswer {
			mark = sheet.KeyMark.Render("✓")
			style = sheet.KeyMark
		}
		cell := fmt.Sprintf("%s %s) %s", mark, label, style.Render(opt))

		b.WriteString("   ")
		b.WriteString(cell)
		pad := cellWidth - lipgloss.Width(opt)
		if (i+1)%cols == 0 || i == len(q.Options)-1 {
			b.WriteString("\n")
		} else if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}

// renderTrueFalse renders exactly the two canonical choices.
func renderTrueFalse(q *worksheet.Question, sheet theme.Sheet, opts Options) string {
	var b strings.Builder
	for _, choice := range []string{worksheet.AnswerTrue, worksheet.AnswerFalse} {
		mark := " "
		style := sheet.Option
		if opts.ShowKey && choice == q.CorrectAnswer {
			mark = sheet.KeyMark.Render("✓")
			style = sheet.KeyMark
		}
		b.WriteString(fmt.Sprintf("   %s ○ %s\n", mark, style.Render(choice)))
	}
	return b.String()
}

// renderShortAnswer renders blank response lines; the key overlay adds
// the answer and explanation above them without removing the blanks, so
// the printable layout is unchanged.
func renderShortAnswer(q *worksheet.Question, plan layout.Plan, sheet theme.Sheet, opts Options, vocabulary bool) string {
	var b strings.Builder

	// Junior-tier vocabulary gets the tracing affordance for the term.
	if vocabulary && plan.TraceRepeats > 0 {
		b.WriteString(renderTrace(q.CorrectAnswer, plan, sheet))
	}

	if opts.ShowKey {
		b.WriteString("   " + sheet.KeyText.Render("Answer: "+q.CorrectAnswer) + "\n")
		if q.Explanation != "" && plan.Tier != layout.TierSenior {
			b.WriteString("   " + sheet.Muted.Render(q.Explanation) + "\n")
		}
	}

	blank := sheet.Blank.Render(strings.Repeat("_", 48))
	for range plan.ResponseLines {
		b.WriteString("   " + blank + "\n")
	}
	return b.String()
}

// renderSymbolDrill wraps the symbol trace in a callout container.
func renderSymbolDrill(q *worksheet.Question, plan layout.Plan, sheet theme.Sheet) string {
	inner := strings.TrimRight(renderTrace(q.CorrectAnswer, plan, sheet), "\n")
	box := sheet.Callout.Render(inner)
	return box + "\n"
}

// renderPageBreak renders the non-printable section divider. In builder
// mode it is labeled so it can be selected and removed.
func renderPageBreak(sheet theme.Sheet, opts Options, width int) string {
	label := "page break"
	if opts.Builder {
		label = "page break (not printed)"
	}
	line := fmt.Sprintf("· · · · ·  %s  · · · · ·", label)
	return sheet.Divider.Render(centerLine(line, width)) + "\n"
}

func optionLabel(i int) string {
	return string(rune('A' + i%26))
}

func centerLine(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
