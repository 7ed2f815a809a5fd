package theme

import (
	"charm.land/lipgloss/v2"

	"sheetwise/internal/layout"
)

// App chrome palette used by the header, footer, and menus.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography for the shell.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States shared by menus and inputs.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Sheet is the style set for rendering a worksheet body. The renderer
// never builds styles itself; it picks them from the palette the layout
// plan selects.
type Sheet struct {
	Title      lipgloss.Style
	Topic      lipgloss.Style
	Number     lipgloss.Style
	Question   lipgloss.Style
	Option     lipgloss.Style
	KeyMark    lipgloss.Style // answer-key flag on the correct option
	KeyText    lipgloss.Style // answer-key overlay text
	Blank      lipgloss.Style // blank response lines
	TraceRef   lipgloss.Style // bold reference text for tracing
	TraceGhost lipgloss.Style // faint trace repetitions
	Challenge  lipgloss.Style
	Divider    lipgloss.Style
	Callout    lipgloss.Style // bordered container for symbol drills
	Muted      lipgloss.Style
}

// classicSheet is the plain, print-first look: no borders, restrained color.
var classicSheet = Sheet{
	Title:      lipgloss.NewStyle().Bold(true).Foreground(Text).Align(lipgloss.Center),
	Topic:      lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center),
	Number:     lipgloss.NewStyle().Bold(true).Foreground(Text),
	Question:   lipgloss.NewStyle().Foreground(Text),
	Option:     lipgloss.NewStyle().Foreground(Text),
	KeyMark:    lipgloss.NewStyle().Foreground(Success).Bold(true),
	KeyText:    lipgloss.NewStyle().Foreground(Success).Italic(true),
	Blank:      lipgloss.NewStyle().Foreground(Border),
	TraceRef:   lipgloss.NewStyle().Bold(true).Foreground(Text),
	TraceGhost: lipgloss.NewStyle().Foreground(TextDim).Faint(true),
	Challenge:  lipgloss.NewStyle().Foreground(Accent).Bold(true),
	Divider:    lipgloss.NewStyle().Foreground(Border),
	Callout: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(0, 2),
	Muted: lipgloss.NewStyle().Foreground(TextDim),
}

// creativeSheet is the playful look for junior tiers.
var creativeSheet = Sheet{
	Title:      lipgloss.NewStyle().Bold(true).Foreground(Secondary).Align(lipgloss.Center),
	Topic:      lipgloss.NewStyle().Foreground(Accent).Italic(true).Align(lipgloss.Center),
	Number:     lipgloss.NewStyle().Bold(true).Foreground(Secondary),
	Question:   lipgloss.NewStyle().Foreground(Text),
	Option:     lipgloss.NewStyle().Foreground(Text),
	KeyMark:    lipgloss.NewStyle().Foreground(Success).Bold(true),
	KeyText:    lipgloss.NewStyle().Foreground(Success).Italic(true),
	Blank:      lipgloss.NewStyle().Foreground(Secondary).Faint(true),
	TraceRef:   lipgloss.NewStyle().Bold(true).Foreground(Accent),
	TraceGhost: lipgloss.NewStyle().Foreground(TextDim).Faint(true),
	Challenge:  lipgloss.NewStyle().Foreground(Accent).Bold(true),
	Divider:    lipgloss.NewStyle().Foreground(Secondary),
	Callout: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 2),
	Muted: lipgloss.NewStyle().Foreground(TextDim),
}

// SheetFor returns the worksheet style set for an effective theme.
func SheetFor(t layout.Theme) Sheet {
	if t == layout.ThemeCreative {
		return creativeSheet
	}
	return classicSheet
}
