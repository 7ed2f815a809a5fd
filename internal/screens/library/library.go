// Package library lists saved worksheets and opens them back into the
// sheet view.
package library

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"sheetwise/internal/layout"
	"sheetwise/internal/quiz"
	"sheetwise/internal/router"
	"sheetwise/internal/screen"
	"sheetwise/internal/screens/sheet"
	"sheetwise/internal/store"
	uilayout "sheetwise/internal/ui/layout"
	"sheetwise/internal/ui/theme"
	"sheetwise/internal/worksheet"
)

// loadedMsg carries list results back to the Update loop.
type loadedMsg struct {
	Summaries []store.WorksheetSummary
	Attempts  map[string][]quiz.Attempt
	Err       error
}

// openedMsg carries a loaded document ready for the sheet view.
type openedMsg struct {
	Doc *worksheet.Document
	Err error
}

// deletedMsg confirms a delete.
type deletedMsg struct {
	Err error
}

// LibraryScreen lists stored worksheets.
type LibraryScreen struct {
	worksheets store.WorksheetRepo
	attempts   *store.AttemptRepo

	// defaultTheme seeds the sheet view an opened worksheet starts in.
	defaultTheme layout.Theme

	summaries []store.WorksheetSummary
	best      map[string][]quiz.Attempt
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library screen.
func New(worksheets store.WorksheetRepo, attempts *store.AttemptRepo, defaultTheme layout.Theme) *LibraryScreen {
	return &LibraryScreen{
		worksheets:   worksheets,
		attempts:     attempts,
		defaultTheme: defaultTheme,
	}
}

func (l *LibraryScreen) Init() tea.Cmd {
	return l.load()
}

func (l *LibraryScreen) Title() string {
	return "Library"
}

func (l *LibraryScreen) KeyHints() []uilayout.KeyHint {
	return []uilayout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Open"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LibraryScreen) load() tea.Cmd {
	worksheets := l.worksheets
	attempts := l.attempts
	return func() tea.Msg {
		ctx := context.Background()
		summaries, err := worksheets.List(ctx, 0)
		if err != nil {
			return loadedMsg{Err: err}
		}
		recent := make(map[string][]quiz.Attempt, len(summaries))
		if attempts != nil {
			for _, s := range summaries {
				if a, err := attempts.Recent(ctx, s.ID); err == nil {
					recent[s.ID] = a
				}
			}
		}
		return loadedMsg{Summaries: summaries, Attempts: recent}
	}
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		l.loaded = true
		if msg.Err != nil {
			l.errMsg = "Failed to load library: " + msg.Err.Error()
			return l, nil
		}
		l.summaries = msg.Summaries
		l.best = msg.Attempts
		if l.selected >= len(l.summaries) {
			l.selected = 0
		}
		return l, nil

	case openedMsg:
		if msg.Err != nil {
			l.errMsg = "Failed to open worksheet: " + msg.Err.Error()
			return l, nil
		}
		doc := msg.Doc
		worksheets := l.worksheets
		attempts := l.attempts
		defaultTheme := l.defaultTheme
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: sheet.New(doc, defaultTheme, worksheets, attempts)}
		}

	case deletedMsg:
		if msg.Err != nil {
			l.errMsg = "Delete failed: " + msg.Err.Error()
			return l, nil
		}
		return l, l.load()

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l, nil
}

func (l *LibraryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < len(l.summaries)-1 {
			l.selected++
		}
	case "enter":
		if len(l.summaries) == 0 {
			return l, nil
		}
		id := l.summaries[l.selected].ID
		worksheets := l.worksheets
		return l, func() tea.Msg {
			doc, err := worksheets.Get(context.Background(), id)
			return openedMsg{Doc: doc, Err: err}
		}
	case "d":
		if len(l.summaries) == 0 {
			return l, nil
		}
		id := l.summaries[l.selected].ID
		worksheets := l.worksheets
		return l, func() tea.Msg {
			return deletedMsg{Err: worksheets.Delete(context.Background(), id)}
		}
	}
	return l, nil
}

func (l *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	switch {
	case l.errMsg != "":
		b.WriteString(theme.Incorrect.Render("  " + l.errMsg))
	case !l.loaded:
		b.WriteString(theme.Hint.Render("  Loading..."))
	case len(l.summaries) == 0:
		b.WriteString(theme.Hint.Render("  No saved worksheets yet. Generate one and press s to save it."))
	default:
		for i, s := range l.summaries {
			line := fmt.Sprintf("%-32s %-20s %s",
				truncate(s.Title, 32), truncate(s.EducationalLevel, 20),
				s.SavedAt.Local().Format("Jan 2 2006"))
			if i == l.selected {
				b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("    "+line) + "\n")
			}
			if attempts := l.best[s.ID]; len(attempts) > 0 {
				latest := attempts[0]
				b.WriteString(theme.Hint.Render(fmt.Sprintf(
					"      last quiz %d/%d on %s, %d attempt(s) kept",
					latest.Score, latest.Total,
					latest.At.Local().Format("Jan 2"), len(attempts))) + "\n")
			}
		}
	}

	box := lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, box)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
