// Package home is the entry screen: a banner and the main menu.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"sheetwise/internal/config"
	"sheetwise/internal/layout"
	"sheetwise/internal/router"
	"sheetwise/internal/screen"
	"sheetwise/internal/screens/form"
	"sheetwise/internal/screens/library"
	"sheetwise/internal/sheetgen"
	"sheetwise/internal/store"
	"sheetwise/internal/ui/components"
	"sheetwise/internal/ui/theme"
)

const banner = `
 ███████ ██   ██ ███████ ███████ ████████ ██     ██ ██ ███████ ███████
 ██      ██   ██ ██      ██         ██    ██     ██ ██ ██      ██
 ███████ ███████ █████   █████      ██    ██  █  ██ ██ ███████ █████
      ██ ██   ██ ██      ██         ██    ██ ███ ██ ██      ██ ██
 ███████ ██   ██ ███████ ███████    ██     ███ ███  ██ ███████ ███████
`

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu         components.Menu
	aiConfigured bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. generator is nil when no LLM provider is
// configured; the generate entry is disabled then.
func New(generator sheetgen.Generator, worksheets store.WorksheetRepo, attempts *store.AttemptRepo, cfg config.Config) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:    "NEW WORKSHEET",
			Hint:     "generate a worksheet with AI",
			Disabled: generator == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: form.New(generator, worksheets, attempts, cfg),
					}
				}
			},
		},
		{
			Label: "LIBRARY",
			Hint:  "saved worksheets",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: library.New(worksheets, attempts, layout.Theme(cfg.Defaults.Theme)),
					}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		aiConfigured: generator != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var parts []string

	parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Render(banner))
	parts = append(parts, theme.Subtitle.Width(width).Render("worksheets from a prompt, printed from your terminal"))
	parts = append(parts, "")

	if !h.aiConfigured {
		parts = append(parts, theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No LLM provider configured. Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY."))
		parts = append(parts, "")
	}

	parts = append(parts, h.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
