package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"sheetwise/internal/ui/theme"
)

// Choice is an option selector for quiz questions. Unlike an answer
// key, it never reveals correctness; it only tracks which option the
// user picked.
type Choice struct {
	Options  []string
	Selected int
	Labeled  bool // render A) B) C) labels
}

// NewChoice creates a selector over the given options. picked is the
// previously chosen value, or empty.
func NewChoice(options []string, picked string, labeled bool) Choice {
	c := Choice{Options: options, Labeled: labeled}
	for i, opt := range options {
		if opt == picked {
			c.Selected = i
		}
	}
	return c
}

// Update handles keyboard navigation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// Value returns the currently highlighted option text.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the options. picked marks the committed answer, which
// may differ from the highlight while the user is reconsidering.
func (c Choice) View(picked string) string {
	var s string
	for i, opt := range c.Options {
		prefix := "    "
		if i == c.Selected {
			prefix = "  ▸ "
		}

		line := opt
		if c.Labeled {
			line = fmt.Sprintf("%c)  %s", 'A'+i%26, opt)
		}
		if opt == picked && picked != "" {
			line += "  ●"
		}

		if i == c.Selected {
			s += theme.Selected.Render(prefix+line) + "\n"
		} else {
			s += theme.Unselected.Render(prefix+line) + "\n"
		}
	}
	return s
}
