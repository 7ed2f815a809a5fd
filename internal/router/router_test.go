package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"sheetwise/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	name string
}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string          { return s.name }
func (s *stubScreen) Title() string                          { return s.name }

func TestPushPop(t *testing.T) {
	r := New(&stubScreen{name: "home"})

	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}

	r.Push(&stubScreen{name: "form"})
	if r.Depth() != 2 {
		t.Fatalf("Depth() = %d after push, want 2", r.Depth())
	}
	if r.Active().Title() != "form" {
		t.Errorf("Active() = %q, want form", r.Active().Title())
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("Active() = %q after pop, want home", r.Active().Title())
	}
}

func TestPopRetainsLastScreen(t *testing.T) {
	r := New(&stubScreen{name: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1; popping the last screen must be a no-op", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{name: "home"})
	r.Push(&stubScreen{name: "form"})
	r.Update(ReplaceScreenMsg{Screen: &stubScreen{name: "sheet"}})

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "sheet" {
		t.Errorf("Active() = %q, want sheet", r.Active().Title())
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("Active() = %q after pop, want home", r.Active().Title())
	}
}

func TestUpdateHandlesNavigationMsgs(t *testing.T) {
	r := New(&stubScreen{name: "home"})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "library"}})
	if r.Active().Title() != "library" {
		t.Errorf("Active() = %q, want library", r.Active().Title())
	}
	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("Active() = %q, want home", r.Active().Title())
	}
}
