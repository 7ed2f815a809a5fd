// Package sheet is the worksheet view: the rendered page plus the
// toggles (answer key, theme, math mode) and builder mode for
// structural edits.
package sheet

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"sheetwise/internal/builder"
	"sheetwise/internal/layout"
	"sheetwise/internal/render"
	"sheetwise/internal/router"
	"sheetwise/internal/screen"
	"sheetwise/internal/screens/quiz"
	"sheetwise/internal/store"
	"sheetwise/internal/ui/components"
	uilayout "sheetwise/internal/ui/layout"
	"sheetwise/internal/ui/theme"
	"sheetwise/internal/worksheet"
)

// SheetScreen displays and edits one worksheet.
type SheetScreen struct {
	doc        *worksheet.Document
	worksheets store.WorksheetRepo
	attempts   *store.AttemptRepo

	theme    layout.Theme
	mathMode bool
	doodles  bool
	showKey  bool

	// Builder state. log is non-nil while builder mode is active; all
	// edits go through it and the visible document is its working copy.
	log      *builder.Log
	selected int

	// Text edit overlay. editOption is -1 when editing the question
	// text, -2 when editing the answer, otherwise the option index.
	editing    bool
	editOption int
	editInput  components.TextInput

	// Add-question overlay.
	adding  bool
	addMenu components.Menu

	scroll int
	status string
}

var _ screen.Screen = (*SheetScreen)(nil)
var _ screen.KeyHintProvider = (*SheetScreen)(nil)
var _ screen.StatusProvider = (*SheetScreen)(nil)
var _ screen.EscInterceptor = (*SheetScreen)(nil)

// New creates the sheet screen for a freshly generated or loaded
// document. initialTheme seeds the theme toggle, usually from the user
// config default; anything but creative normalizes to classic.
func New(doc *worksheet.Document, initialTheme layout.Theme, worksheets store.WorksheetRepo, attempts *store.AttemptRepo) *SheetScreen {
	if initialTheme != layout.ThemeCreative {
		initialTheme = layout.ThemeClassic
	}
	return &SheetScreen{
		doc:   doc,
		theme: initialTheme,

		worksheets: worksheets,
		attempts:   attempts,
	}
}

func (s *SheetScreen) Init() tea.Cmd {
	return nil
}

func (s *SheetScreen) Title() string {
	if s.log != nil {
		return "Builder"
	}
	return "Worksheet"
}

// Status reports the save state in the header.
func (s *SheetScreen) Status() string {
	if s.doc.SavedAt.IsZero() {
		return "unsaved"
	}
	return "saved " + s.doc.SavedAt.Local().Format("Jan 2 15:04")
}

// InterceptEsc consumes Esc while an overlay or builder mode is active
// so it backs out one level instead of leaving the screen.
func (s *SheetScreen) InterceptEsc() bool {
	return s.editing || s.adding || s.log != nil
}

func (s *SheetScreen) KeyHints() []uilayout.KeyHint {
	if s.editing {
		return []uilayout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.adding {
		return []uilayout.KeyHint{
			{Key: "↑↓", Description: "Kind"},
			{Key: "Enter", Description: "Insert"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.log != nil {
		return []uilayout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "a", Description: "Add"},
			{Key: "d", Description: "Remove"},
			{Key: "e", Description: "Edit text"},
			{Key: "1-9", Description: "Edit option"},
			{Key: "y", Description: "Edit answer"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []uilayout.KeyHint{
		{Key: "k", Description: "Key"},
		{Key: "t", Description: "Theme"},
		{Key: "m", Description: "Math"},
		{Key: "b", Description: "Builder"},
		{Key: "s", Description: "Save"},
		{Key: "q", Description: "Quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the document currently on screen: the builder's
// working copy while editing, the committed document otherwise.
func (s *SheetScreen) visible() *worksheet.Document {
	if s.log != nil {
		return s.log.Document()
	}
	return s.doc
}

func (s *SheetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case s.editing:
		return s.updateEditing(kmsg)
	case s.adding:
		var cmd tea.Cmd
		if kmsg.String() == "esc" {
			s.adding = false
			return s, nil
		}
		s.addMenu, cmd = s.addMenu.Update(kmsg)
		return s, cmd
	case s.log != nil:
		return s.updateBuilder(kmsg)
	}
	return s.updateView(kmsg)
}

func (s *SheetScreen) updateView(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "k":
		// Toggling the key on and off leaves the page untouched.
		s.showKey = !s.showKey
	case "t":
		if s.theme == layout.ThemeClassic {
			s.theme = layout.ThemeCreative
		} else {
			s.theme = layout.ThemeClassic
		}
	case "m":
		s.mathMode = !s.mathMode
	case "o":
		s.doodles = !s.doodles
	case "b":
		s.log = builder.New(s.doc)
		s.selected = 0
		s.status = ""
	case "s":
		return s, s.save()
	case "q":
		if len(worksheet.ScoreableQuestions(s.doc.Questions)) == 0 {
			s.status = "Nothing to quiz: no gradeable questions."
			return s, nil
		}
		doc := s.doc
		attempts := s.attempts
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: quiz.New(doc, attempts)}
		}
	case "up":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down":
		s.scroll++
	case "pgup":
		s.scroll -= 10
		if s.scroll < 0 {
			s.scroll = 0
		}
	case "pgdown":
		s.scroll += 10
	}
	return s, nil
}

func (s *SheetScreen) updateBuilder(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	doc := s.log.Document()

	switch msg.String() {
	case "esc", "b":
		// Commit the working copy.
		s.doc = s.log.Document()
		s.log = nil
		s.status = ""
		return s, nil
	case "up":
		if s.selected > 0 {
			s.selected--
		}
	case "down":
		if s.selected < len(doc.Questions)-1 {
			s.selected++
		}
	case "a":
		s.openAddMenu()
	case "d":
		if q := s.selectedQuestion(); q != nil {
			s.apply(builder.RemoveQuestion{ID: q.ID})
			if s.selected >= len(s.log.Document().Questions) && s.selected > 0 {
				s.selected--
			}
		}
	case "e":
		if q := s.selectedQuestion(); q != nil && q.Kind != worksheet.KindPageBreak {
			s.startEdit(-1, q.Text)
		}
	case "y":
		if q := s.selectedQuestion(); q != nil && q.Kind != worksheet.KindPageBreak {
			s.startEdit(-2, q.CorrectAnswer)
		}
	default:
		key := msg.String()
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if q := s.selectedQuestion(); q != nil && idx < len(q.Options) {
				s.startEdit(idx, q.Options[idx])
			}
		}
	}
	return s, nil
}

func (s *SheetScreen) updateEditing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "enter":
		s.editing = false
		q := s.selectedQuestion()
		if q == nil {
			return s, nil
		}
		value := s.editInput.Value()
		switch {
		case s.editOption == -1:
			s.apply(builder.EditText{ID: q.ID, Text: value})
		case s.editOption == -2:
			s.apply(builder.EditAnswer{ID: q.ID, Value: value})
		default:
			s.apply(builder.EditOption{ID: q.ID, Index: s.editOption, Text: value})
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.editInput, cmd = s.editInput.Update(msg)
	return s, cmd
}

func (s *SheetScreen) startEdit(option int, current string) {
	s.editOption = option
	s.editInput = components.NewTextInput("", false, 500)
	s.editInput.Model.SetValue(current)
	s.editing = true
}

// openAddMenu builds the kind picker. The new question is inserted at
// the end of the document with placeholder content.
func (s *SheetScreen) openAddMenu() {
	kinds := []struct {
		label string
		kind  worksheet.Kind
	}{
		{"Multiple choice", worksheet.KindMCQ},
		{"True / False", worksheet.KindTrueFalse},
		{"Short answer", worksheet.KindShortAnswer},
		{"Vocabulary", worksheet.KindVocabulary},
		{"Sentence practice", worksheet.KindSentenceDrill},
		{"Page break", worksheet.KindPageBreak},
	}

	items := make([]components.MenuItem, 0, len(kinds))
	for _, k := range kinds {
		kind := k.kind
		items = append(items, components.MenuItem{
			Label: k.label,
			Action: func() tea.Cmd {
				s.apply(builder.AddQuestion{Kind: kind})
				s.adding = false
				s.selected = len(s.log.Document().Questions) - 1
				return nil
			},
		})
	}

	s.addMenu = components.NewMenu(items)
	s.adding = true
}

// apply runs one builder command, surfacing failures in the status line.
func (s *SheetScreen) apply(cmd builder.Command) {
	if err := s.log.Apply(cmd); err != nil {
		s.status = "Edit failed: " + err.Error()
		return
	}
	s.status = ""
}

func (s *SheetScreen) selectedQuestion() *worksheet.Question {
	doc := s.log.Document()
	if s.selected < 0 || s.selected >= len(doc.Questions) {
		return nil
	}
	return &doc.Questions[s.selected]
}

func (s *SheetScreen) save() tea.Cmd {
	if err := s.worksheets.Save(context.Background(), s.doc); err != nil {
		s.status = "Save failed: " + err.Error()
		return nil
	}
	s.status = fmt.Sprintf("Saved %q.", s.doc.Title)
	return nil
}

func (s *SheetScreen) View(width, height int) string {
	doc := s.visible()

	plan := layout.Resolve(layout.Request{
		EducationalLevel: doc.EducationalLevel,
		Theme:            s.theme,
		MathMode:         s.mathMode,
		Doodles:          s.doodles,
	})

	opts := render.Options{
		ShowKey: s.showKey,
		Builder: s.log != nil,
		Width:   width - 4,
	}
	if s.log != nil {
		if q := s.selectedQuestion(); q != nil {
			opts.SelectedID = q.ID
		}
	}

	page := render.Document(doc, plan, opts)

	if s.adding {
		page = theme.Body.Render("Add question:") + "\n\n" + s.addMenu.View()
	} else if s.editing {
		label := "Question text"
		if s.editOption == -2 {
			label = "Correct answer"
		} else if s.editOption >= 0 {
			label = fmt.Sprintf("Option %c", 'A'+s.editOption)
		}
		page = theme.Body.Render(label+":") + "\n\n" + s.editInput.View()
	}

	lines := strings.Split(page, "\n")
	statusLines := 0
	if s.status != "" {
		statusLines = 2
	}
	visible := height - statusLines
	if visible < 1 {
		visible = 1
	}

	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	out := strings.Join(lines[s.scroll:end], "\n")
	if s.status != "" {
		out += "\n\n" + theme.Hint.Render("  "+s.status)
	}
	return out
}
