// Package form is the worksheet generation form. Input is validated
// locally before any provider call: a form that fails validation never
// spends tokens.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"sheetwise/internal/config"
	"sheetwise/internal/layout"
	"sheetwise/internal/llm"
	"sheetwise/internal/router"
	"sheetwise/internal/screen"
	"sheetwise/internal/screens/sheet"
	"sheetwise/internal/sheetgen"
	"sheetwise/internal/store"
	"sheetwise/internal/ui/components"
	uilayout "sheetwise/internal/ui/layout"
	"sheetwise/internal/ui/theme"
	"sheetwise/internal/worksheet"
)

// maxQuestions caps the total question count a single worksheet may
// request.
const maxQuestions = 25

type field int

const (
	fieldTopic field = iota
	fieldLevel
	fieldDifficulty
	fieldLanguage
	fieldMCQ
	fieldTrueFalse
	fieldShortAnswer
	fieldVocabulary
	fieldSentenceDrill
	fieldChallenge
	fieldSource
	fieldGenerate

	fieldCount
)

var difficulties = []string{"standard", "easy", "challenging"}

// generatedMsg carries the generation result back to the Update loop.
type generatedMsg struct {
	Doc *worksheet.Document
	Err error
}

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// FormScreen collects generation parameters.
type FormScreen struct {
	generator  sheetgen.Generator
	worksheets store.WorksheetRepo
	attempts   *store.AttemptRepo

	// defaultTheme seeds the sheet view the generated worksheet opens in.
	defaultTheme layout.Theme

	topic    components.TextInput
	level    components.TextInput
	language components.TextInput
	source   components.TextInput
	counts   map[field]components.TextInput

	difficulty int
	challenge  bool
	focus      field

	generating   bool
	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form, pre-filled from the user config defaults.
func New(generator sheetgen.Generator, worksheets store.WorksheetRepo, attempts *store.AttemptRepo, cfg config.Config) *FormScreen {
	f := &FormScreen{
		generator:    generator,
		worksheets:   worksheets,
		attempts:     attempts,
		defaultTheme: layout.Theme(cfg.Defaults.Theme),
		topic:        components.NewTextInput("e.g. Fractions, The Water Cycle", false, 80),
		level:        components.NewTextInput("e.g. 3rd Grade, Preschool, University", false, 40),
		language:     components.NewTextInput("English", false, 30),
		source:       components.NewTextInput("optional reading passage to base questions on", false, 2000),
		counts:       make(map[field]components.TextInput),
	}

	for _, fd := range []field{fieldMCQ, fieldTrueFalse, fieldShortAnswer, fieldVocabulary, fieldSentenceDrill} {
		f.counts[fd] = components.NewTextInput("0", true, 2)
	}

	if cfg.Defaults.EducationalLevel != "" {
		f.level.Model.SetValue(cfg.Defaults.EducationalLevel)
	}
	if cfg.Defaults.Language != "" {
		f.language.Model.SetValue(cfg.Defaults.Language)
	}
	for i, d := range difficulties {
		if d == cfg.Defaults.Difficulty {
			f.difficulty = i
		}
	}

	// Start with a sensible mix so Enter-Enter-Enter still yields a
	// usable worksheet.
	mcq := f.counts[fieldMCQ]
	mcq.Model.SetValue("4")
	f.counts[fieldMCQ] = mcq
	tf := f.counts[fieldTrueFalse]
	tf.Model.SetValue("3")
	f.counts[fieldTrueFalse] = tf

	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.topic.Init()
}

func (f *FormScreen) Title() string {
	return "New Worksheet"
}

func (f *FormScreen) KeyHints() []uilayout.KeyHint {
	if f.generating {
		return []uilayout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []uilayout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		f.generating = false
		if msg.Err != nil {
			f.errMsg = describeError(msg.Err)
			return f, nil
		}
		return f, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: sheet.New(msg.Doc, f.defaultTheme, f.worksheets, f.attempts),
			}
		}

	case spinnerTickMsg:
		if !f.generating {
			return f, nil
		}
		f.spinnerFrame = (f.spinnerFrame + 1) % len(spinnerFrames)
		return f, spinnerTick()

	case tea.KeyMsg:
		if f.generating {
			return f, nil
		}
		return f.handleKey(msg)
	}

	return f, nil
}

func (f *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.focus = (f.focus + 1) % fieldCount
		return f, f.focusCmd()
	case "shift+tab", "up":
		f.focus = (f.focus - 1 + fieldCount) % fieldCount
		return f, f.focusCmd()
	case "left":
		if f.focus == fieldDifficulty {
			f.difficulty = (f.difficulty - 1 + len(difficulties)) % len(difficulties)
			return f, nil
		}
	case "right":
		if f.focus == fieldDifficulty {
			f.difficulty = (f.difficulty + 1) % len(difficulties)
			return f, nil
		}
	case "space":
		if f.focus == fieldChallenge {
			f.challenge = !f.challenge
			return f, nil
		}
	case "enter":
		if f.focus == fieldGenerate {
			return f, f.submit()
		}
		f.focus = (f.focus + 1) % fieldCount
		return f, f.focusCmd()
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTopic:
		f.topic, cmd = f.topic.Update(msg)
	case fieldLevel:
		f.level, cmd = f.level.Update(msg)
	case fieldLanguage:
		f.language, cmd = f.language.Update(msg)
	case fieldSource:
		f.source, cmd = f.source.Update(msg)
	case fieldMCQ, fieldTrueFalse, fieldShortAnswer, fieldVocabulary, fieldSentenceDrill:
		in := f.counts[f.focus]
		in, cmd = in.Update(msg)
		f.counts[f.focus] = in
	}
	return f, cmd
}

// focusCmd moves textinput focus to match the focused field.
func (f *FormScreen) focusCmd() tea.Cmd {
	f.topic.Model.Blur()
	f.level.Model.Blur()
	f.language.Model.Blur()
	f.source.Model.Blur()
	for fd, in := range f.counts {
		in.Model.Blur()
		f.counts[fd] = in
	}

	switch f.focus {
	case fieldTopic:
		return f.topic.Model.Focus()
	case fieldLevel:
		return f.level.Model.Focus()
	case fieldLanguage:
		return f.language.Model.Focus()
	case fieldSource:
		return f.source.Model.Focus()
	case fieldMCQ, fieldTrueFalse, fieldShortAnswer, fieldVocabulary, fieldSentenceDrill:
		in := f.counts[f.focus]
		cmd := in.Model.Focus()
		f.counts[f.focus] = in
		return cmd
	}
	return nil
}

// submit validates locally and, only if everything passes, starts the
// provider call.
func (f *FormScreen) submit() tea.Cmd {
	input := f.buildInput()

	if strings.TrimSpace(input.Topic) == "" {
		f.errMsg = "Topic is required."
		f.focus = fieldTopic
		return f.focusCmd()
	}
	if strings.TrimSpace(input.EducationalLevel) == "" {
		f.errMsg = "Educational level is required."
		f.focus = fieldLevel
		return f.focusCmd()
	}
	total := input.TotalQuestions()
	if total == 0 {
		f.errMsg = "Request at least one question."
		return nil
	}
	if total > maxQuestions {
		f.errMsg = fmt.Sprintf("At most %d questions per worksheet.", maxQuestions)
		return nil
	}

	f.errMsg = ""
	f.generating = true
	gen := f.generator

	return tea.Batch(spinnerTick(), func() tea.Msg {
		doc, err := gen.Generate(context.Background(), input)
		return generatedMsg{Doc: doc, Err: err}
	})
}

func (f *FormScreen) buildInput() sheetgen.GenerateInput {
	counts := map[worksheet.Kind]int{
		worksheet.KindMCQ:           f.counts[fieldMCQ].NumericValue(),
		worksheet.KindTrueFalse:     f.counts[fieldTrueFalse].NumericValue(),
		worksheet.KindShortAnswer:   f.counts[fieldShortAnswer].NumericValue(),
		worksheet.KindVocabulary:    f.counts[fieldVocabulary].NumericValue(),
		worksheet.KindSentenceDrill: f.counts[fieldSentenceDrill].NumericValue(),
	}
	return sheetgen.GenerateInput{
		Topic:            strings.TrimSpace(f.topic.Value()),
		EducationalLevel: strings.TrimSpace(f.level.Value()),
		Difficulty:       difficulties[f.difficulty],
		Language:         strings.TrimSpace(f.language.Value()),
		KindCounts:       counts,
		SourceText:       strings.TrimSpace(f.source.Value()),
		IncludeChallenge: f.challenge,
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// describeError maps provider failures to a short user-facing line.
func describeError(err error) string {
	var rate *llm.ErrRateLimit
	if errors.As(err, &rate) {
		return "The provider is rate limiting requests. Wait a moment and try again."
	}
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return "The model returned a malformed worksheet. Try again."
	}
	var verr *sheetgen.ValidationError
	if errors.As(err, &verr) {
		return "Generated worksheet failed validation: " + verr.Message + ". Try again."
	}
	var tokens *llm.ErrMaxTokensExceeded
	if errors.As(err, &tokens) {
		return "The worksheet was too long for the model. Request fewer questions."
	}
	return "Generation failed: " + err.Error()
}

func (f *FormScreen) View(width, height int) string {
	if f.generating {
		msg := spinnerFrames[f.spinnerFrame] + " Generating worksheet..."
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Body.Render(msg))
	}

	var b strings.Builder

	b.WriteString(f.textRow(fieldTopic, "Topic", f.topic))
	b.WriteString(f.textRow(fieldLevel, "Educational level", f.level))
	b.WriteString(f.cycleRow(fieldDifficulty, "Difficulty", difficulties[f.difficulty]))
	b.WriteString(f.textRow(fieldLanguage, "Language", f.language))

	b.WriteString("\n" + theme.Hint.Render("  Question mix") + "\n")
	b.WriteString(f.countRow(fieldMCQ, "Multiple choice"))
	b.WriteString(f.countRow(fieldTrueFalse, "True / False"))
	b.WriteString(f.countRow(fieldShortAnswer, "Short answer"))
	b.WriteString(f.countRow(fieldVocabulary, "Vocabulary"))
	b.WriteString(f.countRow(fieldSentenceDrill, "Sentence practice"))

	check := "[ ]"
	if f.challenge {
		check = "[x]"
	}
	b.WriteString(f.plainRow(fieldChallenge, fmt.Sprintf("%s Add a challenge question", check)))

	b.WriteString(f.textRow(fieldSource, "Source text", f.source))

	generate := "  Generate  "
	if f.focus == fieldGenerate {
		b.WriteString("\n" + theme.Selected.Render("▸"+generate) + "\n")
	} else {
		b.WriteString("\n " + theme.Unselected.Render(generate) + "\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+f.errMsg) + "\n")
	}

	form := lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, form)
}

func (f *FormScreen) label(fd field, text string) string {
	style := theme.Unselected
	marker := "  "
	if f.focus == fd {
		style = theme.Selected
		marker = "▸ "
	}
	return style.Render(marker + fmt.Sprintf("%-20s", text))
}

func (f *FormScreen) textRow(fd field, name string, in components.TextInput) string {
	return f.label(fd, name) + in.View() + "\n"
}

func (f *FormScreen) cycleRow(fd field, name, value string) string {
	return f.label(fd, name) + theme.Body.Render("‹ "+value+" ›") + "\n"
}

func (f *FormScreen) countRow(fd field, name string) string {
	return f.label(fd, "  "+name) + f.counts[fd].View() + "\n"
}

func (f *FormScreen) plainRow(fd field, text string) string {
	return f.label(fd, text) + "\n"
}
