// Package quiz is the interactive quiz screen: one gradeable question
// at a time, a summary with per-question marks after submission, and
// the attempt history for the worksheet.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizcore "sheetwise/internal/quiz"
	"sheetwise/internal/screen"
	"sheetwise/internal/store"
	"sheetwise/internal/ui/components"
	uilayout "sheetwise/internal/ui/layout"
	"sheetwise/internal/ui/theme"
	"sheetwise/internal/worksheet"
)

// QuizScreen runs one quiz session.
type QuizScreen struct {
	session *quizcore.Session
	title   string

	index  int
	choice components.Choice
	input  components.TextInput
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a quiz over the worksheet's gradeable questions. attempts
// may be nil; the session then keeps history in memory only.
func New(doc *worksheet.Document, attempts *store.AttemptRepo) *QuizScreen {
	var recorder quizcore.Recorder
	if attempts != nil {
		recorder = attempts
	}
	q := &QuizScreen{
		session: quizcore.New(doc, recorder),
		title:   doc.Title,
	}
	q.loadQuestion()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.input.Init()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []uilayout.KeyHint {
	if q.session.Submitted() {
		return []uilayout.KeyHint{
			{Key: "r", Description: "Retake"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []uilayout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "Enter", Description: "Answer"},
		{Key: "ctrl+s", Description: "Submit"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

// current returns the question under the cursor.
func (q *QuizScreen) current() worksheet.Question {
	return q.session.Questions()[q.index]
}

// loadQuestion rebuilds the input widgets for the current question,
// restoring any previously recorded answer.
func (q *QuizScreen) loadQuestion() {
	cur := q.current()
	answer := q.session.Answer(cur.ID)

	switch cur.Kind {
	case worksheet.KindMCQ:
		q.choice = components.NewChoice(cur.Options, answer, true)
	case worksheet.KindTrueFalse:
		q.choice = components.NewChoice(
			[]string{worksheet.AnswerTrue, worksheet.AnswerFalse}, answer, false)
	default:
		q.input = components.NewTextInput("Type your answer...", false, 120)
		q.input.Model.SetValue(answer)
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}

	if q.session.Submitted() {
		if kmsg.String() == "r" {
			q.session.Reset()
			q.index = 0
			q.loadQuestion()
			return q, q.input.Init()
		}
		return q, nil
	}

	switch kmsg.String() {
	case "left":
		if q.index > 0 {
			q.index--
			q.loadQuestion()
			return q, q.input.Init()
		}
		return q, nil
	case "right":
		if q.index < q.session.Total()-1 {
			q.index++
			q.loadQuestion()
			return q, q.input.Init()
		}
		return q, nil
	case "ctrl+s":
		q.session.Submit(context.Background())
		return q, nil
	case "enter":
		cur := q.current()
		switch cur.Kind {
		case worksheet.KindMCQ, worksheet.KindTrueFalse:
			q.session.SetAnswer(cur.ID, q.choice.Value())
		default:
			q.session.SetAnswer(cur.ID, q.input.Value())
		}
		// Advance; on the last question stay put so the user can
		// review before submitting.
		if q.index < q.session.Total()-1 {
			q.index++
			q.loadQuestion()
			return q, q.input.Init()
		}
		return q, nil
	}

	cur := q.current()
	var cmd tea.Cmd
	switch cur.Kind {
	case worksheet.KindMCQ, worksheet.KindTrueFalse:
		q.choice, cmd = q.choice.Update(kmsg)
	default:
		q.input, cmd = q.input.Update(kmsg)
	}
	return q, cmd
}

func (q *QuizScreen) View(width, height int) string {
	if q.session.Submitted() {
		return q.viewSummary(width, height)
	}
	return q.viewQuestion(width, height)
}

func (q *QuizScreen) viewQuestion(width, height int) string {
	cur := q.current()

	answered := 0
	for _, question := range q.session.Questions() {
		if q.session.Answer(question.ID) != "" {
			answered++
		}
	}

	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", q.index+1, q.session.Total()),
		float64(answered)/float64(q.session.Total()),
		false,
		width-12,
	)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render(cur.Text) + "\n\n")

	switch cur.Kind {
	case worksheet.KindMCQ, worksheet.KindTrueFalse:
		b.WriteString(q.choice.View(q.session.Answer(cur.ID)))
	default:
		b.WriteString("  " + q.input.View() + "\n")
	}

	if answered == q.session.Total() {
		b.WriteString("\n" + theme.Hint.Render("  All questions answered. Press ctrl+s to submit."))
	}

	box := lipgloss.NewStyle().Padding(1, 4).Width(width).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, box)
}

func (q *QuizScreen) viewSummary(width, height int) string {
	var b strings.Builder

	score := q.session.Score()
	total := q.session.Total()

	headline := fmt.Sprintf("Score: %d / %d", score, total)
	style := theme.Correct
	if score*2 < total {
		style = theme.Incorrect
	}
	b.WriteString(style.Render(headline) + "\n\n")

	for i, question := range q.session.Questions() {
		mark := theme.Incorrect.Render("✗")
		if q.session.Correct(question.ID) {
			mark = theme.Correct.Render("✓")
		}
		answer := q.session.Answer(question.ID)
		if answer == "" {
			answer = "(no answer)"
		}
		b.WriteString(fmt.Sprintf(" %s %d. %s\n", mark, i+1, question.Text))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("      yours: %s    correct: %s", answer, question.CorrectAnswer)) + "\n")
	}

	history := q.session.History()
	if len(history) > 0 {
		b.WriteString("\n" + theme.Body.Render("Attempts") + "\n")
		for _, a := range history {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s  %d/%d",
				a.At.Local().Format("Jan 2 15:04"), a.Score, a.Total)) + "\n")
		}
	}

	box := lipgloss.NewStyle().Padding(1, 4).Width(width).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, box)
}
