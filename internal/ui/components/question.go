// Package components renders quiz screens for the line-based terminal player.
package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
	"github.com/adilsezer/lithuaningo-sub000/internal/session"
	"github.com/adilsezer/lithuaningo-sub000/internal/ui/theme"
)

// CardWidth is the default rendering width.
const CardWidth = 60

// HighlightSentence styles the **bold** target and the blank marker of a
// question sentence.
func HighlightSentence(text string) string {
	var b strings.Builder
	parts := strings.Split(text, "**")
	for i, part := range parts {
		// Odd segments sit between a pair of markers.
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(theme.Target.Render(part))
			continue
		}
		if i%2 == 1 {
			b.WriteString("**")
		}
		b.WriteString(strings.ReplaceAll(part, quizgen.BlankMarker, theme.Blank.Render(quizgen.BlankMarker)))
	}
	return theme.Body.Render(b.String())
}

// QuestionCard renders one question with its options.
type QuestionCard struct {
	Question *quizgen.Question
	Done     int
	Total    int
	Review   bool
	Pass     int
	Width    int
}

// View renders the card.
func (c QuestionCard) View() string {
	width := c.Width
	if width <= 0 {
		width = CardWidth
	}
	q := c.Question

	label := "Quiz"
	style := theme.Card
	if c.Review {
		label = fmt.Sprintf("Review (pass %d)", c.Pass)
		style = theme.ReviewCard
	}

	lines := []string{
		ProgressBar{Label: label, Done: c.Done, Total: c.Total, Width: width - 10}.View(),
		"",
		theme.Title.Render(q.QuestionText),
		"",
		HighlightSentence(q.SentenceText),
	}
	if q.QuestionType == quizgen.FillInTheBlank && q.Translation != "" {
		lines = append(lines, theme.Hint.Render(q.Translation))
	}
	if len(q.Options) > 0 {
		lines = append(lines, "")
		for i, opt := range q.Options {
			lines = append(lines, theme.OptionIndex.Render(fmt.Sprintf("%d)", i+1))+" "+theme.Option.Render(opt))
		}
	}
	lines = append(lines, "", theme.Hint.Render(answerHint(q.QuestionType)))

	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func answerHint(t quizgen.QuestionType) string {
	switch t {
	case quizgen.FillInTheBlank:
		return "Type the missing Lithuanian word."
	case quizgen.TrueFalse:
		return "Answer 1/2, true/false or t/f."
	default:
		return "Answer with the option number or text."
	}
}

// Feedback renders the result of an answer.
func Feedback(res *session.AnswerResult) string {
	if res.Correct {
		return theme.Correct.Render("✓ Correct!")
	}
	msg := theme.Incorrect.Render("✗ Not quite.") + " " +
		theme.Body.Render("Correct answer: ") + theme.Target.Render(res.CorrectAnswer)
	if res.Question.Translation != "" {
		msg += "\n" + theme.Hint.Render(res.Question.Translation)
	}
	return msg
}

// SummaryView renders the end-of-quiz numbers.
func SummaryView(sum *session.Summary, width int) string {
	if width <= 0 {
		width = CardWidth
	}
	lines := []string{
		theme.Title.Render("Šaunu! Quiz complete"),
		"",
		fmt.Sprintf("Questions:      %d", sum.TotalQuestions),
		fmt.Sprintf("First try:      %d (%.0f%%)", sum.FirstTryCorrect, sum.Accuracy*100),
		fmt.Sprintf("Missed:         %d", sum.Missed),
		fmt.Sprintf("Review passes:  %d", sum.ReviewPasses),
		fmt.Sprintf("Time:           %s", sum.Duration.Round(time.Second)),
	}
	return theme.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
