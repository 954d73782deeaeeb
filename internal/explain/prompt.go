package explain

import (
	"fmt"
	"strings"

	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
)

const systemPrompt = `You are a friendly Lithuanian tutor for English speakers. A learner just answered a vocabulary question wrong and needs a short, concrete explanation.`

func buildUserMessage(in Input) string {
	q := in.Question
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.QuestionText)
	fmt.Fprintf(&b, "Sentence: %s\n", q.SentenceText)
	if q.Translation != "" {
		fmt.Fprintf(&b, "Sentence translation: %s\n", q.Translation)
	}
	fmt.Fprintf(&b, "Word: %s\n", q.QuestionWord)
	if len(q.Options) > 0 {
		fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Options, ", "))
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", q.CorrectAnswerText)
	fmt.Fprintf(&b, "Learner answered: %s\n", in.Answer)

	b.WriteString("\nInstructions:\n")
	switch q.QuestionType {
	case quizgen.FillInTheBlank:
		b.WriteString("The learner had to type the missing Lithuanian word. Explain which form was needed and why.\n")
	case quizgen.TrueFalse:
		b.WriteString("The learner had to judge whether the shown meaning was right. Explain the real meaning of the word.\n")
	default:
		b.WriteString("The learner had to pick the English meaning of the bold word. Explain the real meaning.\n")
	}
	b.WriteString(`Keep it short and plain. Name the grammatical form of the word as used in the sentence. Give one extra example sentence with its translation.`)

	return b.String()
}
