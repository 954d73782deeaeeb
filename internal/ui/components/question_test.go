package components

import (
	"strings"
	"testing"

	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
	"github.com/adilsezer/lithuaningo-sub000/internal/session"
)

// plain drops styling and collapses whitespace.
func plain(s string) string {
	return strings.Join(strings.Fields(stripANSI(s)), " ")
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestHighlightSentence(t *testing.T) {
	got := plain(HighlightSentence("Aš myliu **šunį**."))
	if got != "Aš myliu šunį." {
		t.Errorf("got %q", got)
	}

	got = plain(HighlightSentence("Aš matau [...]."))
	if got != "Aš matau [...]." {
		t.Errorf("got %q", got)
	}

	got = plain(HighlightSentence("odd ** marker"))
	if got != "odd ** marker" {
		t.Errorf("unpaired marker should be kept, got %q", got)
	}
}

func TestQuestionCardView(t *testing.T) {
	q := &quizgen.Question{
		QuestionText: "What does **šunį** mean in this sentence?",
		SentenceText: "Aš myliu **šunį**.",
		Options:      []string{"Dog", "Cat"},
		QuestionType: quizgen.MultipleChoice,
	}
	out := plain(QuestionCard{Question: q, Done: 1, Total: 10}.View())
	for _, want := range []string{"1/10", "1) Dog", "2) Cat", "option number"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}

	review := plain(QuestionCard{Question: q, Review: true, Pass: 2, Total: 1}.View())
	if !strings.Contains(review, "Review (pass 2)") {
		t.Errorf("review card missing pass label:\n%s", review)
	}
}

func TestFeedback(t *testing.T) {
	ok := plain(Feedback(&session.AnswerResult{Correct: true}))
	if !strings.Contains(ok, "Correct!") {
		t.Errorf("got %q", ok)
	}
	miss := plain(Feedback(&session.AnswerResult{CorrectAnswer: "Dog", Question: quizgen.Question{Translation: "I love the dog."}}))
	if !strings.Contains(miss, "Correct answer: Dog") || !strings.Contains(miss, "I love the dog.") {
		t.Errorf("got %q", miss)
	}
}

func TestProgressBarPercent(t *testing.T) {
	if p := (ProgressBar{Done: 3, Total: 4}).Percent(); p != 0.75 {
		t.Errorf("percent = %v", p)
	}
	if p := (ProgressBar{Done: 5, Total: 0}).Percent(); p != 0 {
		t.Errorf("percent = %v", p)
	}
	if p := (ProgressBar{Done: 9, Total: 4}).Percent(); p != 1 {
		t.Errorf("percent = %v", p)
	}
}
