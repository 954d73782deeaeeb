package quizgen

// SentinelSentenceText is shown when no question could be built for a sentence.
const SentinelSentenceText = "Sorry, we couldn't generate a question for this sentence."

// Sentinel returns the placeholder question emitted when no word in a
// sentence can be resolved.
func Sentinel() *Question {
	return &Question{
		SentenceText: SentinelSentenceText,
		Options:      []string{},
	}
}

// IsSentinel reports whether q is the placeholder question.
func IsSentinel(q *Question) bool {
	return q != nil && q.QuestionType == "" && q.SentenceText == SentinelSentenceText
}
