package session

import (
	"fmt"
	"strings"
)

// Key purposes. Date-scoped keys have the form <purpose>_<userId>_<dateKey>.
const (
	PurposeQuestions = "quizQuestions"
	PurposeProgress  = "quizProgress"
	PurposeIncorrect = "incorrectQuestions"
	PurposeLearned   = "learnedSentences"
)

// DateScopedKey builds a key that rolls over with the date key.
func DateScopedKey(purpose, userID, dateKey string) string {
	return fmt.Sprintf("%s_%s_%s", purpose, userID, dateKey)
}

// LearnedKey is where a user's learned sentence IDs are stored.
func LearnedKey(userID string) string {
	return PurposeLearned + "_" + userID
}

// IsDateScoped reports whether key belongs to a daily namespace.
func IsDateScoped(key string) bool {
	for _, p := range []string{PurposeQuestions, PurposeProgress, PurposeIncorrect} {
		if strings.HasPrefix(key, p+"_") {
			return true
		}
	}
	return false
}

type dayKeys struct {
	questions, progress, incorrect string
}

func keysFor(userID, dateKey string) dayKeys {
	return dayKeys{
		questions: DateScopedKey(PurposeQuestions, userID, dateKey),
		progress:  DateScopedKey(PurposeProgress, userID, dateKey),
		incorrect: DateScopedKey(PurposeIncorrect, userID, dateKey),
	}
}
