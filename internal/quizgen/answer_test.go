package quizgen

import "testing"

func TestCheckAnswer_FillInTheBlank(t *testing.T) {
	q := &Question{QuestionType: FillInTheBlank, CorrectAnswerText: "Namą", Options: []string{}}

	tests := []struct {
		input string
		want  bool
	}{
		{"Namą", true},
		{"namą", true},
		{" NAMĄ ", true},
		{"nama", true},
		{"namą.", true},
		{"namas", false},
		{"", false},
		{"...", false},
	}
	for _, tc := range tests {
		if got := CheckAnswer(tc.input, q); got != tc.want {
			t.Errorf("CheckAnswer(%q, Namą/blank) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	q := &Question{
		QuestionType:      MultipleChoice,
		CorrectAnswerText: "House",
		Options:           []string{"Horse", "Mouse", "House", "Water"},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"House", true},
		{"house", true},
		{"3", true},
		{"1", false},
		{"5", false},
		{"Horse", false},
	}
	for _, tc := range tests {
		if got := CheckAnswer(tc.input, q); got != tc.want {
			t.Errorf("CheckAnswer(%q, House/mc) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_TrueFalse(t *testing.T) {
	q := &Question{
		QuestionType:      TrueFalse,
		CorrectAnswerText: AnswerFalse,
		Options:           []string{AnswerTrue, AnswerFalse},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"False", true},
		{"false", true},
		{"f", true},
		{"2", true},
		{"1", false},
		{"true", false},
		{"t", false},
	}
	for _, tc := range tests {
		if got := CheckAnswer(tc.input, q); got != tc.want {
			t.Errorf("CheckAnswer(%q, False/tf) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Sentinel(t *testing.T) {
	if CheckAnswer("anything", Sentinel()) {
		t.Error("sentinel question must never be answered correctly")
	}
	if CheckAnswer("", Sentinel()) {
		t.Error("empty answer on sentinel")
	}
	if CheckAnswer("x", nil) {
		t.Error("nil question")
	}
}

func TestIsSentinel(t *testing.T) {
	if !IsSentinel(Sentinel()) {
		t.Error("IsSentinel(Sentinel()) = false")
	}
	if IsSentinel(&Question{QuestionType: MultipleChoice, SentenceText: SentinelSentenceText}) {
		t.Error("typed question reported as sentinel")
	}
	if IsSentinel(nil) {
		t.Error("IsSentinel(nil) = true")
	}
}
