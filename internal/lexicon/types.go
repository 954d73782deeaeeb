// Package lexicon defines the word and sentence data the quiz engine reads,
// the repository contract that supplies it, and lookup helpers over it.
package lexicon

// WordForm is one inflected surface form of a word with its English gloss.
type WordForm struct {
	Lithuanian string `json:"lithuanian"`
	English    string `json:"english"`
}

// Word is a dictionary entry. ID is the base form and is unique across the
// lexicon; WordForms is never empty and includes the base form itself.
type Word struct {
	ID                 string     `json:"id"`
	WordForms          []WordForm `json:"wordForms"`
	EnglishTranslation string     `json:"englishTranslation"`
	ImageURL           string     `json:"imageUrl"`
	AdditionalInfo     string     `json:"additionalInfo,omitempty"`
}

// Sentence is a corpus sentence. Sentence is a space-separated token
// sequence; tokens may carry punctuation.
type Sentence struct {
	ID                 string `json:"id"`
	Sentence           string `json:"sentence"`
	EnglishTranslation string `json:"englishTranslation"`
	IsMainSentence     bool   `json:"isMainSentence"`
	DisplayOrder       int    `json:"displayOrder"`
}

// FilterByID returns the sentences whose IDs are in ids, preserving corpus order.
func FilterByID(sentences []Sentence, ids []string) []Sentence {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Sentence
	for _, s := range sentences {
		if want[s.ID] {
			out = append(out, s)
		}
	}
	return out
}
