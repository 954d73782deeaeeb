// Package textutil holds the string helpers shared by the quiz pipeline:
// token cleaning, display casing, answer normalization and similarity scoring.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanWord strips leading and trailing punctuation from a token.
// CleanWord(CleanWord(x)) == CleanWord(x) for every x.
func CleanWord(token string) string {
	return strings.TrimFunc(token, isPunct)
}

// NormalizeToken is the comparison key for a token: cleaned and lower-cased.
func NormalizeToken(token string) string {
	return strings.ToLower(CleanWord(token))
}

// SplitToken splits a token into its leading punctuation, core word and
// trailing punctuation. prefix+core+suffix always equals token.
func SplitToken(token string) (prefix, core, suffix string) {
	start := strings.IndexFunc(token, func(r rune) bool { return !isPunct(r) })
	if start < 0 {
		return token, "", ""
	}
	end := strings.LastIndexFunc(token, func(r rune) bool { return !isPunct(r) })
	_, size := utf8.DecodeRuneInString(token[end:])
	end += size
	return token[:start], token[start:end], token[end:]
}

// Tokenize splits a sentence on whitespace. Tokens keep their punctuation.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// TitleCase upper-cases the first letter and leaves the rest untouched.
// Display only; comparison keys go through NormalizeToken.
func TitleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
