package content

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cased applies rule to text. Unknown rules leave text untouched.
func Cased(text string, rule CasingRule) string {
	switch rule {
	case CasingSentence:
		return sentenceCase(text)
	case CasingTitle:
		return titleCase(text)
	case CasingUpper:
		return cases.Upper(language.Und).String(text)
	case CasingLower:
		return cases.Lower(language.Und).String(text)
	default:
		return text
	}
}

// sentenceCase upper-cases the first rune and lower-cases the rest.
func sentenceCase(text string) string {
	if text == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(text)
	return cases.Upper(language.Und).String(text[:size]) + cases.Lower(language.Und).String(text[size:])
}

// titleCase sentence-cases every space separated word. Runs of spaces are
// preserved as-is.
func titleCase(text string) string {
	words := strings.Split(text, " ")
	for i, word := range words {
		words[i] = sentenceCase(word)
	}
	return strings.Join(words, " ")
}
