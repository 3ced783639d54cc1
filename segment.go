package daybook

import (
	"strings"
	"unicode"
)

// Rune classes for sentence boundary detection, enumerated explicitly
// rather than encoded in a regexp so the matching semantics don't depend
// on a particular engine's grouping behavior. The terminal set covers
// ASCII sentence punctuation plus CJK and fullwidth equivalents.
const (
	sentenceTerminals = ".!?‼‽⁇⁈⁉。﹒﹗！．？｡"
	closingQuotes     = "'’\"”"
	closingBrackets   = "])"
)

func isSentenceTerminal(r rune) bool { return strings.ContainsRune(sentenceTerminals, r) }
func isClosingQuote(r rune) bool     { return strings.ContainsRune(closingQuotes, r) }
func isClosingBracket(r rune) bool   { return strings.ContainsRune(closingBrackets, r) }

// SplitTitle splits the first sentence off from a text.
//
// An explicit line break always wins: if the text contains a newline
// after its leading whitespace, everything before it becomes the title.
// Otherwise the title ends at the first sentence boundary: a terminal
// punctuation rune, an optional closing quote, any number of closing
// brackets, and at least one whitespace rune. A period with no
// following whitespace (decimal numbers, abbreviations) is not a
// boundary.
//
// Both halves are returned with surrounding whitespace trimmed. If no
// boundary exists the whole text becomes the title and body is empty.
// The function is total over all input, including the empty string.
func SplitTitle(text string) (title, body string) {
	runes := []rune(text)

	start := 0
	for start < len(runes) && unicode.IsSpace(runes[start]) {
		start++
	}
	for i := start; i < len(runes); i++ {
		if runes[i] == '\n' {
			return trimRunes(runes[:i]), trimRunes(runes[i+1:])
		}
	}

	if end, ok := scanSentenceBoundary(runes); ok {
		return trimRunes(runes[:end]), trimRunes(runes[end:])
	}
	return strings.TrimSpace(text), ""
}

// scanSentenceBoundary locates the end of the first sentence-terminating
// sequence and returns the index just past its trailing whitespace run.
// The whitespace is mandatory; a terminal rune followed directly by a
// non-space rune does not end a sentence.
func scanSentenceBoundary(runes []rune) (int, bool) {
	for i := 0; i < len(runes); i++ {
		if !isSentenceTerminal(runes[i]) {
			continue
		}
		j := i + 1
		if j < len(runes) && isClosingQuote(runes[j]) {
			j++
		}
		for j < len(runes) && isClosingBracket(runes[j]) {
			j++
		}
		k := j
		for k < len(runes) && unicode.IsSpace(runes[k]) {
			k++
		}
		if k > j {
			return k, true
		}
	}
	return 0, false
}

func trimRunes(runes []rune) string {
	return strings.TrimSpace(string(runes))
}
