package daybook

import (
	"strings"
	"unicode"

	"github.com/muesli/termenv"
)

// DefaultTagSymbols introduce a tag when they appear at a word start.
const DefaultTagSymbols = "@"

// RenderContext carries per-call rendering configuration. It is a plain
// value supplied by a configuration collaborator; the zero value is not
// useful, start from DefaultRenderContext.
type RenderContext struct {
	// TagSymbols holds the runes that introduce a tag, e.g. "@#".
	TagSymbols string
	// BaseColor is the color name for plain fragments.
	BaseColor string
	// TagColor is the color name for tag fragments.
	TagColor string
	// Title renders plain fragments bold (tags are always bold).
	Title bool
	// Highlight enables colorization; when false Highlight returns its
	// input untouched.
	Highlight bool
	// Profile maps color names to escape sequences. It is an explicit
	// input so rendering stays a pure function of its arguments.
	Profile termenv.Profile
	// TagRune overrides the default tag-continuation alphabet
	// (letters, digits, hyphen, underscore). Nil means default.
	TagRune func(rune) bool
}

// DefaultRenderContext returns a context that colors tags yellow and
// leaves prose uncolored, using the 16-color ANSI profile.
func DefaultRenderContext() RenderContext {
	return RenderContext{
		TagSymbols: DefaultTagSymbols,
		BaseColor:  ColorNone,
		TagColor:   "yellow",
		Highlight:  true,
		Profile:    termenv.ANSI,
	}
}

// ForTitle returns a copy of the context with bold title rendering on.
func (ctx RenderContext) ForTitle() RenderContext {
	ctx.Title = true
	return ctx
}

// Fragment is a maximal substring of entry text classified uniformly as
// a tag or as surrounding prose. Concatenating the fragments of a split
// in order reconstructs the input exactly.
type Fragment struct {
	Text string
	Tag  bool
}

// IsTagRune reports whether r may continue a tag after its symbol:
// letters, digits, hyphen, and underscore. Whitespace and sentence
// punctuation never extend a tag, so "#project-x." yields the tag
// "#project-x" and leaves the period to the surrounding prose.
func IsTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

// Fragments splits text into alternating plain and tag fragments. A tag
// starts with one of the symbol runes at the beginning of the text or
// after whitespace, and continues while IsTagRune holds; a bare symbol
// with no continuation stays part of the surrounding prose. Empty
// fragments are never produced.
func Fragments(text, symbols string) []Fragment {
	return splitFragments(text, symbols, nil)
}

func splitFragments(text, symbols string, cont func(rune) bool) []Fragment {
	if cont == nil {
		cont = IsTagRune
	}
	runes := []rune(text)
	var frags []Fragment
	start := 0
	for i := 0; i < len(runes); {
		atWordStart := i == 0 || unicode.IsSpace(runes[i-1])
		if atWordStart && strings.ContainsRune(symbols, runes[i]) &&
			i+1 < len(runes) && cont(runes[i+1]) {
			if i > start {
				frags = append(frags, Fragment{Text: string(runes[start:i])})
			}
			j := i + 1
			for j < len(runes) && cont(runes[j]) {
				j++
			}
			frags = append(frags, Fragment{Text: string(runes[i:j]), Tag: true})
			start, i = j, j
			continue
		}
		i++
	}
	if start < len(runes) {
		frags = append(frags, Fragment{Text: string(runes[start:])})
	}
	return frags
}

// Highlight colorizes the tags in text using the context's tag color
// while coloring the rest with the base color, and reassembles the
// fragments with corrected word spacing. When ctx.Highlight is false
// the text is returned unmodified and no fragmentation happens.
//
// Spacing: a single space is inserted before a fragment unless the
// fragment is entirely punctuation or whitespace, the previous fragment
// ended with a newline, the previous fragment started with a tag
// symbol, or the fragment itself starts with a tag symbol. Leading
// whitespace of the final result is trimmed.
func Highlight(text string, ctx RenderContext) string {
	if !ctx.Highlight {
		return text
	}

	var b strings.Builder
	previous := ""
	for _, frag := range splitFragments(text, ctx.TagSymbols, ctx.TagRune) {
		var colorized string
		if startsWithSymbol(frag.Text, ctx.TagSymbols) {
			colorized = colorizeWith(ctx.Profile, frag.Text, ctx.TagColor, true)
		} else {
			colorized = colorizeWith(ctx.Profile, frag.Text, ctx.BaseColor, ctx.Title)
		}

		noSpace := isPunctOrSpaceOnly(frag.Text) ||
			strings.HasSuffix(previous, "\n") ||
			startsWithSymbol(previous, ctx.TagSymbols) ||
			startsWithSymbol(frag.Text, ctx.TagSymbols)
		if !noSpace {
			b.WriteString(" ")
		}
		b.WriteString(colorized)
		previous = frag.Text
	}
	return strings.TrimLeftFunc(b.String(), unicode.IsSpace)
}

func startsWithSymbol(s, symbols string) bool {
	for _, r := range s {
		return strings.ContainsRune(symbols, r)
	}
	return false
}

// asciiSymbols are the ASCII punctuation runes not covered by
// unicode.IsPunct.
const asciiSymbols = "$+<=>^`|~"

func isPunctOrSpaceOnly(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || strings.ContainsRune(asciiSymbols, r) {
			continue
		}
		return false
	}
	return true
}
