package daybook

import "strings"

// Entry is a journal entry composed from raw editor text. It is a plain
// value; the library keeps no state between calls.
type Entry struct {
	Title string
	Body  string
	Tags  []string
}

// NewEntry segments raw text into title and body and extracts its tags.
func NewEntry(raw, tagSymbols string) Entry {
	title, body := SplitTitle(raw)
	return Entry{
		Title: title,
		Body:  body,
		Tags:  Tags(raw, tagSymbols),
	}
}

// Slug returns a filesystem-safe token derived from the entry title,
// usable as an export filename or anchor.
func (e Entry) Slug() string {
	return Slugify(e.Title)
}

// Tags extracts the tags of text in order of first appearance. Tags are
// reported lowercase and deduplicated case-insensitively.
func Tags(text, symbols string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, frag := range Fragments(text, symbols) {
		if !frag.Tag {
			continue
		}
		tag := strings.ToLower(frag.Text)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
