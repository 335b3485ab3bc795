package htmltag

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripTags removes all markup from fragment and returns the text content
// only. It uses the same tolerant tokenizer browsers follow, so malformed
// markup is handled gracefully. Character data inside script and style
// elements is dropped: the end user would never see it.
//
// The result is plain text, not HTML. Entities present in text nodes are
// decoded by the tokenizer.
func StripTags(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	var b strings.Builder
	var hidden int
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skipContent(atom.Lookup(name)) {
				hidden++
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skipContent(atom.Lookup(name)) && hidden > 0 {
				hidden--
			}

		case html.TextToken:
			if hidden == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

func skipContent(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Noscript, atom.Iframe, atom.Object,
		atom.Title:
		return true
	}
	return false
}

// Unescape decodes entity references in fragment, including numeric
// references, back into characters. It is the inverse of Escape for the
// entities Escape produces.
func Unescape(fragment string) string {
	return html.UnescapeString(fragment)
}
