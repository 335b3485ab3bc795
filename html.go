package htmltag

import (
	"fmt"
	"strings"
)

// HTML is a string value that is known to be valid HTML, or already
// escaped, and must not be escaped again. Values are produced by Escape, by
// (*Tag).Wrap and by AsHTML. An HTML value is immutable; Append returns a
// new value.
type HTML struct {
	text string

	// tagName is set when the value was produced by a composer. Append uses
	// it to locate the matching closing tag.
	tagName string
}

// AsHTML marks text as already valid HTML so the composer will use it
// verbatim instead of escaping it. Only use this on trusted content.
func AsHTML(text string) HTML {
	return HTML{text: text}
}

func (self HTML) String() string { return self.text }

// TagName reports the name of the tag that produced this value, or "" if it
// was not produced by a composer.
func (self HTML) TagName() string { return self.tagName }

// Append inserts more content just before the last closing tag of self,
// matching the recorded tag name when one is present and the generic "</"
// marker otherwise. Arguments are used raw: Append never escapes. When no
// closing tag is found, as with void elements like <img>, the content is
// concatenated after self instead.
func (self HTML) Append(more ...any) HTML {
	var extra strings.Builder
	for _, item := range more {
		extra.WriteString(stringify(item))
	}

	closing := "</"
	if self.tagName != "" {
		closing = "</" + self.tagName + ">"
	}

	i := strings.LastIndex(self.text, closing)
	if i < 0 {
		return HTML{text: self.text + extra.String(), tagName: self.tagName}
	}
	return HTML{
		text:    self.text[:i] + extra.String() + self.text[i:],
		tagName: self.tagName,
	}
}

// stringify coerces content and attribute values to their textual form.
// HTML values contribute their text as is.
func stringify(v any) string {
	switch v := v.(type) {
	case HTML:
		return v.text
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
