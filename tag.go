package htmltag

import (
	"log/slog"
	"strings"
)

// Attr is a single tag attribute. A Val of bool true renders the bare key
// (HTML boolean attribute form), bool false omits the attribute entirely,
// anything else renders key="value" with Val coerced to text.
type Attr struct {
	Key string
	Val any
}

// Attrs is an ordered attribute list. Attributes render in the order given;
// Wrap never reorders them. A single leading underscore is stripped from
// each key, so reserved words stay usable: {"_class", "x"} renders
// class="x".
type Attrs []Attr

// Tag composes content and attributes into a named HTML tag.
//
// You should use NewTag or a Registry to create one, so the configuration
// starts from its defaults: safe mode on, whitelist off, replacement
// "(removed)", reject logging off, no ending slash.
//
// Configuration methods mutate the composer in place and return it for
// chaining, the same way a sanitization policy is built up. A Tag is meant
// to be reconfigured between Wrap calls by a single goroutine, not
// concurrently with them.
type Tag struct {
	name        string
	safeMode    bool
	whitelist   Whitelist
	replacement string
	logRejects  bool
	endingSlash bool
	logger      *slog.Logger
}

// NewTag returns a composer for the given tag name with default
// configuration.
func NewTag(name string) *Tag {
	return &Tag{
		name:        name,
		safeMode:    true,
		whitelist:   Off(),
		replacement: DefaultReplacement,
	}
}

// Name returns the tag name this composer renders.
func (self *Tag) Name() string { return self.name }

// SafeMode enables or disables passing assembled markup through FilterXSS.
// On by default.
func (self *Tag) SafeMode(on bool) *Tag {
	self.safeMode = on
	return self
}

// WithWhitelist sets the whitelist used when safe mode filters the
// assembled markup. Whitelist checking is off by default.
func (self *Tag) WithWhitelist(w Whitelist) *Tag {
	self.whitelist = w
	return self
}

// Replacement sets what rejected tags are replaced with. Accepts a literal
// string or the ReplacementEntities sentinel.
func (self *Tag) Replacement(s string) *Tag {
	self.replacement = s
	return self
}

// LogRejects enables logging of rejected tags after filtering.
func (self *Tag) LogRejects(on bool) *Tag {
	self.logRejects = on
	return self
}

// EndingSlash renders void elements as <tag /> instead of <tag>.
func (self *Tag) EndingSlash(on bool) *Tag {
	self.endingSlash = on
	return self
}

// WithLogger sets the logger used by LogRejects. slog.Default() is used
// when none is set.
func (self *Tag) WithLogger(logger *slog.Logger) *Tag {
	self.logger = logger
	return self
}

// Copy returns an independent composer named name, seeded with the current
// configuration of self. Reconfigure the copy with the usual methods; the
// source is not affected.
func (self *Tag) Copy(name string) *Tag {
	clone := *self
	clone.name = name
	return &clone
}

// Wrap assembles content and attributes into a complete tag and returns it
// marked as safe.
//
// Attrs and Attr arguments become attributes, in order. Every other
// argument is content: HTML values are used verbatim, anything else is
// coerced to text and escaped. Void elements (img, br, ...) render as a
// lone opening tag and ignore content.
//
// With safe mode on the assembled string is run through FilterXSS using the
// composer's whitelist and replacement.
func (self *Tag) Wrap(args ...any) HTML {
	var attrs Attrs
	var combined strings.Builder
	for _, arg := range args {
		switch v := arg.(type) {
		case Attrs:
			attrs = append(attrs, v...)
		case Attr:
			attrs = append(attrs, v)
		case HTML:
			combined.WriteString(v.text)
		case string:
			combined.WriteString(entityEscaper.Replace(v))
		default:
			combined.WriteString(entityEscaper.Replace(stringify(v)))
		}
	}

	tagstart := self.name
	if len(attrs) > 0 {
		// encode may produce nothing when every attribute was boolean false
		tagstart = strings.TrimRight(self.name+" "+attrs.encode(), " ")
	}

	var out string
	if _, void := voidElements[self.name]; void {
		if self.endingSlash {
			out = "<" + tagstart + " />"
		} else {
			out = "<" + tagstart + ">"
		}
	} else {
		out = "<" + tagstart + ">" + combined.String() + "</" + self.name + ">"
	}

	if self.safeMode {
		out = self.filter(out)
	}
	return HTML{text: out, tagName: self.name}
}

func (self *Tag) filter(out string) string {
	res := FilterXSS(out, self.whitelist, self.replacement)
	if self.logRejects && len(res.Rejected) > 0 {
		self.log().Warn("htmltag: rejected tags",
			slog.String("tag", self.name),
			slog.Any("rejected", res.Rejected))
	}
	return res.Sanitized
}

func (self *Tag) log() *slog.Logger {
	if self.logger != nil {
		return self.logger
	}
	return slog.Default()
}

// encode serializes the attribute list, bare keys for boolean attributes,
// key="value" otherwise, joined by single spaces.
func (self Attrs) encode() string {
	var b strings.Builder
	for _, attr := range self {
		key := strings.TrimPrefix(attr.Key, "_")
		if v, ok := attr.Val.(bool); ok {
			if !v {
				continue
			}
			b.WriteString(key)
			b.WriteByte(' ')
			continue
		}
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(stringify(attr.Val))
		b.WriteString(`" `)
	}
	return strings.TrimSuffix(b.String(), " ")
}
