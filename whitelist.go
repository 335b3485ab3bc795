package htmltag

import "strings"

// Whitelist is the set of tag names permitted to pass through FilterXSS
// without being rejected. It has three states:
//
//   - the zero value, which stands for the built-in default set of safe
//     tags;
//   - the value returned by Off, which disables whitelist checking
//     entirely (signature checks still apply);
//   - an explicit set built with NewWhitelist. An explicit empty set
//     rejects every tag.
type Whitelist struct {
	off  bool
	tags map[string]struct{}
}

// NewWhitelist returns an explicit whitelist containing names. Names are
// lower-cased, matching how FilterXSS classifies tags.
func NewWhitelist(names ...string) Whitelist {
	tags := make(map[string]struct{}, len(names))
	for _, name := range names {
		tags[strings.ToLower(name)] = struct{}{}
	}
	return Whitelist{tags: tags}
}

// Off returns the sentinel that disables whitelist checking.
func Off() Whitelist { return Whitelist{off: true} }

// DefaultWhitelist returns the whitelist backed by the built-in set of safe
// tags. It is what the zero value of Whitelist resolves to.
func DefaultWhitelist() Whitelist { return Whitelist{tags: safeTags} }

// Allows reports whether a tag with the given lower-cased short name passes
// this whitelist.
func (self Whitelist) Allows(name string) bool {
	if self.off {
		return true
	}
	tags := self.tags
	if tags == nil {
		tags = safeTags
	}
	_, ok := tags[name]
	return ok
}

// Active reports whether whitelist checking is enabled.
func (self Whitelist) Active() bool { return !self.off }
