package htmltag

import (
	"regexp"
	"strings"
)

const (
	// DefaultReplacement is substituted for rejected tags when no other
	// replacement is configured.
	DefaultReplacement = "(removed)"

	// ReplacementEntities selects the replacement mode that entity-encodes
	// rejected tags in place instead of substituting a literal marker.
	ReplacementEntities = "entities"
)

// htmlTagRE matches opening and closing tag-like substrings the way a
// tolerant browser parser would: an optional slash, a tag name, then
// attribute groups whose values may be double-quoted, single-quoted or
// bare. Quoted values may contain '>' and whitespace; bare values may not
// contain quotes, '>' or whitespace. It intentionally does not validate
// correctness. Do not tighten it into a strict grammar: the rejection
// signatures below depend on matching these exact token boundaries.
var htmlTagRE = regexp.MustCompile(
	`(?i)</?\w+((\s+\w+(\s*=\s*(?:".*?"|'.*?'|[^'">\s]+))?)+\s*|\s*)/?>`)

// onEventRE matches inline event handler attributes (onclick=, onmouseover=
// and so on) inside an already lower-cased tag substring.
var onEventRE = regexp.MustCompile(`\s+on[a-z]+\s*=`)

// Result is what FilterXSS returns: the rewritten markup and the distinct
// rejected tag substrings in first-seen order.
type Result struct {
	Sanitized string
	Rejected  []string
}

// FilterXSS scans fragment for tag-like substrings and rewrites every tag
// that is disallowed by the whitelist or carries a known attack signature.
// Signature checks apply regardless of whitelist membership: a tag
// containing "javascript:", "vbscript:", "fscommand", "seeksegmenttime" or
// an on* event handler is always rejected.
//
// Rejected tags are deduplicated, then each distinct substring is replaced
// throughout the fragment, one rejected tag at a time over the evolving
// string. When replacement is ReplacementEntities the rejected text is
// entity-encoded in place; otherwise it is substituted with the literal
// replacement string, DefaultReplacement when empty.
//
// Known limitation: replacement is textual, not positional. If a rejected
// tag's exact text also occurs inside otherwise accepted content, those
// occurrences are rewritten too.
//
// FilterXSS is total: it never fails, and input without tag-like substrings
// is returned unchanged with no rejects.
func FilterXSS(fragment string, whitelist Whitelist, replacement string,
) Result {
	if replacement == "" {
		replacement = DefaultReplacement
	}

	var rejected []string
	seen := make(map[string]struct{})
	for _, tag := range htmlTagRE.FindAllString(fragment, -1) {
		if !rejects(tag, whitelist) {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		rejected = append(rejected, tag)
	}

	sanitized := fragment
	for _, tag := range rejected {
		repl := replacement
		if replacement == ReplacementEntities {
			repl = rejectEscaper.Replace(tag)
		}
		sanitized = strings.ReplaceAll(sanitized, tag, repl)
	}
	return Result{Sanitized: sanitized, Rejected: rejected}
}

// rejects classifies a single matched tag substring.
func rejects(tag string, whitelist Whitelist) bool {
	lower := strings.ToLower(tag)
	switch {
	case whitelist.Active() && !whitelist.Allows(shortName(lower)):
		return true
	case strings.Contains(lower, "javascript:"):
		return true
	case onEventRE.MatchString(lower):
		return true
	case strings.Contains(lower, "fscommand"):
		return true
	case strings.Contains(lower, "seeksegmenttime"):
		return true
	case strings.Contains(lower, "vbscript:"):
		return true
	}
	return false
}

// shortName extracts the tag name from a lower-cased tag substring: strip
// the leading "</" or "<", take the first whitespace-delimited token, strip
// a trailing ">". A self-closing tag written without attributes ("<br/>")
// keeps its slash and therefore fails whitelist membership, which errs on
// the side of rejection.
func shortName(tag string) string {
	name := strings.TrimPrefix(tag, "</")
	name = strings.TrimPrefix(name, "<")
	if fields := strings.Fields(name); len(fields) > 0 {
		name = fields[0]
	}
	return strings.TrimSuffix(name, ">")
}
