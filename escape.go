package htmltag

import "strings"

// entityEscaper converts the three characters that HTML parsers act on into
// named entities. strings.Replacer substitutes in a single pass and never
// re-scans its own output, so generated entities are not escaped twice
// within one call. Escaping is deliberately not idempotent: escaping an
// already escaped string doubles its entities.
var entityEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// rejectEscaper is used by the "entities" replacement mode of FilterXSS.
// Rejected tag text ends up inside rendered output, so attribute quotes
// must survive display as well.
var rejectEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape converts '<', '>' and '&' in text into HTML entities and returns
// the result marked as safe. All other characters pass through unchanged.
func Escape(text string) HTML {
	return HTML{text: entityEscaper.Replace(text)}
}
