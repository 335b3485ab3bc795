// Package htmltag wraps whatever strings you want in HTML tags, escaping
// anything that could be parsed as markup and optionally filtering the
// assembled result for XSS vectors.
//
//	strong := htmltag.Resolve("strong")
//	fmt.Println(strong.Wrap("SO STRONG!"))
//	// <strong>SO STRONG!</strong>
//
// Any tag name works, including custom HTML5 elements. Attributes are given
// as an ordered Attrs list:
//
//	a := htmltag.Resolve("a")
//	a.Wrap("awesome software", htmltag.Attrs{{"href", "http://liftoffsoftware.com/"}})
//	// <a href="http://liftoffsoftware.com/">awesome software</a>
//
// The characters '<', '>' and '&' in content are converted into HTML
// entities. Output of Wrap is an HTML value, which is known to be safe and
// is never escaped again, so wrapped tags compose:
//
//	table.Wrap(tr.Wrap(td.Wrap("100"), td.Wrap("200"), htmltag.Attrs{{"id", "row1"}}))
//
// Text that is already valid HTML can be marked with AsHTML to bypass
// escaping.
//
// By default every composed tag is passed through FilterXSS, which rejects
// tags carrying known attack signatures (javascript: URLs, on* event
// handlers and friends) and, when a whitelist is active, any tag not on it.
// Rejected tags are replaced with "(removed)" or entity-encoded in place.
package htmltag
