package htmltag

// voidElements are the HTML elements that have no content and no closing
// tag. Wrap renders them as a lone opening tag, with or without an ending
// slash depending on the composer's configuration.
// https://html.spec.whatwg.org/multipage/syntax.html#void-elements
var voidElements = map[string]struct{}{
	"area":    {},
	"base":    {},
	"br":      {},
	"col":     {},
	"command": {},
	"embed":   {},
	"hr":      {},
	"img":     {},
	"input":   {},
	"keygen":  {},
	"link":    {},
	"meta":    {},
	"param":   {},
	"source":  {},
	"track":   {},
	"wbr":     {},
}

// safeTags is the default whitelist used by FilterXSS when the caller asks
// for whitelist checking without supplying an explicit set. It covers the
// formatting, sectioning and table elements that cannot execute script on
// their own. Elements that load or run active content (script, style,
// iframe, object, embed, form inputs) are deliberately absent.
var safeTags = map[string]struct{}{
	"a":          {},
	"abbr":       {},
	"address":    {},
	"article":    {},
	"aside":      {},
	"b":          {},
	"blockquote": {},
	"br":         {},
	"caption":    {},
	"cite":       {},
	"code":       {},
	"col":        {},
	"colgroup":   {},
	"dd":         {},
	"del":        {},
	"dfn":        {},
	"div":        {},
	"dl":         {},
	"dt":         {},
	"em":         {},
	"figcaption": {},
	"figure":     {},
	"h1":         {},
	"h2":         {},
	"h3":         {},
	"h4":         {},
	"h5":         {},
	"h6":         {},
	"hr":         {},
	"i":          {},
	"img":        {},
	"ins":        {},
	"kbd":        {},
	"li":         {},
	"mark":       {},
	"ol":         {},
	"p":          {},
	"pre":        {},
	"q":          {},
	"s":          {},
	"samp":       {},
	"small":      {},
	"span":       {},
	"strong":     {},
	"sub":        {},
	"summary":    {},
	"sup":        {},
	"table":      {},
	"tbody":      {},
	"td":         {},
	"tfoot":      {},
	"th":         {},
	"thead":      {},
	"time":       {},
	"tr":         {},
	"u":          {},
	"ul":         {},
	"var":        {},
	"wbr":        {},
}
