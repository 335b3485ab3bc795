package htmltag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsHTML(t *testing.T) {
	h := AsHTML("<strong>I am already escaped. Don't escape me!</strong>")
	out := NewTag("a").Wrap(h, Attrs{{"href", "http://liftoffsoftware.com/"}})
	assert.Equal(t,
		`<a href="http://liftoffsoftware.com/"><strong>I am already escaped. Don't escape me!</strong></a>`,
		out.String())
}

func TestHTML_Append(t *testing.T) {
	base := NewTag("span").Wrap("Test:")
	appended := base.Append(" ", NewTag("b").Wrap("appended"))

	assert.Equal(t, "<span>Test: <b>appended</b></span>", appended.String())
	assert.Equal(t, "<span>Test:</span>", base.String(),
		"Append must not mutate its receiver")
	assert.Equal(t, "span", appended.TagName())
}

func TestHTML_Append_selfClosing(t *testing.T) {
	img := NewTag("img").Wrap(Attrs{{"src", "x.png"}})
	out := img.Append("Appended string")
	assert.Equal(t, `<img src="x.png">Appended string`, out.String(),
		"no closing tag to split on, content goes at the end")
}

func TestHTML_Append_genericClosing(t *testing.T) {
	// no recorded tag name, fall back to the last "</" marker
	h := AsHTML("<div><p>x</p></div>").Append("!")
	assert.Equal(t, "<div><p>x</p>!</div>", h.String())
}

func TestHTML_Append_lastClosingTag(t *testing.T) {
	div := NewTag("div")
	base := div.Wrap(div.Wrap("inner"))
	out := base.Append("tail")
	assert.Equal(t, "<div><div>inner</div>tail</div>", out.String(),
		"append splits at the last matching closing tag")
}

func TestHTML_Append_raw(t *testing.T) {
	out := NewTag("p").Wrap("x").Append(" & <b>raw</b>")
	assert.Equal(t, "<p>x & <b>raw</b></p>", out.String(),
		"Append never escapes")
}
