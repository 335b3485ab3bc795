package htmltag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "no markup", "no markup"},
		{"simple", "<p>Hello <b>World</b></p>", "Hello World"},
		{
			"script content dropped",
			"<p>before</p><script>alert(1)</script><p>after</p>",
			"beforeafter",
		},
		{
			"style content dropped",
			"<style>body{color:red}</style>visible",
			"visible",
		},
		{
			"entities decoded",
			"<span>1 &lt; 2 &amp; 3</span>",
			"1 < 2 & 3",
		},
		{"unclosed tag", "<div>open", "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripTags(tt.in))
		})
	}
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, `<b> & "x"`, Unescape("&lt;b&gt; &amp; &quot;x&quot;"))
	assert.Equal(t, "a & b", Unescape(Escape("a & b").String()))
}
