package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "Empty", content: "", want: 1},
		{name: "Short", content: "<p>Wilbur says hello.</p>", want: 1},
		{name: "ExactlyTwoHundred", content: strings.Repeat("oink ", 200), want: 1},
		{name: "RoundsUp", content: strings.Repeat("oink ", 401), want: 3},
		{name: "AdjacentElements", content: strings.Repeat("<p>alpha</p><p>beta</p>", 150), want: 2},
		{name: "IgnoresMarkup", content: `<img src="a.jpg" alt="many words in an alt attribute"><p>one</p>`, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReadTime(tc.content))
		})
	}
}

func TestSanitizeContent(t *testing.T) {
	got := SanitizeContent(`<h2>Barn news</h2><p><a href="https://example.org">link</a></p><script>alert(1)</script><iframe src="x"></iframe>`)

	assert.Contains(t, got, "<h2>Barn news</h2>")
	assert.Contains(t, got, `href="https://example.org"`)
	assert.NotContains(t, got, "<script")
	assert.NotContains(t, got, "iframe")
}
