package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	markup := `<div class="portfolio-content">
		<h2>My   Skills</h2>
		<p>Hello,
		   world &amp; friends.</p>
		<ul><li>Go</li><li>SQL</li></ul>
		<script>alert("x")</script>
		<p>See <a href="https://example.com">my site</a> or <a href="#top">top</a>.</p>
		<img src="E4/1.png" alt="E4 Project Slide 1">
	</div>`

	want := []Line{
		{LineHeading, "My Skills"},
		{LineText, "Hello, world & friends."},
		{LineItem, "Go"},
		{LineItem, "SQL"},
		{LineText, "See my site (https://example.com) or top."},
		{LineText, "[E4 Project Slide 1]"},
	}
	assert.Equal(t, want, PlainText(markup))
}

func TestPlainText_Empty(t *testing.T) {
	assert.Empty(t, PlainText(""))
	assert.Empty(t, PlainText("<div>   </div>"))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"the quick brown fox", 9, []string{"the quick", "brown fox"}},
		{"the quick brown fox", 100, []string{"the quick brown fox"}},
		{"supercalifragilistic is long", 5, []string{"supercalifragilistic", "is", "long"}},
		{"", 10, nil},
		{"no width", 0, []string{"no width"}},
	}
	for _, tt := range tests {
		got := Wrap(tt.text, tt.width)
		assert.Equal(t, tt.want, got, "Wrap(%q, %d)", tt.text, tt.width)
	}
}
