package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"html fence with language tag": {
			input: "Here you go:\n```html\n<h1>Hi</h1>\n```\nEnjoy",
			want:  "<h1>Hi</h1>",
		},
		"fence without language tag": {
			input: "```\n<p>plain</p>\n```",
			want:  "<p>plain</p>",
		},
		"only the first block is used": {
			input: "```html\n<a></a>\n```\ntext\n```css\nbody{}\n```",
			want:  "<a></a>",
		},
		"no fence returns trimmed response": {
			input: "  <div>raw</div>\n\n",
			want:  "<div>raw</div>",
		},
		"inline fence on one line": {
			input: "```<b>x</b>```",
			want:  "<b>x</b>",
		},
		"empty response": {
			input: "",
			want:  "",
		},
		"unterminated fence falls back to whole text": {
			input: "```html\n<p>cut",
			want:  "```html\n<p>cut",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.input))
		})
	}
}
