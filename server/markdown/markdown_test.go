package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToMD(t *testing.T) {
	for _, testCase := range []struct {
		description    string
		text           string
		expectedOutput string
	}{
		{
			description:    "Text does not contain tags",
			text:           "This is text area <></>",
			expectedOutput: "This is text area <></>",
		},
		{
			description:    "Text contains a paragraph with bold text",
			text:           "<p>Hello <b>world</b></p>",
			expectedOutput: "Hello **world**",
		},
		{
			description:    "Text contains italics",
			text:           "<p>This is <i>italics</i></p>",
			expectedOutput: "This is _italics_",
		},
		{
			description:    "Text contains a link",
			text:           `<div>See <a href="https://example.com">the docs</a></div>`,
			expectedOutput: "See [the docs](https://example.com)",
		},
	} {
		t.Run(testCase.description, func(t *testing.T) {
			text := ConvertToMD(testCase.text)
			assert.Equal(t, testCase.expectedOutput, text)
		})
	}
}

func TestRenderHTML(t *testing.T) {
	for _, testCase := range []struct {
		description string
		text        string
		contains    []string
	}{
		{
			description: "Bold and italics",
			text:        "**bold** and *italics*",
			contains:    []string{"<strong>bold</strong>", "<em>italics</em>"},
		},
		{
			description: "List",
			text:        "- one\n- two",
			contains:    []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
		{
			description: "Emoji alias",
			text:        "ship it :rocket:",
			contains:    []string{"ship it", "\U0001f680"},
		},
	} {
		t.Run(testCase.description, func(t *testing.T) {
			html := RenderHTML(testCase.text)
			for _, s := range testCase.contains {
				assert.Contains(t, html, s)
			}
			assert.NotContains(t, html, ":rocket:")
		})
	}
}
