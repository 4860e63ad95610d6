package markdown

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/enescakir/emoji"
	"gitlab.com/golang-commonmark/markdown"
)

var stringsToCheckHTML = []string{
	"<div",
	"<p ",
	"<p>",
	"<img ",
	"<a ",
	"<b>",
	"<strong>",
	"<em>",
	"<i>",
	"<br",
	"<ul>",
	"<ol>",
	"<at ",
}

var renderer = markdown.New(
	markdown.XHTMLOutput(true),
	markdown.Tables(true),
	markdown.Linkify(true),
	markdown.Typographer(false),
)

// ConvertToMD turns the HTML body of a Teams message into markdown. Text that does not look like
// HTML is returned untouched.
func ConvertToMD(text string) string {
	for _, tag := range stringsToCheckHTML {
		if strings.Contains(text, tag) {
			converter := md.NewConverter("", true, nil)
			converted, err := converter.ConvertString(text)
			if err != nil {
				return text
			}

			return converted
		}
	}

	return text
}

// RenderHTML renders markdown, with :emoji: aliases expanded, into the HTML accepted by Teams.
func RenderHTML(text string) string {
	return strings.TrimSpace(renderer.RenderToString([]byte(emoji.Parse(text))))
}
