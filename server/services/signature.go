package services

import (
	"html"
	"strings"
)

const DefaultSignature = "---\n🤖 Sent via Teams MCP Server"

func (c Config) signature() string {
	if c.Signature != "" {
		return c.Signature
	}
	return DefaultSignature
}

// sign appends the signature to an outgoing plain text or markdown body. Every send appends
// it once, whatever the content already holds.
func (c Config) sign(content string) string {
	if !c.AddSignature {
		return content
	}
	return content + "\n\n" + c.signature()
}

// signHTML appends the signature to an outgoing HTML body as its own paragraph.
func (c Config) signHTML(content string) string {
	if !c.AddSignature {
		return content
	}
	escaped := strings.ReplaceAll(html.EscapeString(c.signature()), "\n", "<br>")
	return content + "\n\n<p>" + escaped + "</p>"
}
