package chat

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	mdhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// inlineMarkdown recognizes only inline constructs: emphasis, code spans,
// explicit links, autolinks and bare-URL linkification. The sole block
// parser is the paragraph parser, so headings, lists and quotes stay
// literal text and raw HTML never passes through.
var inlineMarkdown = goldmark.New(
	goldmark.WithParser(parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 100),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewLinkParser(), 200),
			util.Prioritized(parser.NewAutoLinkParser(), 300),
			util.Prioritized(parser.NewEmphasisParser(), 400),
			util.Prioritized(extension.NewLinkifyParser(), 999),
		),
	)),
	goldmark.WithRenderer(renderer.NewRenderer(
		renderer.WithNodeRenderers(
			util.Prioritized(mdhtml.NewRenderer(), 1000),
		),
	)),
)

// RenderMessage turns a raw chat message into the HTML body broadcast to
// the room: HTML-escape first, render inline markdown over the escaped
// text, then run the result through the output policy so every generated
// link opens in a new tab.
func RenderMessage(raw string) string {
	var buf bytes.Buffer
	if err := inlineMarkdown.Convert([]byte(html.EscapeString(raw)), &buf); err != nil {
		// Conversion over an in-memory buffer cannot fail in practice;
		// fall back to the escaped text rather than dropping the message.
		return outputPolicy.Sanitize(html.EscapeString(raw))
	}
	return outputPolicy.Sanitize(stripParagraph(buf.String()))
}

// stripParagraph unwraps the single paragraph the block parser produces
// around a message.
func stripParagraph(rendered string) string {
	out := strings.TrimSpace(rendered)
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return out
}
