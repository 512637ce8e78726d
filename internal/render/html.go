package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/chatblocks/chatblocks/internal/blocks"
)

// HTML emits a block sequence as an HTML fragment. Text-block node literals
// arrive pre-escaped from the pipeline (&, <, > only); everything else,
// including attribute values, is escaped here.
func HTML(bs []blocks.Block) string {
	var b strings.Builder
	for _, blk := range bs {
		switch blk.Kind {
		case blocks.KindThinking:
			writeThinkingHTML(&b, blk.Thinking)
		case blocks.KindNote:
			writeNoteHTML(&b, blk.Note)
		case blocks.KindFile:
			writeFileHTML(&b, blk.File)
		case blocks.KindCode:
			writeCodeHTML(&b, blk.Code)
		case blocks.KindTable:
			writeTableHTML(&b, blk.Table)
		case blocks.KindImage:
			b.WriteString(`<img src="` + html.EscapeString(blk.Image.URL) +
				`" alt="` + html.EscapeString(blk.Image.Alt) + `">` + "\n")
		default:
			writeTextHTML(&b, blk)
		}
	}
	return b.String()
}

func writeTextHTML(b *strings.Builder, blk blocks.Block) {
	if blk.Nodes == nil {
		// Malformed-tag fallback: raw source shown as literal text.
		b.WriteString("<p>" + html.EscapeString(blk.Source) + "</p>\n")
		return
	}
	writeNodesHTML(b, blk.Nodes)
}

func writeNodesHTML(b *strings.Builder, nodes []blocks.Node) {
	for _, n := range nodes {
		switch n.Type {
		case blocks.NodeParagraph:
			b.WriteString("<p>")
			writeNodesHTML(b, n.Children)
			b.WriteString("</p>\n")
		case blocks.NodeHeading:
			tag := "h" + strconv.Itoa(n.Level)
			b.WriteString("<" + tag + ">")
			writeNodesHTML(b, n.Children)
			b.WriteString("</" + tag + ">\n")
		case blocks.NodeList:
			tag := "ul"
			if n.Ordered {
				tag = "ol"
			}
			b.WriteString("<" + tag + ">\n")
			writeNodesHTML(b, n.Children)
			b.WriteString("</" + tag + ">\n")
		case blocks.NodeItem:
			b.WriteString("<li>")
			writeNodesHTML(b, n.Children)
			b.WriteString("</li>\n")
		case blocks.NodeStrong:
			b.WriteString("<strong>")
			writeNodesHTML(b, n.Children)
			b.WriteString("</strong>")
		case blocks.NodeEmphasis:
			b.WriteString("<em>")
			writeNodesHTML(b, n.Children)
			b.WriteString("</em>")
		case blocks.NodeCodeSpan:
			b.WriteString("<code>" + n.Literal + "</code>")
		case blocks.NodeBreak:
			b.WriteString("<br>\n")
		case blocks.NodeText:
			b.WriteString(n.Literal) // pre-escaped by the pipeline
		}
	}
}

func writeThinkingHTML(b *strings.Builder, data *blocks.ThinkingData) {
	b.WriteString(`<details class="thinking">` + "\n<summary>")
	if data.Summary != "" {
		b.WriteString(html.EscapeString(data.Summary))
	} else {
		b.WriteString("Thinking")
	}
	b.WriteString("</summary>\n<ol>\n")
	for _, step := range data.Steps {
		b.WriteString(`<li data-status="` + string(step.Status) + `"`)
		if step.File != "" {
			b.WriteString(` data-file="` + html.EscapeString(step.File) + `"`)
		}
		b.WriteString(">" + html.EscapeString(step.Description) + "</li>\n")
	}
	b.WriteString("</ol>\n</details>\n")
}

func writeNoteHTML(b *strings.Builder, data *blocks.NoteData) {
	b.WriteString(`<aside class="note note-` + string(data.Icon) + `">` + "\n")
	if data.Title != "" {
		b.WriteString("<h4>" + html.EscapeString(data.Title) + "</h4>\n")
	}
	b.WriteString("<p>" + html.EscapeString(data.Content) + "</p>\n</aside>\n")
}

func writeFileHTML(b *strings.Builder, data *blocks.FileData) {
	b.WriteString(`<section class="file-card" data-name="` + html.EscapeString(data.Name) +
		`" data-type="` + html.EscapeString(data.Type) + `">` + "\n")
	b.WriteString("<h4>" + html.EscapeString(data.Name) + "</h4>\n")
	if data.Content != "" {
		b.WriteString("<pre>" + html.EscapeString(data.Content) + "</pre>\n")
	}
	b.WriteString("</section>\n")
}

func writeCodeHTML(b *strings.Builder, data *blocks.CodeData) {
	b.WriteString(`<pre><code class="language-` + html.EscapeString(data.Language) + `">`)
	b.WriteString(html.EscapeString(data.Content))
	b.WriteString("</code></pre>\n")
}

func writeTableHTML(b *strings.Builder, data *blocks.TableData) {
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range data.Headers {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range data.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}
