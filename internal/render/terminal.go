// Package render turns a parsed block sequence into presentation output:
// styled terminal text or HTML. The pipeline in internal/blocks stays pure;
// everything lossy or cosmetic happens here.
package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/chatblocks/chatblocks/internal/blocks"
	"github.com/chatblocks/chatblocks/internal/ui"
)

// Renderer renders blocks for a terminal at a fixed width.
// Create a new Renderer per width; they are cheap once the glamour
// renderer for that width is cached.
type Renderer struct {
	width  int
	styles *ui.Styles
	glyphs ui.GlyphSet
}

// NewRenderer creates a terminal renderer.
func NewRenderer(width int, styles *ui.Styles) *Renderer {
	if width < 20 {
		width = 20
	}
	return &Renderer{
		width:  width,
		styles: styles,
		glyphs: ui.Glyphs(),
	}
}

// Render renders the block sequence to styled terminal text.
func (r *Renderer) Render(bs []blocks.Block) string {
	var b strings.Builder
	for i, blk := range bs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(r.renderBlock(blk))
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderBlock(blk blocks.Block) string {
	switch blk.Kind {
	case blocks.KindThinking:
		return r.renderThinking(blk.Thinking)
	case blocks.KindNote:
		return r.renderNote(blk.Note)
	case blocks.KindFile:
		return r.renderFile(blk.File)
	case blocks.KindCode:
		return r.renderCode(blk.Code)
	case blocks.KindTable:
		return r.renderTable(blk.Table)
	case blocks.KindImage:
		return r.renderImage(blk.Image)
	default:
		return r.renderText(blk)
	}
}

// renderText renders a text block's source markdown through glamour.
// Fallback blocks (raw tag text, no nodes) are shown verbatim so the
// original input stays recoverable on screen.
func (r *Renderer) renderText(blk blocks.Block) string {
	if blk.Nodes == nil {
		return blk.Source
	}
	return renderMarkdownTerm(blk.Source, r.width)
}

func (r *Renderer) renderThinking(data *blocks.ThinkingData) string {
	var b strings.Builder

	header := r.glyphs.Thinking + " Thinking"
	if data.Summary != "" {
		header += " · " + data.Summary
	}
	b.WriteString(r.styles.Muted.Render(header))

	for _, step := range data.Steps {
		b.WriteString("\n  ")
		b.WriteString(r.styles.Success.Render(r.glyphs.StepDone))
		b.WriteString(" ")
		b.WriteString(r.styles.Muted.Render(step.Description))
		if step.File != "" {
			b.WriteString(" ")
			b.WriteString(r.styles.FileMeta.Render("(" + step.File + ")"))
		}
	}
	return b.String()
}

func (r *Renderer) renderNote(data *blocks.NoteData) string {
	icon := r.glyphs.IconBulb
	switch data.Icon {
	case blocks.IconClock:
		icon = r.glyphs.IconClock
	case blocks.IconInfo:
		icon = r.glyphs.IconInfo
	}

	var inner strings.Builder
	inner.WriteString(icon)
	inner.WriteString(" ")
	if data.Title != "" {
		inner.WriteString(r.styles.NoteTitle.Render(data.Title))
		inner.WriteString("\n")
	}
	inner.WriteString(wordwrap.String(data.Content, r.cardWidth()))

	return r.styles.Card.Render(inner.String())
}

func (r *Renderer) renderFile(data *blocks.FileData) string {
	var inner strings.Builder
	inner.WriteString(r.styles.Filename.Render(data.Name))
	inner.WriteString("  ")
	inner.WriteString(r.styles.FileMeta.Render(data.Type))
	if data.Content != "" {
		inner.WriteString("\n")
		inner.WriteString(r.styles.FileMeta.Render(strconv.Itoa(len(data.Content)) + " bytes"))
		inner.WriteString("\n")
		inner.WriteString(wordwrap.String(data.Content, r.cardWidth()))
	}
	return r.styles.Card.Render(inner.String())
}

func (r *Renderer) renderCode(data *blocks.CodeData) string {
	label := r.styles.FileMeta.Render(data.Language)
	return label + "\n" + highlightCode(data.Content, data.Language)
}

// renderTable lays out a pipe table with padded columns. Rows are ragged by
// contract; missing trailing cells render empty.
func (r *Renderer) renderTable(data *blocks.TableData) string {
	widths := make([]int, len(data.Headers))
	for i, h := range data.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range data.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	pad := func(cells []string, style func(string) string) string {
		var b strings.Builder
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(style(runewidth.FillRight(cell, w)))
		}
		return strings.TrimRight(b.String(), " ")
	}

	var b strings.Builder
	b.WriteString(pad(data.Headers, func(s string) string { return r.styles.TableHeader.Render(s) }))

	total := 0
	for i, w := range widths {
		if i > 0 {
			total += 2
		}
		total += w
	}
	b.WriteString("\n")
	b.WriteString(r.styles.TableRule.Render(strings.Repeat("─", total)))

	for _, row := range data.Rows {
		b.WriteString("\n")
		b.WriteString(pad(row, func(s string) string { return s }))
	}
	return b.String()
}

func (r *Renderer) renderImage(data *blocks.ImageData) string {
	label := data.URL
	if data.Alt != "" {
		label = data.Alt + " · " + data.URL
	}
	return r.glyphs.Image + " " + r.styles.Link.Render(label)
}

// cardWidth is the wrap width inside a bordered card.
func (r *Renderer) cardWidth() int {
	w := r.width - 4
	if w < 16 {
		w = 16
	}
	return w
}
