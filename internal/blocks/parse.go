package blocks

import "strings"

// Default image URL heuristics. Domains match the host or any subdomain;
// extensions match the URL path with any query string ignored. Both lists
// are extendable through options (and, in the CLI, through config).
var (
	defaultImageDomains = []string{
		"res.cloudinary.com",
		"i.imgur.com",
		"imgur.com",
		"images.unsplash.com",
		"media.giphy.com",
		"media.tenor.com",
		"googleusercontent.com",
		"pbs.twimg.com",
		"raw.githubusercontent.com",
	}
	defaultImageExts = []string{
		".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".bmp", ".avif",
	}
)

// Parser converts message text into a block sequence. A Parser is immutable
// after construction and safe for concurrent use; Parse allocates fresh
// records on every call.
type Parser struct {
	imageDomains []string
	imageExts    []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithImageDomains appends extra recognized image-serving domains.
func WithImageDomains(domains ...string) Option {
	return func(p *Parser) {
		p.imageDomains = append(p.imageDomains, domains...)
	}
}

// WithImageExtensions appends extra recognized image file extensions.
// Extensions are matched case-insensitively and should include the dot.
func WithImageExtensions(exts ...string) Option {
	return func(p *Parser) {
		for _, e := range exts {
			p.imageExts = append(p.imageExts, strings.ToLower(e))
		}
	}
}

// NewParser creates a Parser with the default heuristics plus any options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		imageDomains: append([]string(nil), defaultImageDomains...),
		imageExts:    append([]string(nil), defaultImageExts...),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse converts text into blocks using the default parser.
func Parse(text string) []Block {
	return defaultParser.Parse(text)
}

// Parse converts the complete current text of a message into an ordered
// block sequence. It never fails: malformed markup degrades to plain text
// blocks, and any non-blank input produces at least one block. Empty or
// whitespace-only input produces an empty sequence.
func (p *Parser) Parse(text string) []Block {
	segs := sequence(text, scan(text))

	var out []Block
	for _, seg := range segs {
		if seg.gap {
			out = append(out, p.gapBlocks(seg.text)...)
			continue
		}
		out = append(out, taggedBlock(seg.match))
	}

	// Safety net: degraded formatting is acceptable, silent data loss is not.
	if len(out) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			out = append(out, textBlock(trimmed))
		}
	}
	return out
}

// gapBlocks runs a plain-text gap through the sub-extractor and converts
// each resulting span into a block.
func (p *Parser) gapBlocks(gap string) []Block {
	spans := p.extractSpans(gap)
	out := make([]Block, 0, len(spans))
	for _, sp := range spans {
		switch sp.kind {
		case KindImage:
			out = append(out, Block{Kind: KindImage, Source: sp.source, Image: sp.image})
		case KindTable:
			out = append(out, Block{Kind: KindTable, Source: sp.source, Table: sp.table})
		default:
			out = append(out, textBlock(sp.source))
		}
	}
	return out
}

// taggedBlock converts a tagged region into its typed block, falling back to
// a verbatim text block when the region's required attribute is missing.
func taggedBlock(m match) Block {
	switch m.kind {
	case KindThinking:
		if data := parseThinking(m.raw); data != nil {
			return Block{Kind: KindThinking, Source: m.raw, Thinking: data}
		}
	case KindNote:
		// Notes have no required attribute; parseNote always succeeds.
		return Block{Kind: KindNote, Source: m.raw, Note: parseNote(m.raw)}
	case KindFile:
		if data := parseFile(m.raw); data != nil {
			return Block{Kind: KindFile, Source: m.raw, File: data}
		}
	case KindCode:
		return Block{Kind: KindCode, Source: m.raw, Code: parseCode(m.raw)}
	}
	// Fallback: the raw tag text, recoverable verbatim.
	return Block{Kind: KindText, Source: m.raw}
}

func textBlock(text string) Block {
	return Block{Kind: KindText, Source: text, Nodes: renderMarkdown(text)}
}
