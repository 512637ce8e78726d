package blocks

import (
	"net/url"
	"regexp"
	"strings"
)

// A gap of plain text may still contain bare image URLs and markdown tables.
// The sub-extractor slices it into image / table / text spans, in order.

// span is a slice of a gap after image and table extraction.
type span struct {
	kind   Kind // KindImage, KindTable or KindText
	source string
	image  *ImageData
	table  *TableData
}

// urlRe matches the longest contiguous run of non-whitespace,
// non-bracket/quote characters starting at http(s).
var urlRe = regexp.MustCompile(`https?://[^\s<>()\[\]"']+`)

// trailingPunct is sentence punctuation stripped from the end of a URL
// before the domain/extension check.
const trailingPunct = ".,;:!?)"

// extractSpans splits a gap into image, table and text spans. Text on either
// side of an image is itself checked for tables; a gap with no images is
// checked as a whole.
func (p *Parser) extractSpans(gap string) []span {
	var spans []span
	cursor := 0
	for _, loc := range urlRe.FindAllStringIndex(gap, -1) {
		if loc[0] < cursor {
			continue
		}
		u := strings.TrimRight(gap[loc[0]:loc[1]], trailingPunct)
		if u == "" || !p.isImageURL(u) {
			continue
		}
		spans = append(spans, extractTables(gap[cursor:loc[0]])...)
		spans = append(spans, span{
			kind:   KindImage,
			source: u,
			image:  &ImageData{URL: u},
		})
		cursor = loc[0] + len(u)
	}
	spans = append(spans, extractTables(gap[cursor:])...)
	return spans
}

// isImageURL reports whether a URL should become an image block: it must be
// hosted on a recognized image-serving domain or end in a recognized image
// file extension (a query string after the extension is fine). Anything else
// stays plain text.
func (p *Parser) isImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range p.imageDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	path := strings.ToLower(u.Path)
	for _, ext := range p.imageExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// extractTables splits a text region into table and text spans. A table is a
// maximal run of two or more consecutive lines containing a pipe; the run's
// first line provides the headers, an optional hyphen-bearing second line is
// the separator row, and every other line becomes a row. Runs that do not
// qualify stay part of the surrounding text. Whitespace-only text is dropped.
func extractTables(text string) []span {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var spans []span
	var plain []string

	flushPlain := func() {
		joined := strings.TrimSpace(strings.Join(plain, "\n"))
		plain = nil
		if joined != "" {
			spans = append(spans, span{kind: KindText, source: joined})
		}
	}

	i := 0
	for i < len(lines) {
		if strings.Contains(lines[i], "|") {
			j := i
			for j < len(lines) && strings.Contains(lines[j], "|") {
				j++
			}
			if j-i >= 2 {
				if tbl := parseTable(lines[i:j]); tbl != nil {
					flushPlain()
					spans = append(spans, span{
						kind:   KindTable,
						source: strings.Join(lines[i:j], "\n"),
						table:  tbl,
					})
					i = j
					continue
				}
			}
		}
		plain = append(plain, lines[i])
		i++
	}
	flushPlain()
	return spans
}

// parseTable builds a TableData from a run of pipe-bearing lines, or nil if
// the first line yields no headers. Rows keep whatever cell count their
// source line had.
func parseTable(lines []string) *TableData {
	headers := tableCells(lines[0])
	if len(headers) == 0 {
		return nil
	}

	start := 1
	if len(lines) > 1 && strings.Contains(lines[1], "-") {
		start = 2
	}

	rows := make([][]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		rows = append(rows, tableCells(line))
	}
	return &TableData{Headers: headers, Rows: rows}
}

// tableCells splits a table line on pipes into trimmed, non-empty cells.
func tableCells(line string) []string {
	var cells []string
	for _, c := range strings.Split(line, "|") {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}
