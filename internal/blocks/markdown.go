package blocks

import (
	"regexp"
	"strings"
)

// The markdown renderer is an explicit line-scanning state machine rather
// than a chain of string substitutions: entity escaping happens once, up
// front, and list/paragraph grouping is tracked as state. It handles the
// subset the pipeline needs: ATX headers (levels 1-3), unordered and ordered
// lists, inline strong/emphasis/code, and paragraphs with explicit line
// breaks. Tables and fenced code never reach it; the sub-extractor and the
// pattern matcher claim those earlier.

var orderedMarkerRe = regexp.MustCompile(`^\d+\.\s+`)

// renderMarkdown converts a plain text span into a semantic node tree.
func renderMarkdown(text string) []Node {
	escaped := escapeEntities(text)
	lines := strings.Split(escaped, "\n")

	var nodes []Node
	var list *Node
	var para []string

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		p := Node{Type: NodeParagraph}
		for i, line := range para {
			if i > 0 {
				p.Children = append(p.Children, Node{Type: NodeBreak})
			}
			p.Children = append(p.Children, parseInline(line)...)
		}
		para = nil
		nodes = append(nodes, p)
	}
	flushList := func() {
		if list != nil {
			nodes = append(nodes, *list)
			list = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flushList()
			flushPara()
			continue
		}

		if level, rest, ok := headingLine(line); ok {
			flushList()
			flushPara()
			nodes = append(nodes, Node{
				Type:     NodeHeading,
				Level:    level,
				Children: parseInline(rest),
			})
			continue
		}

		if item, ordered, ok := listItemLine(trimmed); ok {
			// A line break never straddles a list boundary.
			flushPara()
			if list != nil && list.Ordered != ordered {
				flushList()
			}
			if list == nil {
				list = &Node{Type: NodeList, Ordered: ordered}
			}
			list.Children = append(list.Children, Node{
				Type:     NodeItem,
				Children: parseInline(item),
			})
			continue
		}

		flushList()
		para = append(para, trimmed)
	}
	flushList()
	flushPara()

	return nodes
}

// escapeEntities escapes &, < and > before any inline rule runs. The
// ampersand goes first so already-escaped text cannot be double-escaped
// into fresh markup.
func escapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// headingLine reports whether the line is an ATX heading of level 1-3 and
// returns its level and content.
func headingLine(line string) (int, string, bool) {
	if !strings.HasPrefix(line, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > 3 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(line[level:]), true
}

// listItemLine reports whether the trimmed line is a bullet or numbered list
// item and returns its content and ordering.
func listItemLine(trimmed string) (string, bool, bool) {
	if len(trimmed) > 1 && (trimmed[0] == '-' || trimmed[0] == '*') &&
		(trimmed[1] == ' ' || trimmed[1] == '\t') {
		return strings.TrimSpace(trimmed[2:]), false, true
	}
	if m := orderedMarkerRe.FindString(trimmed); m != "" {
		return strings.TrimSpace(trimmed[len(m):]), true, true
	}
	return "", false, false
}

// parseInline tokenizes one line of escaped text into text, strong,
// emphasis and code span nodes. Code spans bind tightest; double markers
// are tried before single ones. An unclosed marker stays literal text.
func parseInline(s string) []Node {
	var nodes []Node
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			nodes = append(nodes, Node{Type: NodeText, Literal: buf.String()})
			buf.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]

		if c == '`' {
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				flush()
				nodes = append(nodes, Node{Type: NodeCodeSpan, Literal: s[i+1 : i+1+end]})
				i += end + 2
				continue
			}
		}

		if c == '*' || c == '_' {
			if i+1 < len(s) && s[i+1] == c {
				marker := s[i : i+2]
				if end := strings.Index(s[i+2:], marker); end >= 0 {
					flush()
					nodes = append(nodes, Node{
						Type:     NodeStrong,
						Children: parseInline(s[i+2 : i+2+end]),
					})
					i += end + 4
					continue
				}
			} else if end := strings.IndexByte(s[i+1:], c); end > 0 {
				flush()
				nodes = append(nodes, Node{
					Type:     NodeEmphasis,
					Children: parseInline(s[i+1 : i+1+end]),
				})
				i += end + 2
				continue
			}
		}

		buf.WriteByte(c)
		i++
	}
	flush()
	return nodes
}
