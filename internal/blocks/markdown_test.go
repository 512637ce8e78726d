package blocks

import (
	"strings"
	"testing"
)

// flatten renders a node tree back to a compact debug string for assertions.
func flatten(nodes []Node) string {
	var b strings.Builder
	var walk func(ns []Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			switch n.Type {
			case NodeText:
				b.WriteString(n.Literal)
			case NodeCodeSpan:
				b.WriteString("`" + n.Literal + "`")
			case NodeStrong:
				b.WriteString("<strong>")
				walk(n.Children)
				b.WriteString("</strong>")
			case NodeEmphasis:
				b.WriteString("<em>")
				walk(n.Children)
				b.WriteString("</em>")
			case NodeBreak:
				b.WriteString("<br>")
			default:
				walk(n.Children)
			}
		}
	}
	walk(nodes)
	return b.String()
}

func TestMarkdownHeadings(t *testing.T) {
	tests := []struct {
		input string
		level int
		text  string
	}{
		{"# Title", 1, "Title"},
		{"## Section", 2, "Section"},
		{"### Sub", 3, "Sub"},
	}
	for _, tt := range tests {
		nodes := renderMarkdown(tt.input)
		if len(nodes) != 1 || nodes[0].Type != NodeHeading {
			t.Fatalf("%q: nodes = %+v", tt.input, nodes)
		}
		if nodes[0].Level != tt.level {
			t.Errorf("%q: level = %d, want %d", tt.input, nodes[0].Level, tt.level)
		}
		if got := flatten(nodes[0].Children); got != tt.text {
			t.Errorf("%q: content = %q, want %q", tt.input, got, tt.text)
		}
	}
}

func TestMarkdownDeepHashIsParagraph(t *testing.T) {
	nodes := renderMarkdown("#### too deep")
	if len(nodes) != 1 || nodes[0].Type != NodeParagraph {
		t.Fatalf("nodes = %+v, want single paragraph", nodes)
	}
}

func TestMarkdownInlineStyles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold asterisks", "a **b** c", "a <strong>b</strong> c"},
		{"bold underscores", "a __b__ c", "a <strong>b</strong> c"},
		{"italic asterisk", "a *b* c", "a <em>b</em> c"},
		{"italic underscore", "a _b_ c", "a <em>b</em> c"},
		{"inline code", "run `go vet` often", "run `go vet` often"},
		{"bold inside sentence", "**lead** rest", "<strong>lead</strong> rest"},
		{"nested code in bold", "**a `b` c**", "<strong>a `b` c</strong>"},
		{"unclosed bold stays literal", "**open", "**open"},
		{"unclosed italic stays literal", "half*way", "half*way"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := renderMarkdown(tt.input)
			if got := flatten(nodes); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// Entity escaping runs before inline parsing, so markup-looking characters
// in the source can never become live markup.
func TestMarkdownEscapingFirst(t *testing.T) {
	nodes := renderMarkdown("use <b> & stay > safe")
	got := flatten(nodes)
	want := "use &lt;b&gt; &amp; stay &gt; safe"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarkdownParagraphLineBreaks(t *testing.T) {
	nodes := renderMarkdown("line one\nline two")
	if len(nodes) != 1 || nodes[0].Type != NodeParagraph {
		t.Fatalf("nodes = %+v", nodes)
	}
	if got := flatten(nodes[0].Children); got != "line one<br>line two" {
		t.Errorf("got %q", got)
	}
}

func TestMarkdownParagraphSplitOnBlankLine(t *testing.T) {
	nodes := renderMarkdown("first\n\nsecond")
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2 paragraphs", len(nodes))
	}
	for i, n := range nodes {
		if n.Type != NodeParagraph {
			t.Errorf("node %d type = %q", i, n.Type)
		}
	}
}

func TestMarkdownListTypeSwitchClosesList(t *testing.T) {
	nodes := renderMarkdown("- a\n- b\n1. c\n2. d")
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2 lists: %+v", len(nodes), nodes)
	}
	if nodes[0].Type != NodeList || nodes[0].Ordered {
		t.Errorf("first node = %+v, want unordered list", nodes[0])
	}
	if nodes[1].Type != NodeList || !nodes[1].Ordered {
		t.Errorf("second node = %+v, want ordered list", nodes[1])
	}
}

func TestMarkdownNoBreakAroundLists(t *testing.T) {
	nodes := renderMarkdown("intro\n- a\n- b\noutro")
	// intro paragraph, one list, outro paragraph; no break nodes touch the list.
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes: %+v", len(nodes), nodes)
	}
	if nodes[0].Type != NodeParagraph || nodes[1].Type != NodeList || nodes[2].Type != NodeParagraph {
		t.Fatalf("node types = %q %q %q", nodes[0].Type, nodes[1].Type, nodes[2].Type)
	}
	for _, p := range []Node{nodes[0], nodes[2]} {
		for _, c := range p.Children {
			if c.Type == NodeBreak {
				t.Error("stray line break adjacent to list boundary")
			}
		}
	}
}

func TestMarkdownBulletVariants(t *testing.T) {
	nodes := renderMarkdown("* star\n- dash")
	if len(nodes) != 1 || nodes[0].Type != NodeList {
		t.Fatalf("nodes = %+v, want one merged unordered list", nodes)
	}
	if len(nodes[0].Children) != 2 {
		t.Errorf("got %d items, want 2", len(nodes[0].Children))
	}
}

func TestMarkdownListItemInlineContent(t *testing.T) {
	nodes := renderMarkdown("- plain **bold** `code`")
	item := nodes[0].Children[0]
	if got := flatten(item.Children); got != "plain <strong>bold</strong> `code`" {
		t.Errorf("got %q", got)
	}
}
