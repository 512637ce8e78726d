package blocks

import (
	"strings"
	"testing"
)

// assertKinds verifies the kind sequence of a parse result.
func assertKinds(t *testing.T, got []Block, want ...Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d: %+v", len(got), len(want), kinds(got))
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Errorf("block %d: got kind %q, want %q", i, got[i].Kind, want[i])
		}
	}
}

func kinds(bs []Block) []Kind {
	out := make([]Kind, len(bs))
	for i, b := range bs {
		out[i] = b.Kind
	}
	return out
}

// stripSpace removes all whitespace, for round-trip comparison.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		if got := Parse(input); len(got) != 0 {
			t.Errorf("Parse(%q): got %d blocks, want 0", input, len(got))
		}
	}
}

func TestParsePlainText(t *testing.T) {
	got := Parse("Just some prose.")
	assertKinds(t, got, KindText)
	if got[0].Source != "Just some prose." {
		t.Errorf("source = %q", got[0].Source)
	}
	if len(got[0].Nodes) == 0 {
		t.Error("text block has no markdown nodes")
	}
}

// Completed thinking regions are attribute-driven; a bare opening tag is
// enough to produce a full thinking block.
func TestParseThinkingOpeningTagOnly(t *testing.T) {
	got := Parse(`<thinking steps="Searched memory|Found 3 notes" summary="Done">`)
	assertKinds(t, got, KindThinking)

	th := got[0].Thinking
	if len(th.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(th.Steps))
	}
	for i, s := range th.Steps {
		if s.Status != StepComplete {
			t.Errorf("step %d status = %q, want complete", i, s.Status)
		}
	}
	if th.Steps[0].Description != "Searched memory" || th.Steps[1].Description != "Found 3 notes" {
		t.Errorf("step descriptions = %+v", th.Steps)
	}
	if th.Summary != "Done" {
		t.Errorf("summary = %q, want Done", th.Summary)
	}
}

func TestParseThinkingWithBody(t *testing.T) {
	got := Parse(`before <thinking steps="one|two">ignored body</thinking> after`)
	assertKinds(t, got, KindText, KindThinking, KindText)
	if got[0].Source != "before" || got[2].Source != "after" {
		t.Errorf("gap sources = %q, %q", got[0].Source, got[2].Source)
	}
}

func TestParseTableInsideMixedText(t *testing.T) {
	got := Parse("Here:\n|A|B|\n|-|-|\n|1|2|\nThanks")
	assertKinds(t, got, KindText, KindTable, KindText)

	if got[0].Source != "Here:" || got[2].Source != "Thanks" {
		t.Errorf("surrounding text = %q, %q", got[0].Source, got[2].Source)
	}
	tbl := got[1].Table
	if len(tbl.Headers) != 2 || tbl.Headers[0] != "A" || tbl.Headers[1] != "B" {
		t.Errorf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0]) != 2 || tbl.Rows[0][0] != "1" || tbl.Rows[0][1] != "2" {
		t.Errorf("rows = %v", tbl.Rows)
	}
}

func TestParseInlineImageAmidProse(t *testing.T) {
	got := Parse("See https://res.cloudinary.com/x/image/upload/v1/photo.png now")
	assertKinds(t, got, KindText, KindImage, KindText)

	if got[1].Image.URL != "https://res.cloudinary.com/x/image/upload/v1/photo.png" {
		t.Errorf("url = %q", got[1].Image.URL)
	}
	if got[0].Source != "See" || got[2].Source != "now" {
		t.Errorf("adjacent text = %q, %q", got[0].Source, got[2].Source)
	}
}

// A tag missing its required attribute degrades to a verbatim text block,
// never an error and never a dropped region.
func TestParseMissingRequiredAttributeFallback(t *testing.T) {
	input := `<file type="JSON">data</file>`
	got := Parse(input)
	assertKinds(t, got, KindText)
	if got[0].Source != input {
		t.Errorf("fallback source = %q, want raw input", got[0].Source)
	}
	if got[0].Nodes != nil {
		t.Error("fallback block should carry no markdown nodes")
	}
}

func TestParseThinkingMissingStepsFallback(t *testing.T) {
	input := `<thinking summary="no steps here">`
	got := Parse(input)
	assertKinds(t, got, KindText)
	if got[0].Source != input {
		t.Errorf("fallback source = %q", got[0].Source)
	}
}

func TestParseFileBlock(t *testing.T) {
	got := Parse(`<file name="report.json" type="JSON">{"a":1}</file>`)
	assertKinds(t, got, KindFile)

	f := got[0].File
	if f.Name != "report.json" || f.Type != "JSON" || f.Content != `{"a":1}` {
		t.Errorf("file = %+v", f)
	}
}

func TestParseFileDefaultType(t *testing.T) {
	got := Parse(`<file name="notes.txt">hello</file>`)
	assertKinds(t, got, KindFile)
	if got[0].File.Type != "Text" {
		t.Errorf("type = %q, want Text", got[0].File.Type)
	}
}

func TestParseNoteDefaults(t *testing.T) {
	got := Parse(`<note title="Reminder" icon="clock">drink water</note>`)
	assertKinds(t, got, KindNote)
	n := got[0].Note
	if n.Title != "Reminder" || n.Icon != IconClock || n.Content != "drink water" {
		t.Errorf("note = %+v", n)
	}

	got = Parse(`<note icon="sparkles">body</note>`)
	if got[0].Note.Icon != IconLightbulb {
		t.Errorf("unknown icon should default to lightbulb, got %q", got[0].Note.Icon)
	}
}

func TestParseNoteWithoutAttributes(t *testing.T) {
	got := Parse(`<note>just the body</note>`)
	assertKinds(t, got, KindNote)
	if got[0].Note.Content != "just the body" {
		t.Errorf("content = %q", got[0].Note.Content)
	}
	if got[0].Note.Icon != IconLightbulb {
		t.Errorf("icon = %q, want lightbulb", got[0].Note.Icon)
	}
}

func TestParseFencedCode(t *testing.T) {
	got := Parse("intro\n```go\nfmt.Println(\"hi\")\n```\noutro")
	assertKinds(t, got, KindText, KindCode, KindText)

	c := got[1].Code
	if c.Language != "go" {
		t.Errorf("language = %q", c.Language)
	}
	if c.Content != "fmt.Println(\"hi\")" {
		t.Errorf("content = %q", c.Content)
	}
}

func TestParseFencedCodeNoLanguage(t *testing.T) {
	got := Parse("```\nplain\n```")
	assertKinds(t, got, KindCode)
	if got[0].Code.Language != "text" {
		t.Errorf("language = %q, want text", got[0].Code.Language)
	}
}

func TestParseUnterminatedRegionsFallThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated note", `<note title="x">never closed`},
		{"unterminated file", `<file name="a.txt">never closed`},
		{"unterminated fence", "```go\nfunc main() {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assertKinds(t, got, KindText)
			if len(got[0].Nodes) == 0 {
				t.Error("fallthrough text should pass through the markdown renderer")
			}
		})
	}
}

func TestParseListGrouping(t *testing.T) {
	got := Parse("- a\n- b\n\n1. c\n2. d")
	assertKinds(t, got, KindText)

	var lists []Node
	for _, n := range got[0].Nodes {
		if n.Type == NodeList {
			lists = append(lists, n)
		}
	}
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(lists))
	}
	if lists[0].Ordered || !lists[1].Ordered {
		t.Errorf("list ordering = %v, %v; want unordered then ordered", lists[0].Ordered, lists[1].Ordered)
	}
	if len(lists[0].Children) != 2 || len(lists[1].Children) != 2 {
		t.Errorf("item counts = %d, %d; want 2, 2", len(lists[0].Children), len(lists[1].Children))
	}
}

func TestParseOrderingAcrossKinds(t *testing.T) {
	input := "start\n" +
		"<note>first</note>\n" +
		"middle\n" +
		"```py\nx = 1\n```\n" +
		`<file name="f.txt">body</file>` + "\n" +
		"end"
	got := Parse(input)
	assertKinds(t, got, KindText, KindNote, KindText, KindCode, KindFile, KindText)
}

// Concatenating every block's source span and discarding whitespace must
// reproduce the input: the pipeline may drop blank gaps but never content.
func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"plain prose only",
		"Here:\n|A|B|\n|-|-|\n|1|2|\nThanks",
		"See https://i.imgur.com/a.png. More text.",
		`<thinking steps="a|b">` + "\n\nafter",
		`<file type="JSON">no name</file>` + " trailing",
		"text\n```go\ncode\n```\nmore\n<note>hi</note>",
		"- a\n- b\n\n1. c\n2. d",
		`<note title="x">never closed tail`,
	}
	for _, input := range inputs {
		var sources []string
		for _, b := range Parse(input) {
			sources = append(sources, b.Source)
		}
		got := stripSpace(strings.Join(sources, " "))
		want := stripSpace(input)
		if got != want {
			t.Errorf("round trip failed for %q:\n got %q\nwant %q", input, got, want)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	input := "a\n<note>n</note>\n|X|Y|\n|-|-|\n|1|2|\nhttps://i.imgur.com/z.png"
	first := Parse(input)
	for i := 0; i < 5; i++ {
		again := Parse(input)
		if len(again) != len(first) {
			t.Fatalf("run %d: %d blocks vs %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].Kind != first[j].Kind || again[j].Source != first[j].Source {
				t.Fatalf("run %d block %d differs", i, j)
			}
		}
	}
}

func TestParserOptions(t *testing.T) {
	p := NewParser(WithImageDomains("cdn.internal.example"), WithImageExtensions(".HEIC"))

	got := p.Parse("https://cdn.internal.example/shot")
	assertKinds(t, got, KindImage)

	got = p.Parse("https://unknown.example/pic.heic")
	assertKinds(t, got, KindImage)

	// The default parser recognizes neither.
	got = Parse("https://cdn.internal.example/shot")
	assertKinds(t, got, KindText)
}
