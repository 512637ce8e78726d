package blocks

import (
	"reflect"
	"testing"
)

func TestTagAttrs(t *testing.T) {
	attrs := tagAttrs(`<note title="Heads up" icon="info">body with attr="fake"</note>`)
	want := map[string]string{"title": "Heads up", "icon": "info"}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("attrs = %v, want %v (body must not contribute)", attrs, want)
	}
}

func TestTagBody(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`<file name="a">  content  </file>`, "content"},
		{`<file name="a"></file>`, ""},
		{`<file name="a">`, ""},
	}
	for _, tt := range tests {
		if got := tagBody(tt.raw); got != tt.want {
			t.Errorf("tagBody(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseThinkingStepFileTag(t *testing.T) {
	data := parseThinking(`<thinking steps="Writing draft::report.md|Review">`)
	if data == nil {
		t.Fatal("parseThinking returned nil")
	}
	if len(data.Steps) != 2 {
		t.Fatalf("steps = %+v", data.Steps)
	}
	if data.Steps[0].Description != "Writing draft" || data.Steps[0].File != "report.md" {
		t.Errorf("step 0 = %+v", data.Steps[0])
	}
	if data.Steps[1].File != "" {
		t.Errorf("step 1 unexpectedly has file %q", data.Steps[1].File)
	}
}

func TestParseThinkingEmptyStepsSkipped(t *testing.T) {
	data := parseThinking(`<thinking steps="a||b|">`)
	if len(data.Steps) != 2 {
		t.Errorf("got %d steps, want 2 (empties skipped): %+v", len(data.Steps), data.Steps)
	}
}

func TestParseCodeLanguageToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		lang string
		body string
	}{
		{"with language", "```go\nx := 1\n```", "go", "x := 1"},
		{"no language", "```\nplain\n```", "text", "plain"},
		{"non-word info", "```!?\nplain\n```", "text", "plain"},
		{"blank lines trimmed", "```py\n\n\nx = 1\n\n```", "py", "x = 1"},
		{"indent preserved", "```go\n\tif x {\n\t\ty()\n\t}\n```", "go", "\tif x {\n\t\ty()\n\t}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parseCode(tt.raw)
			if c.Language != tt.lang {
				t.Errorf("language = %q, want %q", c.Language, tt.lang)
			}
			if c.Content != tt.body {
				t.Errorf("content = %q, want %q", c.Content, tt.body)
			}
		})
	}
}

// Attribute parsing is a pure function of the captured substring: repeated
// runs must yield identical records.
func TestAttributeParsingIdempotent(t *testing.T) {
	rawThinking := `<thinking steps="a|b" summary="s">`
	rawFile := `<file name="f.txt" type="JSON">data</file>`
	rawNote := `<note title="t" icon="clock">n</note>`
	rawCode := "```go\ncode\n```"

	first := []interface{}{
		parseThinking(rawThinking), parseFile(rawFile), parseNote(rawNote), parseCode(rawCode),
	}
	for i := 0; i < 3; i++ {
		again := []interface{}{
			parseThinking(rawThinking), parseFile(rawFile), parseNote(rawNote), parseCode(rawCode),
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced different records", i)
		}
	}
}
