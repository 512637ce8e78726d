package blocks

import (
	"regexp"
	"strings"
)

// Attribute parsers turn the raw captured text of a tagged region into its
// typed record. A parser returning nil means the region is malformed
// (missing required attribute); the caller emits the raw text as a plain
// text block instead. Parsing is a pure function of the captured substring.

var (
	attrRe = regexp.MustCompile(`(\w+)="([^"]*)"`)
	langRe = regexp.MustCompile(`^\w+`)
)

// tagAttrs extracts double-quoted attributes from the opening tag.
func tagAttrs(raw string) map[string]string {
	open := raw
	if gt := strings.IndexByte(raw, '>'); gt >= 0 {
		open = raw[:gt+1]
	}
	attrs := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(open, -1) {
		attrs[m[1]] = m[2]
	}
	return attrs
}

// tagBody returns the text between the first '>' and the next '<', trimmed.
func tagBody(raw string) string {
	gt := strings.IndexByte(raw, '>')
	if gt < 0 {
		return ""
	}
	rest := raw[gt+1:]
	if lt := strings.IndexByte(rest, '<'); lt >= 0 {
		rest = rest[:lt]
	}
	return strings.TrimSpace(rest)
}

// tagInner returns everything between the first '>' and the closing tag,
// unmodified.
func tagInner(raw, closing string) string {
	gt := strings.IndexByte(raw, '>')
	if gt < 0 {
		return ""
	}
	rest := raw[gt+1:]
	if end := strings.LastIndex(rest, closing); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

// parseThinking builds a ThinkingData from a thinking region. The steps
// attribute is required; its value splits on '|' into step descriptions.
// A description of the form "desc::filename" attaches a file tag to the
// step. All steps are complete: thinking regions only appear in finished
// output.
func parseThinking(raw string) *ThinkingData {
	attrs := tagAttrs(raw)
	stepsAttr, ok := attrs["steps"]
	if !ok {
		return nil
	}

	var steps []ThinkingStep
	for _, part := range strings.Split(stepsAttr, "|") {
		desc := strings.TrimSpace(part)
		if desc == "" {
			continue
		}
		var file string
		if idx := strings.Index(desc, "::"); idx >= 0 {
			file = strings.TrimSpace(desc[idx+2:])
			desc = strings.TrimSpace(desc[:idx])
		}
		steps = append(steps, ThinkingStep{
			Description: desc,
			Status:      StepComplete,
			File:        file,
		})
	}

	return &ThinkingData{Steps: steps, Summary: attrs["summary"]}
}

// parseFile builds a FileData from a file region. The name attribute is
// required; type defaults to "Text".
func parseFile(raw string) *FileData {
	attrs := tagAttrs(raw)
	name, ok := attrs["name"]
	if !ok {
		return nil
	}
	fileType := attrs["type"]
	if fileType == "" {
		fileType = "Text"
	}
	return &FileData{Name: name, Type: fileType, Content: tagBody(raw)}
}

// parseNote builds a NoteData from a note region. Both attributes are
// optional: icon defaults to lightbulb and only the three known values are
// accepted. A note with no attributes at all uses its entire inner content
// verbatim as the body.
func parseNote(raw string) *NoteData {
	attrs := tagAttrs(raw)

	icon := IconLightbulb
	switch NoteIcon(attrs["icon"]) {
	case IconClock:
		icon = IconClock
	case IconInfo:
		icon = IconInfo
	}

	content := tagBody(raw)
	if len(attrs) == 0 {
		content = tagInner(raw, "</note>")
	}

	return &NoteData{Title: attrs["title"], Icon: icon, Content: content}
}

// parseCode builds a CodeData from a fenced code region. The language is the
// word token directly after the opening fence, defaulting to "text"; the
// body runs from the first newline to the closing fence, trimmed of leading
// and trailing blank lines.
func parseCode(raw string) *CodeData {
	inner := strings.TrimPrefix(raw, "```")
	inner = strings.TrimSuffix(inner, "```")

	info := inner
	body := ""
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		info = inner[:nl]
		body = inner[nl+1:]
	}

	lang := langRe.FindString(strings.TrimSpace(info))
	if lang == "" {
		lang = "text"
	}

	return &CodeData{Language: lang, Content: trimBlankLines(body)}
}

// trimBlankLines removes leading and trailing whitespace-only lines while
// preserving interior indentation.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
