package blocks

import (
	"regexp"
	"sort"
	"strings"
)

// Tagged region patterns. The four families are scanned independently and
// merged by offset; the vocabulary is assumed non-nesting, so no
// cross-family disambiguation happens beyond first-by-offset-wins.
//
// The thinking pattern accepts a bare opening tag: its payload is entirely
// attribute-driven, so an unterminated body loses nothing. note and file
// must literally close, because their body is part of the record; an
// unterminated occurrence falls through as plain text.
var (
	thinkingRe = regexp.MustCompile(`(?s)<thinking\b[^>]*>(?:.*?</thinking>)?`)
	noteRe     = regexp.MustCompile(`(?s)<note\b[^>]*>.*?</note>`)
	fileRe     = regexp.MustCompile(`(?s)<file\b[^>]*>.*?</file>`)
	fenceRe    = regexp.MustCompile("(?s)```[^\n]*\n.*?```")
)

// match is one tagged region found in the raw text.
type match struct {
	kind  Kind
	raw   string
	start int
	end   int
}

// scan finds all tagged regions across the four pattern families.
// Family scan order (thinking, note, file, code) is the stable tiebreak
// when two matches start at the same offset.
func scan(text string) []match {
	var out []match
	families := []struct {
		kind Kind
		re   *regexp.Regexp
	}{
		{KindThinking, thinkingRe},
		{KindNote, noteRe},
		{KindFile, fileRe},
		{KindCode, fenceRe},
	}
	for _, f := range families {
		for _, loc := range f.re.FindAllStringIndex(text, -1) {
			out = append(out, match{
				kind:  f.kind,
				raw:   text[loc[0]:loc[1]],
				start: loc[0],
				end:   loc[1],
			})
		}
	}
	return out
}

// segment is one element of the interleaved tagged/gap sequence that covers
// the input exactly once, left to right.
type segment struct {
	gap   bool
	match match  // when !gap
	text  string // when gap
}

// sequence sorts matches by start offset and interleaves them with the plain
// text gaps between them. Whitespace-only gaps are dropped. A match that
// starts inside an already-accepted match is skipped: first found by offset
// wins, which is the documented behavior when families structurally overlap
// on malformed input.
func sequence(text string, matches []match) []segment {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	var segs []segment
	cursor := 0
	appendGap := func(s string) {
		if strings.TrimSpace(s) != "" {
			segs = append(segs, segment{gap: true, text: s})
		}
	}

	for _, m := range matches {
		if m.start < cursor {
			continue
		}
		appendGap(text[cursor:m.start])
		segs = append(segs, segment{match: m})
		cursor = m.end
	}
	appendGap(text[cursor:])
	return segs
}
