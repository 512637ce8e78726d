package ui

import "github.com/muesli/termenv"

// GlyphSet holds the decorative characters used by the block renderer.
// ASCII fallbacks keep output readable on dumb terminals and in logs.
type GlyphSet struct {
	StepDone   string
	Thinking   string
	IconClock  string
	IconBulb   string
	IconInfo   string
	Image      string
	ListBullet string
}

var unicodeGlyphs = GlyphSet{
	StepDone:   "✓",
	Thinking:   "✻",
	IconClock:  "◷",
	IconBulb:   "💡",
	IconInfo:   "ℹ",
	Image:      "⛶",
	ListBullet: "•",
}

var asciiGlyphs = GlyphSet{
	StepDone:   "ok",
	Thinking:   "*",
	IconClock:  "(t)",
	IconBulb:   "(!)",
	IconInfo:   "(i)",
	Image:      "[img]",
	ListBullet: "-",
}

// Glyphs picks a glyph set based on the terminal's color profile.
func Glyphs() GlyphSet {
	if termenv.ColorProfile() == termenv.Ascii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}
