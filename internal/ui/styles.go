package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette used when rendering blocks.
type Theme struct {
	Primary   lipgloss.Color // accent (headers, filenames)
	Secondary lipgloss.Color // secondary accent (borders, table headers)

	Success lipgloss.Color // completed thinking steps
	Warning lipgloss.Color // clock notes
	Muted   lipgloss.Color // dimmed text (thinking traces, captions)
	Text    lipgloss.Color // primary text

	Border lipgloss.Color // card borders and table rules
	Link   lipgloss.Color // image URLs
}

// DefaultTheme returns the default color theme (gruvbox).
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#b8bb26"), // gruvbox green
		Secondary: lipgloss.Color("#83a598"), // gruvbox aqua
		Success:   lipgloss.Color("#b8bb26"), // gruvbox green
		Warning:   lipgloss.Color("#fabd2f"), // gruvbox yellow
		Muted:     lipgloss.Color("#928374"), // gruvbox gray
		Text:      lipgloss.Color("#ebdbb2"), // gruvbox foreground
		Border:    lipgloss.Color("#83a598"), // matches secondary
		Link:      lipgloss.Color("#d3869b"), // gruvbox purple
	}
}

// ThemeConfig mirrors config.ThemeConfig for applying overrides.
type ThemeConfig struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Muted     string
	Text      string
	Link      string
}

// ThemeFromConfig creates a theme with config overrides applied.
func ThemeFromConfig(cfg ThemeConfig) *Theme {
	theme := DefaultTheme()

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Secondary != "" {
		theme.Secondary = lipgloss.Color(cfg.Secondary)
		theme.Border = lipgloss.Color(cfg.Secondary) // border follows secondary
	}
	if cfg.Success != "" {
		theme.Success = lipgloss.Color(cfg.Success)
	}
	if cfg.Warning != "" {
		theme.Warning = lipgloss.Color(cfg.Warning)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Text != "" {
		theme.Text = lipgloss.Color(cfg.Text)
	}
	if cfg.Link != "" {
		theme.Link = lipgloss.Color(cfg.Link)
	}

	return theme
}

// Styles returns styled text helpers bound to a renderer.
type Styles struct {
	renderer *lipgloss.Renderer
	theme    *Theme

	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Filename lipgloss.Style
	FileMeta lipgloss.Style
	Link     lipgloss.Style

	NoteTitle   lipgloss.Style
	Card        lipgloss.Style
	TableHeader lipgloss.Style
	TableRule   lipgloss.Style
}

// NewStyles creates a Styles instance for the given output.
func NewStyles(output *os.File) *Styles {
	return NewStylesWithTheme(output, DefaultTheme())
}

// NewStylesWithTheme creates styles bound to a specific theme.
func NewStylesWithTheme(output *os.File, theme *Theme) *Styles {
	r := lipgloss.NewRenderer(output)

	return &Styles{
		renderer: r,
		theme:    theme,

		Heading: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Success: r.NewStyle().
			Foreground(theme.Success),

		Filename: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		FileMeta: r.NewStyle().
			Foreground(theme.Muted),

		Link: r.NewStyle().
			Foreground(theme.Link).
			Underline(true),

		NoteTitle: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		TableHeader: r.NewStyle().
			Bold(true).
			Foreground(theme.Text),

		TableRule: r.NewStyle().
			Foreground(theme.Border),
	}
}

// Theme returns the theme these styles are bound to.
func (s *Styles) Theme() *Theme {
	return s.theme
}
