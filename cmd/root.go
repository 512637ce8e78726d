package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/chatblocks/chatblocks/internal/blocks"
	"github.com/chatblocks/chatblocks/internal/config"
	"github.com/chatblocks/chatblocks/internal/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "chatblocks",
	Short: "Parse assistant message text into typed content blocks",
	Long: `chatblocks parses assistant-generated text (prose, markdown, and the
<thinking>/<note>/<file> pseudo-markup vocabulary) into an ordered sequence
of typed content blocks, and renders them for the terminal or as HTML.

Examples:
  chatblocks render message.md              # styled terminal output
  chatblocks render --format html notes.md  # HTML fragment
  chatblocks render --watch 'log/**/*.md'   # re-render on change
  chatblocks inspect message.md             # block sequence as JSON
  chatblocks view message.md                # interactive pager`,
	Version:           Version,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var debugFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Emit debug logs")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and builds the parser and styles shared by commands.
func setup() (*config.Config, *blocks.Parser, *ui.Styles, error) {
	if debugFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	parser := blocks.NewParser(
		blocks.WithImageDomains(cfg.Images.Domains...),
		blocks.WithImageExtensions(cfg.Images.Extensions...),
	)

	theme := ui.ThemeFromConfig(ui.ThemeConfig{
		Primary:   cfg.Theme.Primary,
		Secondary: cfg.Theme.Secondary,
		Success:   cfg.Theme.Success,
		Warning:   cfg.Theme.Warning,
		Muted:     cfg.Theme.Muted,
		Text:      cfg.Theme.Text,
		Link:      cfg.Theme.Link,
	})
	styles := ui.NewStylesWithTheme(os.Stdout, theme)

	return cfg, parser, styles, nil
}

// expandArgs resolves file arguments, expanding doublestar glob patterns.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		base, pattern := doublestar.SplitPattern(filepath.ToSlash(arg))
		matches, err := doublestar.Glob(os.DirFS(base), pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		for _, m := range matches {
			files = append(files, filepath.Join(base, m))
		}
	}
	if len(files) == 0 && len(args) > 0 {
		return nil, fmt.Errorf("no files match %v", args)
	}
	return files, nil
}

// readInput returns the message text: the named file, or stdin when no
// arguments are given.
func readInput(files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", files[0], err)
	}
	return string(data), nil
}
