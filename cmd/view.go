package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chatblocks/chatblocks/internal/render"
	"github.com/chatblocks/chatblocks/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Browse a rendered message in an interactive pager",
	Long: `Parse a message file and open the rendered blocks in a scrollable
full-screen pager. The message is re-rendered at the new width on terminal
resize. Keys: arrows/page to scroll, g/G for top/bottom, q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	_, parser, styles, err := setup()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	text := string(data)
	bs := parser.Parse(text)

	// Resizes repeat widths (drag back and forth), so renders are cached.
	cache := render.NewCache(16)
	renderAt := func(width int) string {
		key := render.Key(text, width, "term")
		if out, ok := cache.Get(key); ok {
			return out
		}
		out := render.NewRenderer(width, styles).Render(bs)
		cache.Put(key, out)
		return out
	}

	return tui.Run(filepath.Base(args[0]), renderAt)
}
