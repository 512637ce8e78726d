package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/chatblocks/chatblocks/internal/blocks"
	"github.com/chatblocks/chatblocks/internal/render"
	"github.com/chatblocks/chatblocks/internal/ui"
)

var (
	renderFormat string
	renderWidth  int
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Parse message text and render the blocks",
	Long: `Parse one or more message files (or stdin when none are given) and
render the resulting block sequence. Glob patterns like 'log/**/*.md' are
expanded. With --watch, re-render whenever a file changes.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: term, html or json")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Terminal render width")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "Re-render when input files change")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, parser, styles, err := setup()
	if err != nil {
		return err
	}

	format := renderFormat
	if format == "" {
		format = cfg.Render.Format
	}
	switch format {
	case "term", "html", "json":
	default:
		return fmt.Errorf("unknown format %q (want term, html or json)", format)
	}

	width := renderWidth
	if width == 0 {
		width = cfg.Render.Width
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}

	if renderWatch {
		if len(files) == 0 {
			return fmt.Errorf("--watch needs file arguments")
		}
		return watchRender(files, parser, styles, format, width)
	}

	if len(files) == 0 {
		text, err := readInput(nil)
		if err != nil {
			return err
		}
		out, err := renderText(text, parser, styles, format, width)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		out, err := renderText(string(data), parser, styles, format, width)
		if err != nil {
			return err
		}
		if len(files) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(styles.Heading.Render(file))
		}
		fmt.Print(out)
	}
	return nil
}

// renderText parses and renders a single message in the requested format.
func renderText(text string, parser *blocks.Parser, styles *ui.Styles, format string, width int) (string, error) {
	bs := parser.Parse(text)
	switch format {
	case "html":
		return render.HTML(bs), nil
	case "json":
		data, err := json.MarshalIndent(bs, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding blocks: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return render.NewRenderer(width, styles).Render(bs), nil
	}
}

// watchRender re-renders the watched files whenever they change, until
// interrupted. Editors replace files on save, so the parent directories are
// watched and events filtered by name.
func watchRender(files []string, parser *blocks.Parser, styles *ui.Styles, format string, width int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", file, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	cache := render.NewCache(64)
	show := func() {
		fmt.Print("\033[2J\033[H") // clear screen, cursor home
		for i, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading %s: %v\n", file, err)
				continue
			}
			key := render.Key(string(data), width, format)
			out, ok := cache.Get(key)
			if !ok {
				out, err = renderText(string(data), parser, styles, format, width)
				if err != nil {
					fmt.Fprintf(os.Stderr, "rendering %s: %v\n", file, err)
					continue
				}
				cache.Put(key, out)
			}
			if len(files) > 1 {
				if i > 0 {
					fmt.Println()
				}
				fmt.Println(styles.Heading.Render(file))
			}
			fmt.Print(out)
		}
	}
	show()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Editors fire bursts of events per save; debounce before re-rendering.
	var pending *time.Timer
	debounce := func() {
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(100*time.Millisecond, show)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("file changed", "path", event.Name, "op", event.Op.String())
				debounce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-sigCh:
			return nil
		}
	}
}
