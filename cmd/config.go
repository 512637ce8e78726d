package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chatblocks/chatblocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := setup()
	if err != nil {
		return err
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		path += " (not present, using defaults)"
	}

	fmt.Println(styles.Heading.Render("Config file"))
	fmt.Printf("  %s\n\n", path)

	fmt.Println(styles.Heading.Render("Render"))
	fmt.Printf("  width:  %d\n", cfg.Render.Width)
	fmt.Printf("  format: %s\n\n", cfg.Render.Format)

	fmt.Println(styles.Heading.Render("Images"))
	if len(cfg.Images.Domains) == 0 && len(cfg.Images.Extensions) == 0 {
		fmt.Println("  built-in domains and extensions only")
	}
	for _, d := range cfg.Images.Domains {
		fmt.Printf("  domain:    %s\n", d)
	}
	for _, e := range cfg.Images.Extensions {
		fmt.Printf("  extension: %s\n", e)
	}
	return nil
}
