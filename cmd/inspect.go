package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Dump the parsed block sequence as JSON",
	Long: `Parse a message file (or stdin) and print the resulting block sequence
as indented JSON, including the markdown node tree of text blocks. Useful for
debugging why input parses the way it does.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, parser, _, err := setup()
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	bs := parser.Parse(text)
	data, err := json.MarshalIndent(bs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding blocks: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
