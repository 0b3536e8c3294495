package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notal/internal/diagfmt"
	"notal/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.ntl",
	Short: "Tokenize a Notal source file",
	Long:  `Tokenize breaks a Notal source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	opts, manifest := checkOptions(cmd, ".")

	result, err := driver.Tokenize(args[0], opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Engine.HasErrors() || result.Engine.HasWarnings() {
		popts := diagfmt.PrettyOpts{
			Color: useColor(cmd, manifest.Output.Color, os.Stderr),
		}
		fmt.Fprint(os.Stderr, diagfmt.Report(result.Engine, popts))
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
