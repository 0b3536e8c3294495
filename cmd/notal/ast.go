package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notal/internal/diagfmt"
	"notal/internal/driver"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] file.ntl",
	Short: "Parse a Notal source file and dump its syntax tree",
	Long: `Ast parses a Notal source file and prints the produced tree in a
compact source-like form. Diagnostics go to stderr; with --keep-going a
tree recovered from a broken file is still printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runAst,
}

func init() {
	astCmd.Flags().Bool("keep-going", false, "print the tree even when parsing reported errors")
}

func runAst(cmd *cobra.Command, args []string) error {
	keepGoing, _ := cmd.Flags().GetBool("keep-going")
	opts, manifest := checkOptions(cmd, ".")

	result, err := driver.Check(args[0], opts)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Engine.HasErrors() || result.Engine.HasWarnings() {
		popts := diagfmt.PrettyOpts{
			Color:           useColor(cmd, manifest.Output.Color, os.Stderr),
			ShowNotes:       true,
			ShowSuggestions: true,
		}
		fmt.Fprint(os.Stderr, diagfmt.Report(result.Engine, popts))
	}

	if result.Program == nil {
		os.Exit(1)
	}
	if !result.Engine.HasErrors() || keepGoing {
		diagfmt.FormatProgram(os.Stdout, result.Builder, result.Program)
	}
	if result.Engine.HasErrors() {
		os.Exit(1)
	}
	return nil
}
