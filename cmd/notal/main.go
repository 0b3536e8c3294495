package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notal/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "notal",
	Short: "Notal pseudocode transpiler front end",
	Long:  `Notal lexes and parses indentation-structured pseudocode and reports diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("werror", false, "treat warnings as errors")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color mode against the manifest default and the
// stream's terminal status.
func useColor(cmd *cobra.Command, manifestMode string, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if mode == "auto" && manifestMode != "" && !cmd.Root().PersistentFlags().Changed("color") {
		mode = manifestMode
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(f)
	}
}
