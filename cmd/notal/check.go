package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notal/internal/diagfmt"
	"notal/internal/driver"
	"notal/internal/project"
	"notal/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Parse a Notal file or directory and report diagnostics",
	Long: `Check runs the full front end (lexer, parser, recovery) over one .ntl
file, or over every .ntl file under a directory, and prints diagnostics.
The process exits non-zero when any error-level diagnostic was produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory checks (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache for directory checks")
}

// checkOptions folds persistent flags over the nearest manifest.
func checkOptions(cmd *cobra.Command, startDir string) (driver.CheckOptions, project.Manifest) {
	manifest, _, _ := project.LoadNearestManifest(startDir)

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if manifest.Diagnostics.Max > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics = manifest.Diagnostics.Max
	}
	werror, _ := cmd.Root().PersistentFlags().GetBool("werror")
	if manifest.Diagnostics.Werror && !cmd.Root().PersistentFlags().Changed("werror") {
		werror = true
	}
	return driver.CheckOptions{
		MaxDiagnostics:   maxDiagnostics,
		WarningsAsErrors: werror,
	}, manifest
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runCheckDir(cmd, path, format)
	}

	opts, manifest := checkOptions(cmd, ".")
	result, err := driver.Check(path, opts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	switch format {
	case "json":
		if err := diagfmt.WriteJSON(os.Stdout, result.Engine, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
			return err
		}
	case "pretty":
		popts := diagfmt.PrettyOpts{
			Color:           useColor(cmd, manifest.Output.Color, os.Stderr),
			ShowNotes:       true,
			ShowSuggestions: true,
		}
		fmt.Fprint(os.Stderr, diagfmt.Report(result.Engine, popts))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	// sole success/failure gate for the process
	if result.Engine.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func runCheckDir(cmd *cobra.Command, dir, format string) error {
	if format != "pretty" {
		return fmt.Errorf("format %q is not supported for directory checks", format)
	}
	opts, manifest := checkOptions(cmd, dir)
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	var cache *driver.DiskCache
	if !noCache {
		// best effort; checking works without a cache directory
		cache, _ = driver.OpenDiskCache("notal")
	}

	results, err := driver.CheckDir(cmd.Context(), dir, opts, jobs, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	popts := diagfmt.PrettyOpts{
		Color:           useColor(cmd, manifest.Output.Color, os.Stderr),
		ShowNotes:       true,
		ShowSuggestions: true,
	}

	var failed, errors, warnings int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		eng := r.Result.Engine
		fmt.Fprintln(os.Stdout, ui.FileStatus(r.Path, eng.ErrorCount(), eng.WarningCount(), r.FromCache))
		if eng.ErrorCount() > 0 || eng.WarningCount() > 0 {
			fmt.Fprint(os.Stderr, diagfmt.Report(eng, popts))
		}
		if eng.HasErrors() {
			failed++
		}
		errors += eng.ErrorCount()
		warnings += eng.WarningCount()
	}
	fmt.Fprintln(os.Stdout, ui.Summary(len(results), failed, errors, warnings))

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
