package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfcmp/internal/compare"
	"perfcmp/internal/history"
	"perfcmp/internal/proc"
	"perfcmp/internal/ui"
)

// Factory seams, swappable in tests.
var (
	newExecutor = func() proc.Executor {
		return proc.CommandExecutor{}
	}
	newResultStore = func(path string) (compare.Store, error) {
		return compare.NewFileStore(path)
	}
	newHistoryStore = func(path string) (history.Store, error) {
		return history.NewSQLiteStore(path)
	}
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full original-vs-optimized comparison",
		Long: `Clears both cache directories (unless --no-clear), builds and runs the
original version, clears again so the second run starts equally cold,
builds and runs the optimized version, prints the speedup table and
persists the raw results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			noClear, _ := cmd.Flags().GetBool("no-clear")
			return runComparison(cmd, noClear)
		},
	}
	cmd.Flags().Bool("no-clear", false, "Do not clear caches before each run (use existing caches)")
	return cmd
}

func runComparison(cmd *cobra.Command, noClear bool) error {
	out := cmd.OutOrStdout()

	original := compare.VersionSpec{
		Label:    "original",
		Dir:      viper.GetString("original.dir"),
		CacheDir: viper.GetString("original.cache_dir"),
	}
	optimized := compare.VersionSpec{
		Label:    "optimized",
		Dir:      viper.GetString("optimized.dir"),
		CacheDir: viper.GetString("optimized.cache_dir"),
	}

	// Both version directories must exist before any work starts.
	for _, v := range []compare.VersionSpec{original, optimized} {
		if info, err := os.Stat(v.Dir); err != nil || !info.IsDir() {
			return fmt.Errorf("%s version directory not found: %s", v.Label, v.Dir)
		}
	}

	buildArgs, err := shellquote.Split(viper.GetString("build_cmd"))
	if err != nil || len(buildArgs) == 0 {
		return fmt.Errorf("invalid build_cmd %q: %w", viper.GetString("build_cmd"), err)
	}
	runArgs, err := shellquote.Split(viper.GetString("run_cmd"))
	if err != nil || len(runArgs) == 0 {
		return fmt.Errorf("invalid run_cmd %q: %w", viper.GetString("run_cmd"), err)
	}

	fmt.Fprintln(out, ui.TitleStyle.Render("Starting Performance Comparison"))
	fmt.Fprintln(out, strings.Repeat("=", 60))

	store, err := newResultStore(viper.GetString("results_file"))
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}

	driver := &compare.Driver{
		Runner: &compare.VersionRunner{
			Exec:      newExecutor(),
			BuildArgs: buildArgs,
			RunArgs:   runArgs,
			Timeout:   time.Duration(viper.GetInt("run_timeout")) * time.Second,
			Out:       out,
		},
		Original:  original,
		Optimized: optimized,
		Store:     store,
		Out:       out,
	}

	result, err := driver.Run(cmd.Context(), !noClear)
	if err != nil {
		return err
	}

	// History is best-effort; a broken database must not fail the run.
	hs, err := newHistoryStore(viper.GetString("history_db"))
	if err != nil {
		slog.Warn("history database unavailable", "error", err)
		return nil
	}
	if err := hs.Append(result); err != nil {
		slog.Warn("failed to record run history", "error", err)
	}
	if err := hs.Close(); err != nil {
		slog.Warn("failed to close history database", "error", err)
	}
	return nil
}
