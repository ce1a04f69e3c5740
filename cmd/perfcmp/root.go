package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"perfcmp/internal/config"
	"perfcmp/internal/telemetry"
	"perfcmp/internal/ui"
)

var exit = os.Exit

var (
	cfgFile string
	logFile string
	noColor bool
)

// rootCmd represents the base command when called without any subcommands.
// Bare `perfcmp` behaves like `perfcmp run`.
var rootCmd = &cobra.Command{
	Use:   "perfcmp",
	Short: "Build, run and compare two variants of a cached data pipeline",
	Long: `perfcmp builds the original and optimized variants of a program,
runs each one under a time bound, scrapes timing metrics from their
console output, measures total wall clock and on-disk cache size, and
prints a side-by-side speedup table. Raw results are persisted to a
JSON record and appended to a local run history.`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		noClear, _ := cmd.Flags().GetBool("no-clear")
		return runComparison(cmd, noClear)
	},
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error:"), err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initRoot)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	bindRootFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().Bool("no-clear", false, "Do not clear caches before each run (use existing caches)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newHistoryCmd())
}

// bindRootFlags wires the persistent flags into viper so env vars and
// config files can set the same keys.
func bindRootFlags(flags *pflag.FlagSet) {
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

func initRoot() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), logFile)
	if noColor {
		ui.DisableColors()
	}
}
