package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment
// variables. Every key can be overridden via PERFCMP_* env vars, e.g.
// PERFCMP_ORIGINAL_DIR or PERFCMP_RUN_TIMEOUT.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PERFCMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Directory and cache names follow the benchmarked project's layout.
	viper.SetDefault("original.dir", "original_version")
	viper.SetDefault("original.cache_dir", ".timstof_cache")
	viper.SetDefault("optimized.dir", "optimized_version")
	viper.SetDefault("optimized.cache_dir", ".timstof_cache_optimized")

	viper.SetDefault("build_cmd", "cargo build --release")
	viper.SetDefault("run_cmd", "cargo run --release")
	viper.SetDefault("run_timeout", 600) // seconds

	viper.SetDefault("results_file", "performance_comparison.json")
	viper.SetDefault("history_db", ".perfcmp/history.db")
	viper.SetDefault("verbose", false)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
