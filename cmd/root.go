package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/likelens/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile        string
	debug          bool
	flagDatasetDir string
	flagStaticDir  string

	// Loaded configuration
	cfg *cfgpkg.Global
	// Root logger, built after config is loaded.
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "likelens",
	Short: "likelens: views vs likes regression reports per content category",
	Long: `likelens loads a category's video dataset, fits likes against views with
ordinary least squares, renders a scatter plot with the fitted line, and reports
summary insights over HTTP or on the command line.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.likelens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDatasetDir, "dataset-dir", "", "directory holding category datasets (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagStaticDir, "static-dir", "", "directory plot images are written to (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so read-only commands still work
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{ListenAddr: ":5000", DatasetDir: "dataset", StaticDir: "static", LogLevel: "info", LogFormat: "console"}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("dataset-dir") && flagDatasetDir != "" {
		cfg.DatasetDir = flagDatasetDir
	}
	if f.Changed("static-dir") && flagStaticDir != "" {
		cfg.StaticDir = flagStaticDir
	}
	logger = newLogger(cfg, debug)
}
