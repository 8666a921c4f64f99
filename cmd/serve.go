package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/KaramelBytes/likelens/internal/server"
	"github.com/spf13/cobra"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the category analysis web UI and JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("listen") && serveListen != "" {
			cfg.ListenAddr = serveListen
		}
		a, err := newAnalyzer()
		if err != nil {
			return err
		}
		logger.Info().
			Str("dataset_dir", cfg.DatasetDir).
			Str("static_dir", cfg.StaticDir).
			Strs("categories", a.Registry().Keys()).
			Msg("starting")
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(cfg.ListenAddr, a, cfg.StaticDir, logger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address, e.g. :5000 (overrides config)")
}
