package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind/internal/preview"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start the live preview server.

The server renders the demo page, changes its reactive values on every
tick and streams the resulting patches to connected browsers.

Examples:
  vbind serve
  vbind serve --port=8080
  vbind serve --config=preview.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			printBanner()
			fmt.Println("  serve")
			fmt.Println()
			info("Preview:  http://%s", cfg.Addr())
			if cfg.Metrics.Enabled {
				info("Metrics:  http://%s%s", cfg.Addr(), cfg.Metrics.Path)
			}
			fmt.Println()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := preview.New(cfg, preview.WithLogger(newLogger(cfg)))
			if err := srv.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			success("Stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from vbind.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vbind.yaml)")

	return cmd
}
