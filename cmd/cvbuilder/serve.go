package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/cv-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live preview server",
	Long: `Start a local HTTP server that shows the rendered CV and reloads it on every change.
Actions posted to /actions are applied and autosaved; POST /export returns the PDF.`,
	Args: cobra.NoArgs,
	RunE: withApp(runServe),
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	addr := a.cfg.Serve.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	exporter, err := newExporter(a, "", 0)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{Addr: addr}, a.store, exporter, a.log)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Preview: http://%s/\n", srv.Addr())
	return srv.Start(ctx)
}
