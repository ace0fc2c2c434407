package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afferafatima/Firewall-Simulator/internal/dashboard"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the filtering engine with the status dashboard",
	Long: `Start the navigation filtering engine and serve the status and
statistics dashboard. The host browser talks to the engine through the
dashboard's JSON API.`,
	Example: `  firewallsim serve -c firewall.yaml
  firewallsim serve -l 127.0.0.1:9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "listen", "l", "", "dashboard listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		eng.cfg.DashboardAddr = serveAddr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	logger.Info("starting engine",
		"dashboard", eng.cfg.DashboardAddr,
		"blocked_sites", eng.blocklist.Len(),
	)

	dash := dashboard.NewServer(dashboard.Options{
		Addr:     eng.cfg.DashboardAddr,
		TopSites: eng.cfg.TopSites,
		Interval: eng.cfg.HistogramInterval,
	}, eng.log, eng.blocklist, eng.guard, logger)

	if err := dash.ListenAndServe(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
