package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mchris2/logsweep/pkg/cli"
	"github.com/mchris2/logsweep/pkg/config"
	"github.com/mchris2/logsweep/pkg/pipeline"
	"github.com/mchris2/logsweep/pkg/sweep"
	"github.com/mchris2/logsweep/pkg/telemetry/logging"
	"github.com/mchris2/logsweep/pkg/telemetry/metrics"
)

var scheduleFlags struct {
	cron          string
	metricsListen string
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the pipeline on a cron schedule",
	Long: `Run as a daemon, executing the archival pipeline on a cron schedule.

The config file is watched and reloaded between runs, so retention
windows and paths can be changed without restarting. An optional HTTP
listener exposes run statistics as Prometheus metrics.

Examples:
  # Daily at 3 AM (the default)
  logsweep schedule

  # Every six hours, with a metrics endpoint
  logsweep schedule --cron "0 */6 * * *" --metrics-listen 127.0.0.1:9183`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVar(&scheduleFlags.cron, "cron", "", "cron expression for scheduled runs")
	scheduleCmd.Flags().StringVar(&scheduleFlags.metricsListen, "metrics-listen", "", "address for the Prometheus metrics endpoint")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("cron") {
		cfg.Schedule.Cron = scheduleFlags.cron
	}
	if cmd.Flags().Changed("metrics-listen") {
		cfg.Schedule.MetricsListen = scheduleFlags.metricsListen
	}

	logger, err := setupLogging(cfg)
	if err != nil {
		return cli.NewCommandError("schedule", err)
	}
	defer logger.Close()

	collector := metrics.NewCollector(&cfg.Metrics, nil)

	ctx := cli.SetupSignalHandler(context.Background())

	// Each tick reads the global config, so a hot-reload between runs
	// takes effect on the next tick without touching an in-flight run.
	scheduler := sweep.NewScheduler(cfg.Schedule.Cron, func(runCtx context.Context) {
		runner := pipeline.NewRunner(config.GetConfig(), pipeline.Options{
			Log:       logger.Slog(),
			Collector: collector,
		})
		if _, err := runner.Run(runCtx); err != nil {
			logger.Error("scheduled run failed", "error", err)
		}
	})

	if err := scheduler.Start(ctx); err != nil {
		return cli.NewCommandError("schedule", err)
	}
	defer scheduler.Stop()

	if next := scheduler.NextRun(); next != nil {
		logger.Info("daemon started",
			"schedule", cfg.Schedule.Cron,
			"next_run", next.Format(time.RFC3339),
		)
	}

	if watchPath := configWatchPath(); watchPath != "" {
		watcher, err := config.NewWatcher(watchPath, logger.Slog().With("component", "config.watcher"))
		if err != nil {
			logger.Warn("config hot-reload unavailable", "error", err)
		} else {
			go func() {
				if err := watcher.Watch(ctx, func() error {
					return config.ReloadConfig(watchPath)
				}); err != nil {
					logger.Warn("config watcher stopped", "error", err)
				}
			}()
		}
	}

	if listen := cfg.Schedule.MetricsListen; listen != "" {
		go serveMetrics(ctx, listen, collector, logger)
	}

	<-ctx.Done()
	logger.Info("shutdown signal received, waiting for any running job")
	return nil
}

// configWatchPath returns the config file to hot-reload, or empty when
// the daemon is running on built-in defaults with no file to watch.
func configWatchPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.LocateConfigFile()
}

// serveMetrics exposes the collector over HTTP until ctx is cancelled.
func serveMetrics(ctx context.Context, listen string, collector *metrics.Collector, logger *logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{Addr: listen, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "address", fmt.Sprintf("http://%s/metrics", listen))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics endpoint failed", "error", err)
	}
}
