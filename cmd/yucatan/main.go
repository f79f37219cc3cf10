// Command yucatan is the terminal client: the interactive TUI plus helpers for
// the local collections and the training dataset.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/collections"
	"github.com/yucatanweather/app/internal/domain/session"
	"github.com/yucatanweather/app/internal/infra/config"
	"github.com/yucatanweather/app/internal/infra/weatherapi"
	"github.com/yucatanweather/app/internal/interface/tui"
	"github.com/yucatanweather/app/pkg/logger"
)

var (
	configPath  string
	storeDriver string
	cfg         *config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "yucatan",
		Short: "Weather predictions for Yucatán destinations",
		Long: `yucatan: pick a destination, a date and the climate you hope for,
then ask the prediction service what to expect.

Usage modes:
  yucatan              Start the interactive client
  yucatan <command>    Inspect saved searches or build the training dataset`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			if storeDriver != "" {
				loaded.Client.Store.Driver = storeDriver
				if err := loaded.Validate(); err != nil {
					return err
				}
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "Path to the YAML config file")
	root.PersistentFlags().StringVar(&storeDriver, "store", "", "Override the collections store (sqlite|memory|valkey)")

	root.AddCommand(historyCmd(), favoritesCmd(), clearCmd(), datasetCmd())
	return root
}

func runClient(ctx context.Context) error {
	log, closeLog, err := openLog(cfg.Client.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(ctx, cfg.Client.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	category, err := catalog.ParseCategory(cfg.Client.DefaultCategory)
	if err != nil {
		return err
	}
	sess, err := session.New(ctx, session.Deps{
		Collections: collections.NewService(store, log),
		Weather:     weatherapi.NewClient(cfg.Client.APIBaseURL, cfg.Client.Timeout),
		Catalog:     catalog.Default(),
		Logger:      log,
	}, session.Options{DefaultCategory: category})
	if err != nil {
		return err
	}

	log.Info("client starting", "api", cfg.Client.APIBaseURL, "store", cfg.Client.Store.Driver)
	return tui.Run(ctx, sess, log)
}

// openLog appends JSON log lines to path so the terminal stays clean.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return logger.Discard(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger.NewWithWriter(f, "yucatan-client"), func() { _ = f.Close() }, nil
}
