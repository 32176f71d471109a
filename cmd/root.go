package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/krau/tgxfer/cmd/upload"
	"github.com/krau/tgxfer/common/utils/cache"
	"github.com/krau/tgxfer/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tgxfer",
	Short: "Telegram file transfer bot",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(config.GetConfigFile(cmd)); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c := config.C().Cache
		if err := cache.Init(c.NumCounters, c.MaxCost, time.Duration(c.TTL)*time.Second); err != nil {
			return fmt.Errorf("failed to init cache: %w", err)
		}
		cmd.SetContext(log.WithContext(cmd.Context(), newLogger(config.C().Log.Level)))
		return nil
	},
	RunE: Run,
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warnf("Unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func Execute(ctx context.Context) {
	config.RegisterFlags(rootCmd)
	upload.Register(rootCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
