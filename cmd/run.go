package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/krau/tgxfer/client/bot"
	"github.com/spf13/cobra"
)

func Run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)
	logger.Info("Starting tgxfer...")
	if _, err := bot.Init(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	logger.Info("Exiting...")
	defer logger.Info("Bye!")
	return nil
}
