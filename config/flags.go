package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "config file path")
	flags.IntP("workers", "w", 0, "number of concurrent transfers")
	flags.Int("threads", 0, "number of threads per transfer")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	flags.String("telegram-token", "", "telegram bot token")
	flags.Int("telegram-app-id", 0, "telegram app id")
	flags.String("telegram-app-hash", "", "telegram app hash")
	flags.Int("telegram-rpc-retry", 0, "telegram rpc retry times")
	flags.Bool("telegram-proxy-enable", false, "enable telegram proxy")
	flags.String("telegram-proxy-url", "", "telegram proxy URL (http, https, socks5, socks5h)")
	flags.String("telegram-session", "", "session database path")

	flags.String("download-dir", "", "base directory for downloads")
	flags.Int64("interval", 0, "seconds between progress updates")
	flags.Int64("part-size", 0, "part size in bytes for split uploads")

	bindFlags(cmd)
}

func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	viper.BindPFlag("workers", flags.Lookup("workers"))
	viper.BindPFlag("threads", flags.Lookup("threads"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))

	// Telegram
	viper.BindPFlag("telegram.token", flags.Lookup("telegram-token"))
	viper.BindPFlag("telegram.app_id", flags.Lookup("telegram-app-id"))
	viper.BindPFlag("telegram.app_hash", flags.Lookup("telegram-app-hash"))
	viper.BindPFlag("telegram.rpc_retry", flags.Lookup("telegram-rpc-retry"))
	viper.BindPFlag("telegram.proxy.enable", flags.Lookup("telegram-proxy-enable"))
	viper.BindPFlag("telegram.proxy.url", flags.Lookup("telegram-proxy-url"))
	viper.BindPFlag("telegram.session", flags.Lookup("telegram-session"))

	// transfer
	viper.BindPFlag("transfer.download_dir", flags.Lookup("download-dir"))
	viper.BindPFlag("transfer.interval", flags.Lookup("interval"))
	viper.BindPFlag("transfer.part_size", flags.Lookup("part-size"))
}

func GetConfigFile(cmd *cobra.Command) string {
	configFile, _ := cmd.Flags().GetString("config")
	return configFile
}
