package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Workers int `toml:"workers" mapstructure:"workers"`
	Threads int `toml:"threads" mapstructure:"threads" json:"threads"`

	Users []userConfig `toml:"users" mapstructure:"users" json:"users"`

	Log      logConfig      `toml:"log" mapstructure:"log"`
	Cache    cacheConfig    `toml:"cache" mapstructure:"cache"`
	Telegram telegramConfig `toml:"telegram" mapstructure:"telegram"`
	Transfer transferConfig `toml:"transfer" mapstructure:"transfer"`
}

type logConfig struct {
	Level string `toml:"level" mapstructure:"level"`
}

type transferConfig struct {
	DownloadDir string `toml:"download_dir" mapstructure:"download_dir" json:"download_dir"`
	// seconds between two progress edits
	Interval int64 `toml:"interval" mapstructure:"interval"`
	// bytes per part of a split upload
	PartSize int64 `toml:"part_size" mapstructure:"part_size" json:"part_size"`
}

func (t transferConfig) IntervalDuration() time.Duration {
	return time.Duration(t.Interval) * time.Second
}

var cfg = &Config{}

func C() Config {
	return *cfg
}

// Init loads the config from configFile, or from config.toml in the working
// directory, writing a default one when none exists.
func Init(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/tgxfer/")
	}
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("TGXFER")
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.SetDefault("workers", 3)
	viper.SetDefault("threads", 4)

	viper.SetDefault("log.level", "INFO")

	viper.SetDefault("cache.ttl", 86400)
	viper.SetDefault("cache.num_counters", 1e5)
	viper.SetDefault("cache.max_cost", 1e6)

	viper.SetDefault("telegram.app_id", 1025907)
	viper.SetDefault("telegram.app_hash", "452b0359b988148995f22ff0f4229750")
	viper.SetDefault("telegram.flood_retry", 5)
	viper.SetDefault("telegram.rpc_retry", 5)
	viper.SetDefault("telegram.session", "data/session.db")

	viper.SetDefault("transfer.download_dir", "downloads")
	viper.SetDefault("transfer.interval", 5)
	viper.SetDefault("transfer.part_size", 9*1024*1024*1024)

	if configFile == "" {
		if err := viper.SafeWriteConfigAs("config.toml"); err != nil {
			if _, ok := err.(viper.ConfigFileAlreadyExistsError); !ok {
				return fmt.Errorf("error saving default config: %w", err)
			}
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return fmt.Errorf("error unmarshalling config file: %w", err)
	}
	if err := loaded.validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func (c *Config) validate() error {
	if c.Workers < 1 || c.Threads < 1 {
		return fmt.Errorf("workers and threads must be greater than 0, got workers=%d, threads=%d", c.Workers, c.Threads)
	}
	if c.Transfer.Interval < 1 {
		return fmt.Errorf("transfer.interval must be at least 1 second, got %d", c.Transfer.Interval)
	}
	if c.Transfer.PartSize < 1 {
		return fmt.Errorf("transfer.part_size must be positive, got %d", c.Transfer.PartSize)
	}
	return nil
}

func Set(key string, value any) {
	viper.Set(key, value)
}
