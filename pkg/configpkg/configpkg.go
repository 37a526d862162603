// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	Environment       string        `mapstructure:"GO_ENV"`
	TransferThreshold int64         `mapstructure:"TRANSFER_THRESHOLD"`
	BalanceWindow     time.Duration `mapstructure:"BALANCE_WINDOW"`
	LockBackend       string        `mapstructure:"LOCK_BACKEND"`
	LockLease         time.Duration `mapstructure:"LOCK_LEASE"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("TRANSFER_THRESHOLD", 1_000_000)
	viper.SetDefault("BALANCE_WINDOW", "240h")
	viper.SetDefault("LOCK_BACKEND", "memory")
	viper.SetDefault("LOCK_LEASE", "5s")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
