package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"wargame/meta"
)

// Load sets defaults and reads the optional config file from configDir.
// A missing file is fine; everything then runs on defaults (command line
// flags may still override individual values).
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("game.dim", meta.BOARD_DIM)
	viper.SetDefault("game.maxTurns", meta.MAX_TURNS)

	viper.SetDefault("trace.enabled", true)
	viper.SetDefault("trace.dir", ".")

	viper.SetDefault("broker.url", "")
	viper.SetDefault("broker.listen", meta.BROKER_ADDR)
	viper.SetDefault("broker.pollMs", meta.BROKER_POLL_MS)

	viper.SetConfigName("wargame.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set overrides a config value, used by command line flags.
func Set(key string, value any) {
	viper.Set(key, value)
}
