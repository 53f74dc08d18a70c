package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/beatline/parameter"
)

// Load reads configuration from a TOML file and sets default values.
// configDir is the directory containing the config file (beatline.toml).
// A missing file is not an error; defaults carry the demo.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "beatline.log")

	viper.SetDefault("chart.path", "")
	viper.SetDefault("skin.path", "")

	viper.SetDefault("scroll.direction", "down")
	viper.SetDefault("scroll.speed", parameter.DefaultScrollSpeed)
	viper.SetDefault("scroll.unitsPerRow", parameter.DefaultUnitsPerRow)

	viper.SetDefault("field.renderThreshold", 0.0) // 0 derives it from screen geometry
	viper.SetDefault("field.prewarm", parameter.DefaultSpritePrewarm)

	viper.SetDefault("frame.intervalMs", 16)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.sampleRate", parameter.AudioSampleRate)
	viper.SetDefault("audio.volume", 0.8)
	viper.SetDefault("audio.metronome", true)
	viper.SetDefault("audio.clickBeatFreq", parameter.ClickBeatFreq)
	viper.SetDefault("audio.clickBarFreq", parameter.ClickBarFreq)

	viper.SetConfigName("beatline")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("toml")

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

// GetFloat returns a float64 config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
