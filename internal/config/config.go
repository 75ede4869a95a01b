package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Keypad  KeypadConfig
	Display DisplayConfig
	Log     LogConfig
	Keys    map[string][]string
}

// KeypadConfig holds entry settings.
type KeypadConfig struct {
	DecimalSeparator string `mapstructure:"decimal_separator"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	ErrorMarker string `mapstructure:"error_marker"`
	Width       int
}

// LogConfig holds log settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// Separator returns the configured decimal separator as a rune.
func (c Config) Separator() rune {
	if c.Keypad.DecimalSeparator == "," {
		return ','
	}
	return '.'
}

// Load reads configuration from file and env. Env var overrides use prefix KEYCALC_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KEYCALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "keycalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KEYCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit path or a broken file is not
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("keypad.decimal_separator", ".")
	v.SetDefault("display.error_marker", "Error")
	v.SetDefault("display.width", 24)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the calculator cannot honour.
func (c Config) Validate() error {
	switch c.Keypad.DecimalSeparator {
	case ".", ",":
	default:
		return fmt.Errorf("keypad.decimal_separator: want \".\" or \",\", got %q", c.Keypad.DecimalSeparator)
	}
	if strings.TrimSpace(c.Display.ErrorMarker) == "" {
		return fmt.Errorf("display.error_marker: must not be empty")
	}
	if c.Display.Width < 8 || c.Display.Width > 80 {
		return fmt.Errorf("display.width: want 8..80, got %d", c.Display.Width)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}
