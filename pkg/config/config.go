// Package config loads settings for fdconv and the viewer from defaults,
// an optional config file and FDPERIODIC_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, with dots in keys
// replaced by underscores (FDPERIODIC_STUDY_MIN_POINTS).
const EnvPrefix = "FDPERIODIC"

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Study  StudyConfig  `mapstructure:"study"`
	Viewer ViewerConfig `mapstructure:"viewer"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// StudyConfig controls the resolution sweep of a convergence study.
type StudyConfig struct {
	MinPoints int    `mapstructure:"min_points" validate:"gte=3"`
	MaxPoints int    `mapstructure:"max_points" validate:"gtefield=MinPoints"`
	Count     int    `mapstructure:"count" validate:"gte=1"`
	Format    string `mapstructure:"format" validate:"required,oneof=text csv json"`
}

// ViewerConfig controls the interactive viewer.
type ViewerConfig struct {
	Points int     `mapstructure:"points" validate:"gte=3,lte=1024"`
	Scale  int     `mapstructure:"scale" validate:"gte=1,lte=16"`
	Speed  float64 `mapstructure:"speed" validate:"gte=0"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("study.min_points", 10)
	v.SetDefault("study.max_points", 1000)
	v.SetDefault("study.count", 10)
	v.SetDefault("study.format", "text")

	v.SetDefault("viewer.points", 128)
	v.SetDefault("viewer.scale", 3)
	v.SetDefault("viewer.speed", 0.1)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if not empty) into v, then unmarshals and validates the
// result. Environment variables and bound flags take precedence over the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
