// Package config loads and validates the program configuration from a
// viper-backed source.
package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// SeriesDir is the default parent directory for series paths.
	SeriesDir string   `json:"seriesDir" yaml:"seriesDir" mapstructure:"seriesDir" validate:"required"`
	Player    Player   `json:"player" yaml:"player" mapstructure:"player"`
	Remote    Remote   `json:"remote" yaml:"remote" mapstructure:"remote"`
	Storage   Storage  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Tracking  Tracking `json:"tracking" yaml:"tracking" mapstructure:"tracking"`
}

type Player struct {
	Command string   `json:"command" yaml:"command" mapstructure:"command" validate:"required"`
	Args    []string `json:"args" yaml:"args" mapstructure:"args"`
}

type Remote struct {
	// Service selects the list service implementation.
	Service string `json:"service" yaml:"service" mapstructure:"service" validate:"oneof=anilist offline"`
	// Token is the AniList access token. Without one the client still
	// serves searches; list reads and writes fail until a token is set.
	Token string `json:"token" yaml:"token" mapstructure:"token"`
	// URL overrides the AniList endpoint, mainly for tests.
	URL string `json:"url" yaml:"url" mapstructure:"url"`
}

// Storage configuration is for the sqlite cache only currently.
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

type Tracking struct {
	// DroppedResume controls progress when advancing a dropped series.
	DroppedResume string `json:"droppedResume" yaml:"droppedResume" mapstructure:"droppedResume" validate:"oneof=next-episode restart"`
	// ResetDatesOnRewatch restarts the watch dates when a rewatch begins.
	ResetDatesOnRewatch bool `json:"resetDatesOnRewatch" yaml:"resetDatesOnRewatch" mapstructure:"resetDatesOnRewatch"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads and validates a configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	if err := validator.New().Struct(c); err != nil {
		return Config{}, err
	}

	return c, nil
}
