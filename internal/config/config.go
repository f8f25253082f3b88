package config

import (
	"github.com/phrazzld/kdc-shelver/internal/domain"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Quiz QuizConfig `mapstructure:"quiz"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// QuizConfig contains the quiz generator settings.
type QuizConfig struct {
	// Seed makes quiz generation reproducible. Zero means a random seed.
	Seed uint64 `mapstructure:"seed"`

	// Templates replaces the built-in quiz sets when non-empty.
	Templates [][]domain.CallNumber `mapstructure:"templates" validate:"omitempty,dive,min=2"`
}
