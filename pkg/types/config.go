package types

import (
	"errors"
	"strings"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Root     string `json:"root" yaml:"root"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Default configuration values.
const (
	DefaultRoot     = "animals"
	DefaultLogLevel = "warn"
)

// Config validation errors.
var (
	ErrRootEmpty       = errors.New("collection root must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with the default root and log level.
func DefaultConfig() Config {
	return Config{Root: DefaultRoot, LogLevel: DefaultLogLevel}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Log levels are matched case-insensitively.
func (c Config) Validate() error {
	if c.Root == "" {
		return ErrRootEmpty
	}
	if !knownLogLevels[strings.ToLower(c.LogLevel)] {
		return ErrLogLevelUnknown
	}
	return nil
}
