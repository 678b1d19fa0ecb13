package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// RigPath is a single .hcl rig file or a directory of them.
	RigPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RigPath == "" {
		return nil, errors.New("RigPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
