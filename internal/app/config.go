package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RecipePath string // hcl recipe file or directory
	OutputDir  string // empty means render to stdout

	LogFormat   string
	LogLevel    string
	WorkerCount int
	Summary     bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RecipePath == "" {
		return nil, errors.New("RecipePath is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
