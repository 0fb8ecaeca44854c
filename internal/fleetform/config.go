// Package fleetform wires the sample-renderer CLI: configuration and
// logging.
package fleetform

import "github.com/kelseyhightower/envconfig"

// Config holds runtime configuration for the CLI.
type Config struct {
	OutputDir string `envconfig:"FLEETFORM_OUTPUT_DIR" default:"./out"`
	LogFormat string `envconfig:"FLEETFORM_LOG_FORMAT" default:"pretty"`
	Watermark bool   `envconfig:"FLEETFORM_WATERMARK" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
