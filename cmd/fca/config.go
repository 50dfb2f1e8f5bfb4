package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/gofca/pkg/errors"
)

// Config is the optional YAML file passed with --config. Command line flags
// take precedence over values set here.
type Config struct {
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
	Analysis  AnalysisConfig `yaml:"analysis"`
}

// AnalysisConfig holds defaults for the analyze command.
type AnalysisConfig struct {
	Concurrent        bool   `yaml:"concurrent"`
	Workers           int    `yaml:"workers"`
	MaxObjects        int    `yaml:"max_objects"`
	ParallelThreshold int    `yaml:"parallel_threshold"`
	Plots             string `yaml:"plots"`
}

func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return &cfg, nil
}

// Helpers that copy a config value into a flag variable unless the flag was
// given on the command line.

func overrideString(cmd *cobra.Command, name string, dst *string, v string) {
	if v != "" && !cmd.Flags().Changed(name) {
		*dst = v
	}
}

func overrideInt(cmd *cobra.Command, name string, dst *int, v int) {
	if v != 0 && !cmd.Flags().Changed(name) {
		*dst = v
	}
}

func overrideBool(cmd *cobra.Command, name string, dst *bool, v bool) {
	if v && !cmd.Flags().Changed(name) {
		*dst = v
	}
}
