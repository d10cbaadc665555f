package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the driver configuration, read from a YAML file.
//
//	prompt: "lox> "
//	history_file: ~/.golox_history
//	echo: false
type Config struct {
	// Prompt is the REPL prompt.
	Prompt string `yaml:"prompt"`
	// HistoryFile keeps REPL history between sessions. Empty disables it.
	HistoryFile string `yaml:"history_file"`
	// Echo prints the value of a trailing expression statement in the REPL.
	Echo bool `yaml:"echo"`
}

func DefaultConfig() Config {
	return Config{Prompt: "> ", Echo: true}
}

// LoadConfig reads the config at path on top of DefaultConfig.
// An empty path returns the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	if err = decodeConfig(file, &config); err != nil {
		return config, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return config, nil
}

func decodeConfig(r io.Reader, config *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(config)
	if errors.Is(err, io.EOF) {
		// empty document
		return nil
	}
	return err
}
