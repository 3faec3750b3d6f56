package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Pointer fields distinguish "unset" from zero so
// flags and library defaults can fill the gaps.
type Config struct {
	Version    int        `yaml:"version"`
	Generation Generation `yaml:"generation"`
	Output     Output     `yaml:"output"`
}

type Generation struct {
	Seed                 *int64   `yaml:"seed"`
	ArrayCount           *int     `yaml:"arrayCount"`
	Locale               string   `yaml:"locale"`
	FillProperties       *bool    `yaml:"fillProperties"`
	OptionalsProbability *float64 `yaml:"optionalsProbability"`
	MaxDepth             *int     `yaml:"maxDepth"`
	Count                *int     `yaml:"count"`
	SkipValidation       bool     `yaml:"skipValidation"`
}

type Output struct {
	GoPackage string `yaml:"goPackage"`
	GoVar     string `yaml:"goVar"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}
	return Parse(fileData, configPath)
}

// Parse decodes config bytes; name only labels errors.
func Parse(data []byte, name string) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, name, err)
	}
	if config.Version > 1 {
		return nil, fmt.Errorf(`config file "%s": unsupported version %d`, name, config.Version)
	}
	return &config, nil
}
