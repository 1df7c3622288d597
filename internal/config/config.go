// Package config handles loading and saving of the token file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyToken is returned by Load when the file carries no token.
var ErrEmptyToken = errors.New("token file contains no token")

// Config represents the token file. Besides the session token it may carry
// defaults for command options.
type Config struct {
	Token      string `yaml:"token" json:"token"`
	Serial     string `yaml:"sn,omitempty" json:"sn,omitempty"`
	AccountURL string `yaml:"account_url,omitempty" json:"account_url,omitempty"`
	APIURL     string `yaml:"api_url,omitempty" json:"api_url,omitempty"`
	TimeFormat string `yaml:"time_format,omitempty" json:"time_format,omitempty"`
}

// Load reads and parses the token file from the specified path.
// Both YAML and JSON ({"token": "..."}) files are accepted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyToken)
	}

	return &cfg, nil
}

// Save writes the config as indented JSON, overwriting an existing file.
// The file is only readable by the owner since it holds a session token.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0600)
}
