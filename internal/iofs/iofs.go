// Package iofs prepares the smpsh directories and the default config
// file in the user's home.
package iofs

import (
	"fmt"
	"os"

	"github.com/wgskit/smpsh/pkg/config"
	"gopkg.in/yaml.v3"
)

// configBanner heads the generated config.yaml.
const configBanner = `# smpsh configuration file.
# This file was auto-generated. Edit as needed.
#
# Configuration precedence (highest to lowest):
#   1. CLI flags
#   2. Environment variables (SMPSH_*)
#   3. This config file
#   4. Built-in defaults
#
# For all environment variables, see: go doc github.com/wgskit/smpsh/pkg/config

`

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile generates the default config.yaml on the first
// run. An existing config file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	body, err := DefaultConfigYAML()
	if err != nil {
		return CopyFileError(configPath, err)
	}

	if err := os.WriteFile(configPath, body, 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// DefaultConfigYAML renders the persistent fields of the default
// configuration as a commented YAML document. Runtime-only fields
// (home dir, per-invocation run settings) are left out, matching
// what viper reads back.
func DefaultConfigYAML() ([]byte, error) {
	cfg := config.New()
	persistent := struct {
		Columns config.ColumnsConfig `yaml:"columns"`
		Log     config.LogConfig     `yaml:"log"`
	}{
		Columns: cfg.Columns,
		Log:     cfg.Log,
	}

	body, err := yaml.Marshal(persistent)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal default config: %w", err)
	}
	return append([]byte(configBanner), body...), nil
}
