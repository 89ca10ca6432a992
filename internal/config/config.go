// Package config loads the optional runoff2tex configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-runoff2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Unknown-directive policy values accepted in config files.
const (
	PolicyMark = "mark"
	PolicyDrop = "drop"
)

// Config holds all configuration for a translation run.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Directives DirectivesConfig `yaml:"directives"`
	Inline     InlineConfig     `yaml:"inline"`
}

// OutputConfig shapes the generated LaTeX preamble.
type OutputConfig struct {
	DocumentClass string   `yaml:"documentClass"` // default "article"
	Preamble      []string `yaml:"preamble"`      // extra lines before \begin{document}
}

// DirectivesConfig controls directive handling.
type DirectivesConfig struct {
	UnknownPolicy string `yaml:"unknownPolicy"` // "mark" (default) or "drop"
}

// InlineConfig controls the inline translator.
type InlineConfig struct {
	FixCaseLatch bool              `yaml:"fixCaseLatch"` // fix the legacy latch leak
	Flags        map[string]string `yaml:"flags"`        // role -> single flag character
}

// Validate checks values that would be interpolated into output or that
// have a closed set of accepted spellings.
func (c *Config) Validate() error {
	if class := c.Output.DocumentClass; class != "" {
		for _, r := range class {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			default:
				return fmt.Errorf("output.documentClass: invalid value %q", class)
			}
		}
	}
	switch c.Directives.UnknownPolicy {
	case "", PolicyMark, PolicyDrop:
	default:
		return fmt.Errorf("directives.unknownPolicy: invalid value %q (must be %s or %s)",
			c.Directives.UnknownPolicy, PolicyMark, PolicyDrop)
	}
	for role, ch := range c.Inline.Flags {
		if utf8.RuneCountInString(ch) != 1 {
			return fmt.Errorf("inline.flags.%s: must be a single character, got %q", role, ch)
		}
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-runoff2tex/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-runoff2tex", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
