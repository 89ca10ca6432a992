package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.DocumentClass != "" {
		t.Errorf("Output.DocumentClass = %q, want empty", cfg.Output.DocumentClass)
	}
	if cfg.Directives.UnknownPolicy != "" {
		t.Errorf("Directives.UnknownPolicy = %q, want empty", cfg.Directives.UnknownPolicy)
	}
	if cfg.Inline.FixCaseLatch {
		t.Error("Inline.FixCaseLatch = true, want false")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, `output:
  documentClass: "report"
  preamble:
    - '\usepackage[T1]{fontenc}'
directives:
  unknownPolicy: "drop"
inline:
  fixCaseLatch: true
  flags:
    UNDERLINE: "|"
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.DocumentClass != "report" {
			t.Errorf("DocumentClass = %q, want %q", cfg.Output.DocumentClass, "report")
		}
		if len(cfg.Output.Preamble) != 1 {
			t.Errorf("Preamble = %v, want one line", cfg.Output.Preamble)
		}
		if cfg.Directives.UnknownPolicy != PolicyDrop {
			t.Errorf("UnknownPolicy = %q, want %q", cfg.Directives.UnknownPolicy, PolicyDrop)
		}
		if !cfg.Inline.FixCaseLatch {
			t.Error("FixCaseLatch = false, want true")
		}
		if cfg.Inline.Flags["UNDERLINE"] != "|" {
			t.Errorf("Flags[UNDERLINE] = %q, want %q", cfg.Inline.Flags["UNDERLINE"], "|")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, "bogus: true\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("invalid document class", func(t *testing.T) {
		cfg := &Config{}
		cfg.Output.DocumentClass = "bad{class}"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("invalid policy", func(t *testing.T) {
		cfg := &Config{}
		cfg.Directives.UnknownPolicy = "explode"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("multi-character flag", func(t *testing.T) {
		cfg := &Config{}
		cfg.Inline.Flags = map[string]string{"ACCEPT": "ab"}
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{}
		cfg.Output.DocumentClass = "scrartcl"
		cfg.Directives.UnknownPolicy = PolicyMark
		cfg.Inline.Flags = map[string]string{"BOLD": "*"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}
