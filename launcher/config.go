package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "BASSLINE_"
	configFileName = "launcher.yaml"
)

// Config holds the launcher configuration. Program paths are resolved
// here, once, at startup, and passed explicitly to every invocation so
// dispatch never depends on ambient process state.
type Config struct {
	// GUIPath is the GUI program binary launched by menu choice 1
	GUIPath string `koanf:"gui_path"`

	// CLIPath is the command-line program binary launched by menu choice 2
	CLIPath string `koanf:"cli_path"`

	// OutputDir is where the programs save generated MIDI files.
	// Empty means their built-in Desktop resolution.
	OutputDir string `koanf:"output_dir"`

	// LogLevel sets launcher log verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`
}

// defaults returns the configuration loaded before any file or
// environment overrides. Program binaries are expected next to the
// launcher by default.
func defaults() map[string]any {
	return map[string]any{
		"gui_path":   "./bassline-gui" + exeSuffix(),
		"cli_path":   "./bassline-cli" + exeSuffix(),
		"output_dir": "",
		"log_level":  "info",
	}
}

func exeSuffix() string {
	if os.PathSeparator == '\\' {
		return ".exe"
	}
	return ""
}

// LoadConfig reads configuration in three layers (highest precedence
// last): built-in defaults, an optional launcher.yaml in dir, and
// BASSLINE_* environment variables.
func LoadConfig(dir string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.GUIPath == "" {
		return fmt.Errorf("gui_path must not be empty")
	}
	if c.CLIPath == "" {
		return fmt.Errorf("cli_path must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}
