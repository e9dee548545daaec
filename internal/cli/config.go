package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultServer = "http://localhost:3000"
	envServer     = "RECIPECTL_SERVER"
)

// Config is the recipectl configuration file.
type Config struct {
	Server string `yaml:"server"`
	Prefs  string `yaml:"prefs"`
}

// DefaultConfigPath returns ~/.config/recipectl/config.yaml, or "" when the
// user config directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "recipectl", "config.yaml")
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "recipectl-prefs.json"
	}
	return filepath.Join(dir, "recipectl", "prefs.json")
}

// LoadConfig reads path. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Server: defaultServer, Prefs: defaultPrefsPath()}
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if s := strings.TrimSpace(file.Server); s != "" {
		cfg.Server = s
	}
	if p := strings.TrimSpace(file.Prefs); p != "" {
		cfg.Prefs = expandHome(p)
	}
	return cfg, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
