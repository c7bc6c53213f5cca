package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the config directories.
const FileName = "chase.yaml"

// LoadChase loads the chase configuration.
// Search order: customPath -> ~/.chase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the
// implicit locations are skipped when missing or broken. The result is
// validated before it is returned.
func LoadChase(customPath string) (ChaseConfig, error) {
	cfg, _, err := LoadChaseWithSource(customPath)
	return cfg, err
}

// LoadChaseWithSource is LoadChase that also reports where the config came
// from: a file path or "embedded".
func LoadChaseWithSource(customPath string) (ChaseConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil {
			return cfg, path, validated(cfg, path)
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultChaseYAML)
	if err != nil {
		return DefaultChaseConfig(), "embedded", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", validated(cfg, "embedded")
}

// Marshal renders a config as YAML.
func Marshal(cfg ChaseConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func readFile(path string) (ChaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChaseConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals YAML over the default config. A YAML adversary list
// replaces the default list rather than merging with it.
func decode(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validated(cfg ChaseConfig, source string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", source, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chase", "configs", filename)
}
