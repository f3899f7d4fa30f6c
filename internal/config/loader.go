package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "spacefight.yaml"

// LoadSpacefight loads match rules.
// Search order: customPath -> ~/.spacefight/configs/spacefight.yaml ->
// ./configs/spacefight.yaml -> embedded default.
// Files only need the keys they change; everything else keeps its default.
func LoadSpacefight(customPath string) (SpacefightConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpacefightConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SpacefightConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken user or local files fall through to the next candidate
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultSpacefightYAML); err == nil {
		return cfg, nil
	}
	return DefaultSpacefightConfig(), nil
}

// Parse decodes YAML rules over the built-in defaults and validates them.
func Parse(data []byte) (SpacefightConfig, error) {
	cfg := DefaultSpacefightConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpacefightConfig{}, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SpacefightConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacefight", "configs", filename)
}
