package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRabbit loads the game configuration.
// Search order: customPath -> ~/.rabbit/configs/rabbit.yaml -> ./configs/rabbit.yaml -> embedded default.
// Files are merged over the built-in defaults, so a file only needs the keys it changes.
func LoadRabbit(customPath string) (RabbitConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RabbitConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return RabbitConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RabbitConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files on these implicit paths are skipped rather than fatal.
	for _, path := range []string{userConfigPath("rabbit.yaml"), filepath.Join("configs", "rabbit.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseOverDefaults(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg RabbitConfig
	if err := yaml.Unmarshal(defaultRabbitYAML, &cfg); err != nil {
		return DefaultRabbitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseOverDefaults unmarshals data on top of the built-in defaults.
func parseOverDefaults(data []byte) (RabbitConfig, error) {
	cfg := DefaultRabbitConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RabbitConfig{}, err
	}
	return cfg, nil
}

// WriteYAML encodes the configuration as YAML.
func (c RabbitConfig) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return enc.Close()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rabbit", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RabbitConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
