package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type validator interface {
	validate() error
}

// load reads a game's YAML config.
// Search order: customPath -> ~/.mindflex/configs/<name>.yaml ->
// ./configs/<name>.yaml -> embedded default.
// Only a custom path reports read or parse errors; the other locations are
// skipped when missing or broken.
func load[T validator](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg, err := parse[T](customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	file := name + ".yaml"
	for _, path := range []string{userConfigPath(file), filepath.Join("configs", file)} {
		if path == "" {
			continue
		}
		if cfg, err := parse[T](path); err == nil && cfg.validate() == nil {
			return cfg, nil
		}
	}

	var cfg T
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.validate() != nil {
		return fallback(), nil
	}
	return cfg, nil
}

func parse[T any](path string) (T, error) {
	var cfg T
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mindflex", "configs", filename)
}

// LoadSchulte loads the Schulte table configuration.
func LoadSchulte(customPath string) (SchulteConfig, error) {
	return load("schulte", customPath, defaultSchulteYAML, DefaultSchulteConfig)
}

// LoadStroop loads the Stroop test configuration.
func LoadStroop(customPath string) (StroopConfig, error) {
	return load("stroop", customPath, defaultStroopYAML, DefaultStroopConfig)
}

// LoadHue loads the I Love Hue configuration.
func LoadHue(customPath string) (HueConfig, error) {
	return load("hue", customPath, defaultHueYAML, DefaultHueConfig)
}

// LoadSymbolic loads the Symbolic Savings configuration.
func LoadSymbolic(customPath string) (SymbolicConfig, error) {
	return load("symbolic", customPath, defaultSymbolicYAML, DefaultSymbolicConfig)
}

// LoadQueens loads the Queens configuration.
func LoadQueens(customPath string) (QueensConfig, error) {
	return load("queens", customPath, defaultQueensYAML, DefaultQueensConfig)
}

// LoadImpulse loads the Impulse Control configuration.
func LoadImpulse(customPath string) (ImpulseConfig, error) {
	return load("impulse", customPath, defaultImpulseYAML, DefaultImpulseConfig)
}

// LoadSequence loads the Sequence Memory configuration.
func LoadSequence(customPath string) (SequenceConfig, error) {
	return load("sequence", customPath, defaultSequenceYAML, DefaultSequenceConfig)
}

// LoadToggle loads the Color Toggle configuration.
func LoadToggle(customPath string) (ToggleConfig, error) {
	return load("toggle", customPath, defaultToggleYAML, DefaultToggleConfig)
}

// LoadCardFlip loads the Card Flip configuration.
func LoadCardFlip(customPath string) (CardFlipConfig, error) {
	return load("cardflip", customPath, defaultCardFlipYAML, DefaultCardFlipConfig)
}
