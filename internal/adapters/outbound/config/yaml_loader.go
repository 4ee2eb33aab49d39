package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spirvkit/spirv-val/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	// PathEnv names a config file to use instead of the default location.
	PathEnv = "SPIRV_VAL_CONFIG"
	// EngineEnv overrides engine.command.
	EngineEnv = "SPIRV_VAL_ENGINE"
)

// YAMLLoader implements domain.ConfigLoader by reading a YAML file.
type YAMLLoader struct {
	getenv func(string) string
}

// New creates a YAMLLoader that reads overrides from the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *YAMLLoader {
	return &YAMLLoader{getenv: getenv}
}

// DefaultPath returns $SPIRV_VAL_CONFIG, or config.yaml under the user
// config directory.
func (l *YAMLLoader) DefaultPath() string {
	if p := l.getenv(PathEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "spirv-val", "config.yaml")
}

// Load reads the config at path. Returns DefaultToolConfig if path is empty
// or the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.ToolConfig, error) {
	cfg := domain.DefaultToolConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return domain.ToolConfig{}, err
		default:
			var fileCfg domain.ToolConfig
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return domain.ToolConfig{}, fmt.Errorf("parsing %s: %w", path, err)
			}
			if err := fileCfg.Validate(); err != nil {
				return domain.ToolConfig{}, fmt.Errorf("invalid %s: %w", path, err)
			}
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	if cmd := l.getenv(EngineEnv); cmd != "" {
		cfg.Engine.Command = cmd
	}
	return cfg, nil
}

// mergeConfig overlays explicit file values on top of defaults.
func mergeConfig(base, override domain.ToolConfig) domain.ToolConfig {
	result := base
	if override.Engine.Command != "" {
		result.Engine.Command = override.Engine.Command
	}
	if len(override.Engine.Args) > 0 {
		result.Engine.Args = override.Engine.Args
	}
	result.LogLevel = override.LogLevel
	return result
}
