package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"sst-launcher/internal/common"
)

// LoadConfig reads a YAML or TOML file on top of the defaults. An empty path
// yields the defaults unchanged. A flags section replaces the whole default
// table rather than merging into it.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", configPath, err)
	}

	config.Flags = nil

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ExtTOML:
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %s: %w", configPath, err)
		}
	case ExtYAML, ExtYML, "":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %s: %w", configPath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q (use %s or %s)", filepath.Ext(configPath), ExtYAML, ExtTOML)
	}

	if config.Flags == nil {
		config.Flags = DefaultConfig().Flags
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	common.CLILogger.Debug("Loaded configuration from %s", configPath)
	return config, nil
}

// SaveConfig writes config as TOML when the path ends in .toml and as YAML
// otherwise.
func SaveConfig(config *Config, configPath string) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("cannot save invalid configuration: %w", err)
	}

	var data []byte
	if strings.ToLower(filepath.Ext(configPath)) == ExtTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return fmt.Errorf("failed to marshal configuration to TOML: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
		}
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", configPath, err)
	}

	return nil
}
