// Package config provides configuration structures and loading for po-fixup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the configuration file looked up in the
// repository work tree. The user-wide file is "." + DefaultConfigFile in $HOME.
const DefaultConfigFile = "po-fixup.yaml"

// FixupConfig holds the complete po-fixup configuration.
type FixupConfig struct {
	// Catalogs processed when no file is given on the command line.
	// Relative paths are resolved against the repository work tree.
	Catalogs []string `yaml:"catalogs"`
	// Preset names an embedded override table applied first.
	Preset string `yaml:"preset"`
	// OverrideFiles are JSON or YAML override tables, applied after the preset.
	// Relative paths are resolved against the directory of the config file.
	OverrideFiles []string `yaml:"override_files"`
	// Overrides are inline corrections, applied last.
	Overrides map[string]string `yaml:"overrides"`
}

// Validate checks the configuration for values that can never work.
func (c *FixupConfig) Validate() error {
	if _, ok := c.Overrides[""]; ok {
		return errors.New("overrides: empty msgid is reserved for the header")
	}
	for i, f := range c.OverrideFiles {
		if f == "" {
			return fmt.Errorf("override_files[%d]: empty path", i)
		}
	}
	for i, f := range c.Catalogs {
		if f == "" {
			return fmt.Errorf("catalogs[%d]: empty path", i)
		}
	}
	return nil
}

// merge overlays other on c: lists and scalars from other replace those of
// c when set, inline overrides are merged key by key.
func (c *FixupConfig) merge(other *FixupConfig) {
	if len(other.Catalogs) > 0 {
		c.Catalogs = other.Catalogs
	}
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	c.OverrideFiles = append(c.OverrideFiles, other.OverrideFiles...)
	if len(other.Overrides) > 0 && c.Overrides == nil {
		c.Overrides = make(map[string]string, len(other.Overrides))
	}
	for k, v := range other.Overrides {
		c.Overrides[k] = v
	}
}

// OverrideTable builds the effective override table: the preset first, then
// every override file in order, then the inline overrides.
func (c *FixupConfig) OverrideTable() (OverrideTable, error) {
	var tables []OverrideTable
	if c.Preset != "" {
		t, err := LoadPreset(c.Preset)
		if err != nil {
			return OverrideTable{}, err
		}
		log.Debugf("loaded %d overrides from preset %s", t.Len(), c.Preset)
		tables = append(tables, t)
	}
	for _, f := range c.OverrideFiles {
		t, err := LoadOverrideFile(f)
		if err != nil {
			return OverrideTable{}, err
		}
		log.Debugf("loaded %d overrides from %s", t.Len(), f)
		tables = append(tables, t)
	}
	tables = append(tables, NewOverrideTable(c.Overrides))
	return MergeOverrideTables(tables...), nil
}

// loadConfigFromFile reads and validates one config file. Relative override
// files are made relative to the directory holding the config file.
func loadConfigFromFile(path string) (*FixupConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg FixupConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fail to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, f := range cfg.OverrideFiles {
		if !filepath.IsAbs(f) {
			cfg.OverrideFiles[i] = filepath.Join(dir, f)
		}
	}
	return &cfg, nil
}

// LoadFixupConfig loads the configuration.
//
// If explicitPath is set, only that file is read and it must exist.
// Otherwise "$HOME/.po-fixup.yaml" and "<workDir>/po-fixup.yaml" are read
// in that order, each overlaying the previous; missing files are skipped.
func LoadFixupConfig(explicitPath, workDir string) (*FixupConfig, error) {
	if explicitPath != "" {
		cfg, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("fail to load config: %w", err)
		}
		log.Debugf("loaded config from %s", explicitPath)
		return cfg, nil
	}

	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+DefaultConfigFile))
	}
	if workDir != "" {
		candidates = append(candidates, filepath.Join(workDir, DefaultConfigFile))
	}

	cfg := &FixupConfig{}
	for _, path := range candidates {
		one, err := loadConfigFromFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("fail to load config: %w", err)
		}
		log.Debugf("loaded config from %s", path)
		cfg.merge(one)
	}
	return cfg, nil
}
