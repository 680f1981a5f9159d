package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile_MissingFile(t *testing.T) {
	config, err := loadConfigFromFile(filepath.Join(t.TempDir(), DefaultConfigFile))
	require.Error(t, err)
	assert.Nil(t, config)
}

func TestLoadConfigFromFile_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeFile(t, tmpDir, DefaultConfigFile, `catalogs:
  - languages/arbricks-ar.po
preset: arbricks-ar
override_files:
  - fixes.json
  - /abs/fixes.yaml
overrides:
  "Reset on Success": "إعادة الضبط عند النجاح"
`)

	config, err := loadConfigFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"languages/arbricks-ar.po"}, config.Catalogs)
	assert.Equal(t, "arbricks-ar", config.Preset)
	assert.Equal(t, []string{filepath.Join(tmpDir, "fixes.json"), "/abs/fixes.yaml"}, config.OverrideFiles)
	assert.Equal(t, "إعادة الضبط عند النجاح", config.Overrides["Reset on Success"])
}

func TestLoadConfigFromFile_InvalidYAML(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), DefaultConfigFile, `catalogs: [unclosed
`)
	config, err := loadConfigFromFile(configPath)
	require.Error(t, err)
	assert.Nil(t, config)
}

func TestFixupConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  FixupConfig
		wantErr string
	}{
		{
			name:   "empty config",
			config: FixupConfig{},
		},
		{
			name:    "header override",
			config:  FixupConfig{Overrides: map[string]string{"": "x"}},
			wantErr: "reserved for the header",
		},
		{
			name:    "empty override file",
			config:  FixupConfig{OverrideFiles: []string{""}},
			wantErr: "override_files[0]",
		},
		{
			name:    "empty catalog",
			config:  FixupConfig{Catalogs: []string{"a.po", ""}},
			wantErr: "catalogs[1]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFixupConfig_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeFile(t, tmpDir, "custom.yaml", "catalogs: [a.po]\n")

	config, err := LoadFixupConfig(configPath, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.po"}, config.Catalogs)

	_, err = LoadFixupConfig(filepath.Join(tmpDir, "missing.yaml"), tmpDir)
	require.Error(t, err)
}

func TestLoadFixupConfig_Defaults(t *testing.T) {
	homeDir := t.TempDir()
	workDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	config, err := LoadFixupConfig("", workDir)
	require.NoError(t, err)
	assert.Empty(t, config.Catalogs)
	assert.Empty(t, config.Overrides)

	writeFile(t, homeDir, "."+DefaultConfigFile, `catalogs: [home.po]
preset: arbricks-ar
overrides:
  Hello: home
  World: home
`)
	writeFile(t, workDir, DefaultConfigFile, `catalogs: [languages/arbricks-ar.po]
overrides:
  Hello: repo
`)

	config, err = LoadFixupConfig("", workDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"languages/arbricks-ar.po"}, config.Catalogs)
	assert.Equal(t, "arbricks-ar", config.Preset)
	assert.Equal(t, map[string]string{"Hello": "repo", "World": "home"}, config.Overrides)
}

func TestFixupConfig_OverrideTable(t *testing.T) {
	tmpDir := t.TempDir()
	jsonFile := writeFile(t, tmpDir, "fixes.json",
		`{"403 Forbidden": "from file", "Allowed Domains": "from file"}`)

	config := FixupConfig{
		Preset:        "arbricks-ar",
		OverrideFiles: []string{jsonFile},
		Overrides:     map[string]string{"Allowed Domains": "inline"},
	}
	table, err := config.OverrideTable()
	require.NoError(t, err)

	v, _ := table.Lookup("Block PHP Uploads")
	assert.Equal(t, "منع رفع ملفات PHP", v, "preset applies")
	v, _ = table.Lookup("403 Forbidden")
	assert.Equal(t, "from file", v, "override file wins over preset")
	v, _ = table.Lookup("Allowed Domains")
	assert.Equal(t, "inline", v, "inline overrides win over files")

	config.OverrideFiles = []string{filepath.Join(tmpDir, "missing.json")}
	_, err = config.OverrideTable()
	assert.Error(t, err)

	config.OverrideFiles = nil
	config.Preset = "no-such-preset"
	_, err = config.OverrideTable()
	assert.Error(t, err)
}
