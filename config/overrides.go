package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// OverrideTable is an immutable mapping from msgid to a corrected msgstr.
// The zero value is an empty table.
type OverrideTable struct {
	m map[string]string
}

// NewOverrideTable returns a table holding a copy of m.
func NewOverrideTable(m map[string]string) OverrideTable {
	t := OverrideTable{m: make(map[string]string, len(m))}
	for k, v := range m {
		t.m[k] = v
	}
	return t
}

// Lookup returns the corrected msgstr for msgid.
func (t OverrideTable) Lookup(msgid string) (string, bool) {
	v, ok := t.m[msgid]
	return v, ok
}

// Len returns the number of overrides.
func (t OverrideTable) Len() int {
	return len(t.m)
}

// Keys returns the msgids in the table, sorted.
func (t OverrideTable) Keys() []string {
	keys := make([]string, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeOverrideTables combines tables; for a msgid present in several
// tables the last one wins.
func MergeOverrideTables(tables ...OverrideTable) OverrideTable {
	m := make(map[string]string)
	for _, t := range tables {
		for k, v := range t.m {
			m[k] = v
		}
	}
	return OverrideTable{m: m}
}

// LoadOverrideFile reads an override table from a JSON or YAML file.
//
// A JSON file holds an object of msgid to msgstr, either at the top level or
// under an "overrides" member. A YAML file holds a mapping of msgid to msgstr.
func LoadOverrideFile(path string) (OverrideTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OverrideTable{}, fmt.Errorf("fail to read override file: %w", err)
	}

	var m map[string]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		m, err = parseOverrideJSON(data)
	case ".yaml", ".yml":
		m, err = parseOverrideYAML(data)
	default:
		return OverrideTable{}, fmt.Errorf("unknown override file type %q (want .json, .yaml or .yml): %s",
			filepath.Ext(path), path)
	}
	if err != nil {
		return OverrideTable{}, fmt.Errorf("fail to parse override file %s: %w", path, err)
	}
	return NewOverrideTable(m), nil
}

func parseOverrideJSON(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if nested := root.Get("overrides"); nested.IsObject() {
		root = nested
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("expect a JSON object of msgid to msgstr")
	}

	var (
		m      = make(map[string]string)
		badKey string
	)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			badKey = key.String()
			return false
		}
		m[key.String()] = value.String()
		return true
	})
	if badKey != "" {
		return nil, fmt.Errorf("msgstr for %q is not a string", badKey)
	}
	return m, validateOverrides(m)
}

func parseOverrideYAML(data []byte) (map[string]string, error) {
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, validateOverrides(m)
}

func validateOverrides(m map[string]string) error {
	if _, ok := m[""]; ok {
		return fmt.Errorf("empty msgid is reserved for the header and cannot be overridden")
	}
	return nil
}

// PresetNames lists the embedded override presets.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return names
}

// LoadPreset returns the embedded override table called name.
func LoadPreset(name string) (OverrideTable, error) {
	data, err := presetFS.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return OverrideTable{}, fmt.Errorf("unknown preset %q (available: %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	m, err := parseOverrideYAML(data)
	if err != nil {
		return OverrideTable{}, fmt.Errorf("fail to parse preset %s: %w", name, err)
	}
	return NewOverrideTable(m), nil
}
