package logicpaper

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FieldDef binds one data column to a formatting directive.
type FieldDef struct {
	Column    string `yaml:"column"`
	Directive string `yaml:"directive"`

	parsed Directive
}

// FieldMap is the declarative binding between a data source and a set of
// templates: which columns exist, how each one is formatted, and which
// template files consume them. Loaded from a YAML manifest. Directives are
// parsed once at load time, not once per row.
type FieldMap struct {
	Locale    string     `yaml:"locale"`
	Currency  string     `yaml:"currency"`
	Templates []string   `yaml:"templates"`
	Fields    []FieldDef `yaml:"fields"`

	registry *DefaultStrategyRegistry
}

// LoadFieldMap reads a field map manifest from disk.
func LoadFieldMap(path string) (*FieldMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field map: %w", err)
	}
	return ParseFieldMap(data)
}

// ParseFieldMap parses a YAML field map manifest and prepares its registry.
func ParseFieldMap(data []byte) (*FieldMap, error) {
	var m FieldMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse field map: %w", err)
	}

	config := GetGlobalConfig()
	if m.Locale == "" {
		m.Locale = config.Locale
	}
	if m.Currency == "" {
		m.Currency = config.DefaultCurrency
	}

	for i := range m.Fields {
		if m.Fields[i].Column == "" {
			return nil, fmt.Errorf("field map: field %d has no column name", i)
		}
		m.Fields[i].parsed = ParseDirective(m.Fields[i].Directive)
	}

	m.registry = NewStrategyRegistryWithCurrency(NewLocaleProvider(m.Locale), m.Currency)
	return &m, nil
}

// Registry returns the strategy registry built for this field map's locale.
func (m *FieldMap) Registry() *DefaultStrategyRegistry {
	return m.registry
}

// Columns returns the bound column names in definition order.
func (m *FieldMap) Columns() []string {
	cols := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		cols[i] = f.Column
	}
	return cols
}

// FormatRow formats every bound column of one data row. Unbound row keys
// pass through untouched so the rendering layer still sees them. Never
// fails; per-field problems aggregate into the returned warnings.
func (m *FieldMap) FormatRow(row map[string]interface{}) (map[string]interface{}, []Warning) {
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		out[k] = v
	}

	var warnings []Warning
	for _, f := range m.Fields {
		res := m.registry.Format(row[f.Column], f.parsed)
		out[f.Column] = res.Value
		warnings = append(warnings, res.Warnings...)
	}
	return out, warnings
}

// ValidateTemplates checks every template listed in the manifest against the
// bound columns.
func (m *FieldMap) ValidateTemplates() ValidationReport {
	templates := make(map[string]string, len(m.Templates))
	for _, path := range m.Templates {
		templates[filepath.Base(path)] = path
	}
	return Compare(m.Columns(), templates)
}
