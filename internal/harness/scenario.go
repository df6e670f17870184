package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ibexa/solr-search-engine/internal/query"
)

// Scenario is one end-to-end query rendering case.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// DocumentType is "content" or "location".
	DocumentType string `yaml:"document_type"`

	LanguageSettings LanguageSettings `yaml:"language_settings"`

	// MainLanguagesEndpoint, when set, configures a main-languages endpoint.
	MainLanguagesEndpoint string `yaml:"main_languages_endpoint,omitempty"`

	// UserID is the current user for bookmark criteria.
	UserID int64 `yaml:"user_id,omitempty"`

	Request query.Document `yaml:"request"`

	Expect Expect `yaml:"expect"`
}

// LanguageSettings mirrors query.LanguageSettings with the defaults of
// query.DefaultLanguageSettings for omitted flags.
type LanguageSettings struct {
	Languages                              []string `yaml:"languages"`
	UseAlwaysAvailable                     *bool    `yaml:"use_always_available,omitempty"`
	ExcludeTranslationsFromAlwaysAvailable *bool    `yaml:"exclude_translations_from_always_available,omitempty"`
	ExcludeCoreCriterion                   bool     `yaml:"exclude_core_criterion,omitempty"`
}

// Settings returns the language settings with defaults applied.
func (l LanguageSettings) Settings() query.LanguageSettings {
	s := query.DefaultLanguageSettings(l.Languages...)
	if l.UseAlwaysAvailable != nil {
		s.UseAlwaysAvailable = *l.UseAlwaysAvailable
	}
	if l.ExcludeTranslationsFromAlwaysAvailable != nil {
		s.ExcludeTranslationsFromAlwaysAvailable = *l.ExcludeTranslationsFromAlwaysAvailable
	}
	s.ExcludeCoreCriterion = l.ExcludeCoreCriterion
	return s
}

// Expect describes the expected outcome of a scenario.
type Expect struct {
	// Query is the exact expected q parameter.
	Query string `yaml:"q,omitempty"`

	// Filter is the exact expected fq parameter.
	Filter string `yaml:"fq,omitempty"`

	// FilterContains lists substrings fq must contain.
	FilterContains []string `yaml:"fq_contains,omitempty"`

	// Error is a substring of the expected error. Mutually exclusive with
	// the parameter expectations.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	names := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if prev, dup := names[s.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate scenario name %q (also in %s)", filepath.Base(path), s.Name, prev)
		}
		names[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, ok := query.ParseDocumentType(s.DocumentType); !ok {
		return fmt.Errorf("document_type must be %q or %q, got %q",
			query.DocumentTypeContent, query.DocumentTypeLocation, s.DocumentType)
	}

	e := s.Expect
	hasParams := e.Query != "" || e.Filter != "" || len(e.FilterContains) > 0
	switch {
	case e.Error != "" && hasParams:
		return fmt.Errorf("expect: error cannot be combined with q, fq or fq_contains")
	case e.Error == "" && !hasParams:
		return fmt.Errorf("expect: one of q, fq, fq_contains or error is required")
	}

	return nil
}
