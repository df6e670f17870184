// Package config loads search engine settings from CUE.
//
// A configuration file is unified with a schema that carries the defaults,
// so an empty file is a valid configuration:
//
//	language_settings: {
//		languages: ["eng-GB", "fre-FR"]
//		use_always_available: true
//	}
//	endpoints: {
//		entry: ["endpoint0"]
//		map: {"eng-GB": "endpoint0", "fre-FR": "endpoint1"}
//		main_languages: "endpoint2"
//	}
//	user_id: 14
package config

import (
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/ibexa/solr-search-engine/internal/content"
	"github.com/ibexa/solr-search-engine/internal/endpoint"
	"github.com/ibexa/solr-search-engine/internal/query"
)

const schema = `
#Config: {
	language_settings: {
		languages: [...string & != ""] | *[]
		use_always_available: bool | *true
		exclude_translations_from_always_available: bool | *true
		exclude_core_criterion: bool | *false
	}
	endpoints: {
		entry: [...string & != ""] | *[]
		map: {[string]: string & != ""}
		default: string | *""
		main_languages: string | *""
	}
	user_id: int & >=0 | *0
}
`

// Config is a loaded configuration.
type Config struct {
	LanguageSettings query.LanguageSettings
	Endpoints        endpoint.NativeResolver
	UserID           int64
}

// Resolver returns the endpoint resolver described by the configuration.
func (c *Config) Resolver() *endpoint.NativeResolver {
	r := c.Endpoints
	return &r
}

// Permissions returns a resolver for the configured user.
func (c *Config) Permissions() content.StaticPermissionResolver {
	return content.StaticPermissionResolver{UserID: c.UserID}
}

type rawConfig struct {
	LanguageSettings struct {
		Languages                              []string `json:"languages"`
		UseAlwaysAvailable                     bool     `json:"use_always_available"`
		ExcludeTranslationsFromAlwaysAvailable bool     `json:"exclude_translations_from_always_available"`
		ExcludeCoreCriterion                   bool     `json:"exclude_core_criterion"`
	} `json:"language_settings"`
	Endpoints struct {
		Entry         []string          `json:"entry"`
		Map           map[string]string `json:"map"`
		Default       string            `json:"default"`
		MainLanguages string            `json:"main_languages"`
	} `json:"endpoints"`
	UserID int64 `json:"user_id"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, path)
}

// Parse parses CUE source. filename is used in error positions only.
func Parse(src []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()

	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}

	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v = def.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var raw rawConfig
	if err := v.Decode(&raw); err != nil {
		return nil, formatCUEError(err)
	}

	cfg := &Config{
		LanguageSettings: query.LanguageSettings{
			Languages:                              raw.LanguageSettings.Languages,
			UseAlwaysAvailable:                     raw.LanguageSettings.UseAlwaysAvailable,
			ExcludeTranslationsFromAlwaysAvailable: raw.LanguageSettings.ExcludeTranslationsFromAlwaysAvailable,
			ExcludeCoreCriterion:                   raw.LanguageSettings.ExcludeCoreCriterion,
		},
		Endpoints: endpoint.NativeResolver{
			EntryEndpoints:  raw.Endpoints.Entry,
			EndpointMap:     raw.Endpoints.Map,
			DefaultEndpoint: raw.Endpoints.Default,
			MainLanguages:   raw.Endpoints.MainLanguages,
		},
		UserID: raw.UserID,
	}

	slog.Debug("config loaded",
		"file", filename,
		"languages", cfg.LanguageSettings.Languages,
		"endpoints", len(cfg.Endpoints.Endpoints()),
		"main_languages", cfg.Endpoints.MainLanguages,
	)

	return cfg, nil
}

// Error is a configuration error with its source position.
type Error struct {
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// formatCUEError returns the first CUE error with its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Message: err.Error()}
	}

	first := errs[0]
	cfgErr := &Error{Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		cfgErr.Pos = positions[0]
	}
	return cfgErr
}
