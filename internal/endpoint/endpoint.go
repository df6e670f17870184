// Package endpoint resolves which Solr endpoints (cores or shards) serve a
// search, and whether a dedicated main-languages endpoint is configured.
package endpoint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ibexa/solr-search-engine/internal/query"
)

// ErrNoEndpoint is returned when no endpoint can serve a request.
var ErrNoEndpoint = errors.New("no endpoint")

// Resolver is the part of endpoint resolution the core filter depends on.
type Resolver interface {
	// MainLanguagesEndpoint returns the endpoint holding one document per
	// item in its main translation, if one is configured.
	MainLanguagesEndpoint() (string, bool)
}

// NativeResolver resolves endpoints from static configuration.
//
// EndpointMap maps language codes to the endpoint indexing that language.
// Languages without a mapping go to DefaultEndpoint. MainLanguages, when
// set, is the dedicated main-languages endpoint.
type NativeResolver struct {
	EntryEndpoints  []string
	EndpointMap     map[string]string
	DefaultEndpoint string
	MainLanguages   string
}

// MainLanguagesEndpoint returns the configured main-languages endpoint.
func (r *NativeResolver) MainLanguagesEndpoint() (string, bool) {
	return r.MainLanguages, r.MainLanguages != ""
}

// EntryEndpoint returns the endpoint a search request is sent to.
func (r *NativeResolver) EntryEndpoint() (string, error) {
	if len(r.EntryEndpoints) == 0 {
		return "", fmt.Errorf("%w: no entry endpoints configured", ErrNoEndpoint)
	}
	return r.EntryEndpoints[0], nil
}

// IndexingTarget returns the endpoint indexing documents in a language.
func (r *NativeResolver) IndexingTarget(languageCode string) (string, error) {
	if e, ok := r.EndpointMap[languageCode]; ok {
		return e, nil
	}
	if r.DefaultEndpoint != "" {
		return r.DefaultEndpoint, nil
	}
	return "", fmt.Errorf("%w: language %q is not mapped to an endpoint", ErrNoEndpoint, languageCode)
}

// Endpoints returns every configured endpoint, sorted and deduplicated.
func (r *NativeResolver) Endpoints() []string {
	set := make(map[string]bool, len(r.EndpointMap)+2)
	for _, e := range r.EndpointMap {
		set[e] = true
	}
	if r.DefaultEndpoint != "" {
		set[r.DefaultEndpoint] = true
	}
	if r.MainLanguages != "" {
		set[r.MainLanguages] = true
	}
	return sortedSet(set)
}

// SearchTargets returns the endpoints a search with the given settings has to
// query.
//
// Without a main-languages endpoint, a search that may fall back to main
// translations (always-available or no languages) has to query every
// endpoint. Otherwise the targets are the endpoints of the requested
// languages, plus the main-languages endpoint when fallback applies.
func (r *NativeResolver) SearchTargets(settings query.LanguageSettings) ([]string, error) {
	fallback := settings.UseAlwaysAvailable || len(settings.Languages) == 0

	if fallback && r.MainLanguages == "" {
		endpoints := r.Endpoints()
		if len(endpoints) == 0 {
			return nil, fmt.Errorf("%w: no endpoints defined for given language settings", ErrNoEndpoint)
		}
		return endpoints, nil
	}

	set := make(map[string]bool)
	for _, languageCode := range settings.Languages {
		target, err := r.IndexingTarget(languageCode)
		if err != nil {
			return nil, err
		}
		set[target] = true
	}

	if (settings.UseAlwaysAvailable || len(set) == 0) && r.MainLanguages != "" {
		set[r.MainLanguages] = true
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no endpoints defined for given language settings", ErrNoEndpoint)
	}
	return sortedSet(set), nil
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
