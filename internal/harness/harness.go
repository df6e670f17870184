package harness

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ibexa/solr-search-engine/internal/content"
	"github.com/ibexa/solr-search-engine/internal/corefilter"
	"github.com/ibexa/solr-search-engine/internal/endpoint"
	"github.com/ibexa/solr-search-engine/internal/query"
	"github.com/ibexa/solr-search-engine/internal/querysolr"
)

// Run renders a scenario's request and checks it against the expect clause.
//
// The returned error reports a scenario that cannot be set up. Rendering
// failures and expectation mismatches are reported in the Result.
func Run(ctx context.Context, s *Scenario) (*Result, error) {
	documentType, ok := query.ParseDocumentType(s.DocumentType)
	if !ok {
		return nil, fmt.Errorf("unknown document type %q", s.DocumentType)
	}

	result := NewResult()

	params, err := render(ctx, s, documentType)
	if err != nil {
		result.Params = nil
		result.Error = err.Error()
		checkError(s.Expect, err, result)
	} else {
		for key := range params {
			result.Params[key] = params.Get(key)
		}
		checkParams(s.Expect, result)
	}

	slog.Debug("scenario executed",
		"scenario", s.Name,
		"pass", result.Pass,
		"errors", len(result.Errors),
	)

	return result, nil
}

func render(ctx context.Context, s *Scenario, documentType query.DocumentType) (url.Values, error) {
	q, err := s.Request.Build()
	if err != nil {
		return nil, err
	}

	resolver := &endpoint.NativeResolver{MainLanguages: s.MainLanguagesEndpoint}
	q = corefilter.NewNativeCoreFilter(resolver).Apply(q, s.LanguageSettings.Settings(), documentType)

	registry := querysolr.NewContentRegistry()
	if documentType == query.DocumentTypeLocation {
		registry = querysolr.NewLocationRegistry(content.StaticPermissionResolver{UserID: s.UserID})
	}

	return querysolr.NewConverter(registry).Convert(ctx, q)
}

func checkError(e Expect, err error, result *Result) {
	if e.Error == "" {
		result.Failf("unexpected error: %v", err)
		return
	}
	if !strings.Contains(err.Error(), e.Error) {
		result.Failf("error %q does not contain %q", err.Error(), e.Error)
	}
}

func checkParams(e Expect, result *Result) {
	if e.Error != "" {
		result.Failf("expected error containing %q, got none", e.Error)
		return
	}

	if e.Query != "" && result.Params["q"] != e.Query {
		result.Failf("q mismatch:\n  expected: %s\n  actual:   %s", e.Query, result.Params["q"])
	}
	if e.Filter != "" && result.Params["fq"] != e.Filter {
		result.Failf("fq mismatch:\n  expected: %s\n  actual:   %s", e.Filter, result.Params["fq"])
	}
	for _, sub := range e.FilterContains {
		if !strings.Contains(result.Params["fq"], sub) {
			result.Failf("fq does not contain %s", sub)
		}
	}
}
