package corefilter

import (
	"log/slog"

	"github.com/ibexa/solr-search-engine/internal/criterion"
	"github.com/ibexa/solr-search-engine/internal/endpoint"
	"github.com/ibexa/solr-search-engine/internal/query"
)

// NativeCoreFilter builds the document type and language filter for Solr's
// native document layout.
//
// It is immutable after construction and safe for concurrent use.
type NativeCoreFilter struct {
	hasMainLanguagesEndpoint bool
}

// NewNativeCoreFilter creates a core filter. Whether a main-languages
// endpoint exists is read once from the resolver.
func NewNativeCoreFilter(resolver endpoint.Resolver) *NativeCoreFilter {
	_, ok := resolver.MainLanguagesEndpoint()
	return &NativeCoreFilter{hasMainLanguagesEndpoint: ok}
}

// Apply returns a copy of q whose filter is the conjunction of:
//  1. the document type discriminator
//  2. the language filter, unless settings.ExcludeCoreCriterion
//  3. the existing q.Filter, if any
//
// Apply is not idempotent: applying it to its own result nests the previous
// conjunction as the last child. Call it exactly once per query.
func (f *NativeCoreFilter) Apply(q query.Query, settings query.LanguageSettings, documentType query.DocumentType) query.Query {
	criteria := []criterion.Criterion{
		criterion.NewCustomField(FieldDocumentType, criterion.EQ, string(documentType)),
	}

	if !settings.ExcludeCoreCriterion {
		criteria = append(criteria, f.CoreCriterion(settings))
	}

	if q.Filter != nil {
		criteria = append(criteria, q.Filter)
	}

	slog.Debug("core filter applied",
		"document_type", documentType,
		"languages", settings.Languages,
		"use_always_available", settings.UseAlwaysAvailable,
		"exclude_core_criterion", settings.ExcludeCoreCriterion,
		"main_languages_endpoint", f.hasMainLanguagesEndpoint,
	)

	q.Filter = criterion.NewLogicalAnd(criteria...)
	return q
}

// CoreCriterion returns the language filter for the given settings. It makes
// sure an item is matched only once across all translation documents.
func (f *NativeCoreFilter) CoreCriterion(settings query.LanguageSettings) criterion.Criterion {
	if len(settings.Languages) == 0 {
		return criterion.NewCustomField(FieldIsMainLanguage, criterion.EQ, true)
	}

	filter := f.languageFilter(settings.Languages)

	if settings.UseAlwaysAvailable {
		filter = criterion.NewLogicalOr(
			filter,
			f.alwaysAvailableFilter(settings.Languages, settings.ExcludeTranslationsFromAlwaysAvailable),
		)
	}

	return filter
}

// languageFilter returns the prioritized languages fallback.
//
// A translation in the language at position i matches only when the item has
// no translation in any language before i.
func (f *NativeCoreFilter) languageFilter(languageCodes []string) criterion.Criterion {
	filters := make([]criterion.Criterion, 0, len(languageCodes))

	for _, languageCode := range languageCodes {
		var condition criterion.Criterion = criterion.NewCustomField(FieldLanguage, criterion.EQ, languageCode)

		if excluded := excludedLanguageCodes(languageCodes, languageCode); len(excluded) > 0 {
			condition = criterion.NewLogicalAnd(
				condition,
				criterion.NewLogicalNot(
					criterion.NewCustomField(FieldLanguages, criterion.IN, toValues(excluded)...),
				),
			)
		}

		filters = append(filters, condition)
	}

	if len(filters) > 1 {
		filters = []criterion.Criterion{criterion.NewLogicalOr(filters...)}
	}

	// The main-languages endpoint holds main translations only, which are
	// matched by the always available filter.
	if f.hasMainLanguagesEndpoint {
		filters = append(filters, criterion.NewLogicalNot(
			criterion.NewCustomField(FieldIsMainLanguagesIndex, criterion.EQ, true),
		))
	}

	if len(filters) > 1 {
		return criterion.NewLogicalAnd(filters...)
	}
	return filters[0]
}

// alwaysAvailableFilter returns the always available main translation
// fallback.
func (f *NativeCoreFilter) alwaysAvailableFilter(languageCodes []string, excludeTranslations bool) criterion.Criterion {
	excludeOnField := FieldLanguage
	if excludeTranslations {
		excludeOnField = FieldLanguages
	}

	conditions := []criterion.Criterion{
		criterion.NewCustomField(FieldIsAlwaysAvailable, criterion.EQ, true),
		criterion.NewLogicalNot(
			criterion.NewCustomField(excludeOnField, criterion.IN, toValues(languageCodes)...),
		),
	}

	if f.hasMainLanguagesEndpoint {
		conditions = append(conditions,
			criterion.NewCustomField(FieldIsMainLanguagesIndex, criterion.EQ, true),
		)
	}

	return criterion.NewLogicalAnd(conditions...)
}

// excludedLanguageCodes returns the language codes prioritized before
// selected. A duplicated code stops at its first occurrence.
func excludedLanguageCodes(languageCodes []string, selected string) []string {
	var excluded []string
	for _, languageCode := range languageCodes {
		if languageCode == selected {
			break
		}
		excluded = append(excluded, languageCode)
	}
	return excluded
}

func toValues(codes []string) []any {
	values := make([]any, len(codes))
	for i, c := range codes {
		values[i] = c
	}
	return values
}
