package corefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibexa/solr-search-engine/internal/criterion"
	"github.com/ibexa/solr-search-engine/internal/endpoint"
	"github.com/ibexa/solr-search-engine/internal/query"
)

func newFilter(mainLanguages string) *NativeCoreFilter {
	return NewNativeCoreFilter(&endpoint.NativeResolver{MainLanguages: mainLanguages})
}

func eq(field string, value any) *criterion.CustomField {
	return criterion.NewCustomField(field, criterion.EQ, value)
}

func in(field string, values ...any) *criterion.CustomField {
	return criterion.NewCustomField(field, criterion.IN, values...)
}

func TestCoreCriterion_NoLanguages(t *testing.T) {
	settingsList := []query.LanguageSettings{
		query.DefaultLanguageSettings(),
		{},
		{UseAlwaysAvailable: false, ExcludeTranslationsFromAlwaysAvailable: false},
	}

	for _, mainLanguages := range []string{"", "main"} {
		for _, settings := range settingsList {
			c := newFilter(mainLanguages).CoreCriterion(settings)
			assert.Equal(t, eq(FieldIsMainLanguage, true), c)
		}
	}
}

func TestCoreCriterion_SingleLanguageHasNoExclusion(t *testing.T) {
	settings := query.LanguageSettings{Languages: []string{"eng-GB"}}

	c := newFilter("").CoreCriterion(settings)
	assert.Equal(t, eq(FieldLanguage, "eng-GB"), c)
}

func TestCoreCriterion_PriorityClauses(t *testing.T) {
	settings := query.LanguageSettings{Languages: []string{"eng-GB", "fre-FR", "ger-DE"}}

	c := newFilter("").CoreCriterion(settings)

	or, ok := c.(*criterion.LogicalOr)
	require.True(t, ok, "expected a disjunction, got %T", c)
	require.Len(t, or.Criteria, 3)

	assert.Equal(t, eq(FieldLanguage, "eng-GB"), or.Criteria[0])
	assert.Equal(t, criterion.NewLogicalAnd(
		eq(FieldLanguage, "fre-FR"),
		criterion.NewLogicalNot(in(FieldLanguages, "eng-GB")),
	), or.Criteria[1])
	assert.Equal(t, criterion.NewLogicalAnd(
		eq(FieldLanguage, "ger-DE"),
		criterion.NewLogicalNot(in(FieldLanguages, "eng-GB", "fre-FR")),
	), or.Criteria[2])
}

func TestCoreCriterion_DisjunctionSizeMatchesLanguageCount(t *testing.T) {
	languages := []string{"eng-GB", "fre-FR", "ger-DE", "pol-PL", "nor-NO"}

	for n := 2; n <= len(languages); n++ {
		settings := query.LanguageSettings{Languages: languages[:n]}
		c := newFilter("").CoreCriterion(settings)

		or, ok := c.(*criterion.LogicalOr)
		require.True(t, ok)
		assert.Len(t, or.Criteria, n)
	}
}

func TestCoreCriterion_AlwaysAvailable(t *testing.T) {
	settings := query.DefaultLanguageSettings("eng-GB")

	c := newFilter("").CoreCriterion(settings)

	expected := criterion.NewLogicalOr(
		eq(FieldLanguage, "eng-GB"),
		criterion.NewLogicalAnd(
			eq(FieldIsAlwaysAvailable, true),
			criterion.NewLogicalNot(in(FieldLanguages, "eng-GB")),
		),
	)
	assert.Equal(t, expected, c)
}

func TestCoreCriterion_AlwaysAvailableExcludesMainTranslationOnly(t *testing.T) {
	settings := query.DefaultLanguageSettings("eng-GB", "fre-FR")
	settings.ExcludeTranslationsFromAlwaysAvailable = false

	c := newFilter("").CoreCriterion(settings)

	or, ok := c.(*criterion.LogicalOr)
	require.True(t, ok)
	require.Len(t, or.Criteria, 2)
	assert.Equal(t, criterion.NewLogicalAnd(
		eq(FieldIsAlwaysAvailable, true),
		criterion.NewLogicalNot(in(FieldLanguage, "eng-GB", "fre-FR")),
	), or.Criteria[1])
}

func TestCoreCriterion_MainLanguagesEndpoint(t *testing.T) {
	settings := query.DefaultLanguageSettings("eng-GB", "fre-FR")

	c := newFilter("main").CoreCriterion(settings)

	expected := criterion.NewLogicalOr(
		criterion.NewLogicalAnd(
			criterion.NewLogicalOr(
				eq(FieldLanguage, "eng-GB"),
				criterion.NewLogicalAnd(
					eq(FieldLanguage, "fre-FR"),
					criterion.NewLogicalNot(in(FieldLanguages, "eng-GB")),
				),
			),
			criterion.NewLogicalNot(eq(FieldIsMainLanguagesIndex, true)),
		),
		criterion.NewLogicalAnd(
			eq(FieldIsAlwaysAvailable, true),
			criterion.NewLogicalNot(in(FieldLanguages, "eng-GB", "fre-FR")),
			eq(FieldIsMainLanguagesIndex, true),
		),
	)
	assert.Equal(t, expected, c)
}

func TestCoreCriterion_MainLanguagesEndpointSingleLanguage(t *testing.T) {
	settings := query.LanguageSettings{Languages: []string{"eng-GB"}}

	c := newFilter("main").CoreCriterion(settings)

	assert.Equal(t, criterion.NewLogicalAnd(
		eq(FieldLanguage, "eng-GB"),
		criterion.NewLogicalNot(eq(FieldIsMainLanguagesIndex, true)),
	), c)
}

func TestCoreCriterion_DuplicateLanguages(t *testing.T) {
	settings := query.LanguageSettings{Languages: []string{"eng-GB", "eng-GB"}}

	c := newFilter("").CoreCriterion(settings)

	// The second occurrence stops at the first one, so neither clause
	// carries an exclusion.
	assert.Equal(t, criterion.NewLogicalOr(
		eq(FieldLanguage, "eng-GB"),
		eq(FieldLanguage, "eng-GB"),
	), c)
}

func TestApply(t *testing.T) {
	userFilter := criterion.NewContentID(42)
	q := query.Query{Filter: userFilter, Limit: 10}

	result := newFilter("").Apply(q, query.DefaultLanguageSettings("eng-GB"), query.DocumentTypeContent)

	and, ok := result.Filter.(*criterion.LogicalAnd)
	require.True(t, ok)
	require.Len(t, and.Criteria, 3)
	assert.Equal(t, eq(FieldDocumentType, "content"), and.Criteria[0])
	assert.IsType(t, &criterion.LogicalOr{}, and.Criteria[1])
	assert.Same(t, userFilter, and.Criteria[2])
	assert.Equal(t, 10, result.Limit)

	// The input query is left untouched.
	assert.Same(t, userFilter, q.Filter)
}

func TestApply_NoUserFilter(t *testing.T) {
	result := newFilter("").Apply(query.Query{}, query.DefaultLanguageSettings(), query.DocumentTypeLocation)

	assert.Equal(t, criterion.NewLogicalAnd(
		eq(FieldDocumentType, "location"),
		eq(FieldIsMainLanguage, true),
	), result.Filter)
}

func TestApply_ExcludeCoreCriterion(t *testing.T) {
	settings := query.DefaultLanguageSettings("eng-GB", "fre-FR")
	settings.ExcludeCoreCriterion = true

	result := newFilter("main").Apply(query.Query{}, settings, query.DocumentTypeContent)
	assert.Equal(t, criterion.NewLogicalAnd(eq(FieldDocumentType, "content")), result.Filter)

	userFilter := criterion.NewIsContainer(true)
	result = newFilter("main").Apply(query.Query{Filter: userFilter}, settings, query.DocumentTypeContent)
	assert.Equal(t, criterion.NewLogicalAnd(eq(FieldDocumentType, "content"), userFilter), result.Filter)
}

func TestApply_NotIdempotent(t *testing.T) {
	f := newFilter("")
	settings := query.DefaultLanguageSettings("eng-GB")

	once := f.Apply(query.Query{}, settings, query.DocumentTypeContent)
	twice := f.Apply(once, settings, query.DocumentTypeContent)

	onceAnd := once.Filter.(*criterion.LogicalAnd)
	twiceAnd := twice.Filter.(*criterion.LogicalAnd)

	assert.Greater(t, len(twiceAnd.Criteria), len(onceAnd.Criteria))
	assert.Same(t, onceAnd, twiceAnd.Criteria[len(twiceAnd.Criteria)-1])
}

func TestApply_ResultValidates(t *testing.T) {
	settings := query.DefaultLanguageSettings("eng-GB", "fre-FR", "ger-DE")
	result := newFilter("main").Apply(query.Query{Filter: criterion.NewContentID(1)}, settings, query.DocumentTypeLocation)

	assert.NoError(t, criterion.Validate(result.Filter))
}
