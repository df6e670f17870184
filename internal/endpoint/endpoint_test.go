package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibexa/solr-search-engine/internal/query"
)

func newResolver(mainLanguages string) *NativeResolver {
	return &NativeResolver{
		EntryEndpoints: []string{"endpoint0"},
		EndpointMap: map[string]string{
			"eng-GB": "endpoint_en",
			"fre-FR": "endpoint_fr",
		},
		DefaultEndpoint: "endpoint_default",
		MainLanguages:   mainLanguages,
	}
}

func TestMainLanguagesEndpoint(t *testing.T) {
	e, ok := newResolver("").MainLanguagesEndpoint()
	assert.False(t, ok)
	assert.Empty(t, e)

	e, ok = newResolver("endpoint_main").MainLanguagesEndpoint()
	assert.True(t, ok)
	assert.Equal(t, "endpoint_main", e)
}

func TestEntryEndpoint(t *testing.T) {
	e, err := newResolver("").EntryEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "endpoint0", e)

	_, err = (&NativeResolver{}).EntryEndpoint()
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestIndexingTarget(t *testing.T) {
	r := newResolver("")

	e, err := r.IndexingTarget("fre-FR")
	require.NoError(t, err)
	assert.Equal(t, "endpoint_fr", e)

	e, err = r.IndexingTarget("ger-DE")
	require.NoError(t, err)
	assert.Equal(t, "endpoint_default", e)

	r.DefaultEndpoint = ""
	_, err = r.IndexingTarget("ger-DE")
	require.ErrorIs(t, err, ErrNoEndpoint)
	assert.Contains(t, err.Error(), `"ger-DE"`)
}

func TestEndpoints(t *testing.T) {
	assert.Equal(t,
		[]string{"endpoint_default", "endpoint_en", "endpoint_fr", "endpoint_main"},
		newResolver("endpoint_main").Endpoints())
}

func TestSearchTargets(t *testing.T) {
	testCases := []struct {
		name          string
		mainLanguages string
		settings      query.LanguageSettings
		expected      []string
	}{
		{
			name:     "always available without main languages endpoint",
			settings: query.DefaultLanguageSettings("eng-GB"),
			expected: []string{"endpoint_default", "endpoint_en", "endpoint_fr"},
		},
		{
			name:     "no languages without main languages endpoint",
			settings: query.LanguageSettings{},
			expected: []string{"endpoint_default", "endpoint_en", "endpoint_fr"},
		},
		{
			name:     "strict languages without main languages endpoint",
			settings: query.LanguageSettings{Languages: []string{"eng-GB", "ger-DE"}},
			expected: []string{"endpoint_default", "endpoint_en"},
		},
		{
			name:          "always available with main languages endpoint",
			mainLanguages: "endpoint_main",
			settings:      query.DefaultLanguageSettings("fre-FR"),
			expected:      []string{"endpoint_fr", "endpoint_main"},
		},
		{
			name:          "strict languages with main languages endpoint",
			mainLanguages: "endpoint_main",
			settings:      query.LanguageSettings{Languages: []string{"fre-FR"}},
			expected:      []string{"endpoint_fr"},
		},
		{
			name:          "no languages with main languages endpoint",
			mainLanguages: "endpoint_main",
			settings:      query.LanguageSettings{},
			expected:      []string{"endpoint_main"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			targets, err := newResolver(tc.mainLanguages).SearchTargets(tc.settings)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, targets)
		})
	}
}

func TestSearchTargets_Errors(t *testing.T) {
	r := &NativeResolver{EndpointMap: map[string]string{"eng-GB": "endpoint_en"}}

	_, err := r.SearchTargets(query.LanguageSettings{Languages: []string{"ger-DE"}})
	require.ErrorIs(t, err, ErrNoEndpoint)
	assert.Contains(t, err.Error(), "not mapped")

	_, err = (&NativeResolver{}).SearchTargets(query.DefaultLanguageSettings())
	require.ErrorIs(t, err, ErrNoEndpoint)
	assert.Contains(t, err.Error(), "no endpoints defined")
}
