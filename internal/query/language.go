package query

// LanguageSettings controls which translation of each item a search matches.
//
// Languages is in priority order; empty means main languages only.
// The zero value is not the default: use DefaultLanguageSettings, which turns
// on always-available fallback and translation exclusion.
type LanguageSettings struct {
	Languages []string

	// UseAlwaysAvailable falls back to the main translation of always
	// available items that have no translation in Languages.
	UseAlwaysAvailable bool

	// ExcludeTranslationsFromAlwaysAvailable suppresses the fallback when the
	// item has any translation in Languages. When false, only a main
	// translation in one of Languages suppresses it.
	ExcludeTranslationsFromAlwaysAvailable bool

	// ExcludeCoreCriterion skips the language filter entirely and searches
	// all translations.
	ExcludeCoreCriterion bool
}

// DefaultLanguageSettings returns settings with the default flags for the
// given prioritized languages.
func DefaultLanguageSettings(languages ...string) LanguageSettings {
	return LanguageSettings{
		Languages:                              languages,
		UseAlwaysAvailable:                     true,
		ExcludeTranslationsFromAlwaysAvailable: true,
	}
}
