package corefilter

// Index field names. These are part of the index schema and must not change.
const (
	// FieldDocumentType holds the document type identifier
	// ("content" or "location").
	FieldDocumentType = "document_type_id"

	// FieldLanguages holds the language codes of all translations of the
	// item.
	FieldLanguages = "content_language_codes_ms"

	// FieldLanguage holds the language code of the indexed translation.
	FieldLanguage = "meta_indexed_language_code_s"

	// FieldIsMainLanguage flags the indexed translation as the main one.
	FieldIsMainLanguage = "meta_indexed_is_main_translation_b"

	// FieldIsAlwaysAvailable flags the indexed translation as the main one
	// of an always available item.
	FieldIsAlwaysAvailable = "meta_indexed_is_main_translation_and_always_available_b"

	// FieldIsMainLanguagesIndex flags documents stored in the main-languages
	// endpoint.
	FieldIsMainLanguagesIndex = "meta_indexed_main_translation_b"
)
