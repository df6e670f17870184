// Package harness runs query scenarios end to end: a query document is
// composed with the core filter for a document type and language settings,
// converted to Solr parameters, and checked against expectations and golden
// snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	document_type: content
//	language_settings:
//	  languages: [eng-GB, fre-FR]
//	  use_always_available: true
//	main_languages_endpoint: endpoint2
//	user_id: 14
//	request:
//	  filter:
//	    content_type_id: [1, 16]
//	expect:
//	  fq: 'document_type_id:"content" AND ...'
//	  fq_contains: ['meta_indexed_language_code_s:"eng-GB"']
//
// An expect clause either describes the rendered parameters (q, fq,
// fq_contains) or an expected error substring (error).
//
// # Golden Files
//
// RunWithGolden snapshots the rendered parameters under
// testdata/golden/{name}.golden. Regenerate them with:
//
//	go test ./internal/harness -update
package harness
