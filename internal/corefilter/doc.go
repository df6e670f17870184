// Package corefilter composes the top-level filter of every search.
//
// Each logical item is indexed once per translation (plus, optionally, once
// more in a dedicated main-languages endpoint). The core filter narrows a
// search to exactly one of those documents per item:
//
//   - no languages requested: the main translation only
//   - prioritized languages: the first requested language the item is
//     translated to, never a lower priority one
//   - always-available fallback: the main translation of always available
//     items without a matching translation
//
// The filter is conjoined with the document type discriminator and the
// caller's own filter by NativeCoreFilter.Apply.
package corefilter
