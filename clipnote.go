// Package clipnote clips web articles and video transcripts into clean,
// deduplicated markdown documents. It parses a structured blog editor's
// block model directly, falls back through tiered extraction strategies
// for arbitrary pages, and converts timed captions into readable
// paragraphs.
//
// This package contains domain types, interfaces, and pure algorithms
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g. goquery/,
// trafilatura/, rod/).
package clipnote
