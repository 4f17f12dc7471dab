// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubtex pipeline.
package types

// Author is one article author as extracted from the source document:
// a surname plus an initials string ("TN" for Tamás Nepusz).
type Author struct {
	// LastName is the surname, which may contain diacritics.
	LastName string `json:"last_name" yaml:"last_name"`

	// Initials is the raw given-name initials string, one letter per
	// given name, without separators.
	Initials string `json:"initials" yaml:"initials"`
}

// Metadata is the normalized field set extracted from one PubMed article.
// It is built once per fetched document, consumed immediately to populate
// a citation record, and discarded.
type Metadata struct {
	// PMID is the PubMed identifier the metadata was extracted from.
	PMID string `json:"pmid" yaml:"pmid"`

	// Authors lists the article authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Title is the article title, trimmed, with any single trailing
	// period removed.
	Title string `json:"title" yaml:"title"`

	// Journal is the journal name selected by the configured journal mode.
	Journal string `json:"journal" yaml:"journal"`

	// Year is the raw 4-digit publication year string.
	Year string `json:"year" yaml:"year"`

	// Volume is the journal volume.
	Volume string `json:"volume" yaml:"volume"`

	// Pages is the page range with hyphens doubled for BibTeX.
	Pages string `json:"pages" yaml:"pages"`

	// Issue is the journal issue number; empty means absent.
	Issue string `json:"issue,omitempty" yaml:"issue,omitempty"`

	// DOI is the digital object identifier; empty means absent.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}
