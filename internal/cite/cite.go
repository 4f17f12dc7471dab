// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite resolves PubMed identifiers into rendered citation
// records: fetch, extract, populate a BibTeX entry, render.
package cite

import (
	"context"
	"errors"
	"strings"

	"github.com/pdiddy/pubtex/internal/bibtex"
	"github.com/pdiddy/pubtex/internal/pubmed"
	"github.com/pdiddy/pubtex/internal/textutil"
	"github.com/pdiddy/pubtex/pkg/types"
)

// Resolve fetches one PMID and extracts its citation metadata. Not-found
// and missing-field failures are wrapped in an InvalidIdentifierError
// carrying the PMID; all other failures propagate unchanged.
func Resolve(ctx context.Context, c *pubmed.Client, pmid string, mode types.JournalMode) (types.Metadata, error) {
	art, err := c.Fetch(ctx, pmid)
	if err != nil {
		return types.Metadata{}, wrapInvalid(pmid, err)
	}
	meta, err := pubmed.Extract(art, mode)
	if err != nil {
		return types.Metadata{}, wrapInvalid(pmid, err)
	}
	return meta, nil
}

// wrapInvalid converts not-found and missing-field failures into
// InvalidIdentifierError so the front end can report the offending
// identifier. Malformed-document and transport errors pass through.
func wrapInvalid(pmid string, err error) error {
	var notFound *pubmed.NotFoundError
	var missing *pubmed.MissingFieldError
	if errors.As(err, &notFound) || errors.As(err, &missing) {
		return &pubmed.InvalidIdentifierError{PMID: pmid, Err: err}
	}
	return err
}

// RenderBibTeX populates a BibTeX article entry from extracted metadata
// and renders it. Issue and DOI are set only when present.
func RenderBibTeX(m types.Metadata) string {
	e := bibtex.NewEntry("article", EntryID(m))
	e.Set("author", formatAuthors(m.Authors))
	e.Set("title", m.Title)
	e.Set("journal", m.Journal)
	e.Set("year", m.Year)
	e.Set("volume", m.Volume)
	e.Set("pages", m.Pages)
	if m.Issue != "" {
		e.Set("number", m.Issue)
	}
	if m.DOI != "" {
		e.Set("doi", m.DOI)
	}
	return e.String()
}

// EntryID derives the citation key: the first author's surname,
// lower-cased with diacritics stripped, plus the last two digits of the
// year ("Nepusz" + "2010" yields "nepusz10").
func EntryID(m types.Metadata) string {
	surname := ""
	if len(m.Authors) > 0 {
		surname = strings.ToLower(textutil.StripDiacritics(m.Authors[0].LastName))
	}
	year := m.Year
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return surname + year
}

// formatAuthors renders the author field: "Surname, I.I." per author,
// every initials character followed by a period, authors joined with
// " and ".
func formatAuthors(authors []types.Author) string {
	formatted := make([]string, len(authors))
	for i, a := range authors {
		var initials strings.Builder
		for _, c := range a.Initials {
			initials.WriteRune(c)
			initials.WriteByte('.')
		}
		formatted[i] = a.LastName + ", " + initials.String()
	}
	return strings.Join(formatted, " and ")
}
