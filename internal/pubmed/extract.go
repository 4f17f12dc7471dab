// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/pdiddy/pubtex/pkg/types"
)

// electronicSuffix is appended by MEDLINE to journal titles of
// online-only journals and is stripped from extracted journal names.
const electronicSuffix = " [electronic resource]"

// Extract locates the required and optional citation fields in a fetched
// article and returns the normalized field set. Any required field that
// resolves to no value fails with a MissingFieldError naming its document
// path; optional fields (issue, DOI) are left empty when absent.
func Extract(art *Article, mode types.JournalMode) (types.Metadata, error) {
	a := art.MedlineCitation.Article

	authors, err := extractAuthors(a.AuthorList)
	if err != nil {
		return types.Metadata{}, err
	}

	title := strings.TrimSpace(a.Title)
	if title == "" {
		return types.Metadata{}, &MissingFieldError{Path: "MedlineCitation/Article/ArticleTitle"}
	}
	// Drop a single trailing period; other trailing punctuation stays.
	title = strings.TrimSuffix(title, ".")

	year := a.Journal.Issue.PubDate.Year
	if year == "" {
		return types.Metadata{}, &MissingFieldError{Path: "MedlineCitation/Article/Journal/JournalIssue/PubDate/Year"}
	}

	volume := a.Journal.Issue.Volume
	if volume == "" {
		return types.Metadata{}, &MissingFieldError{Path: "MedlineCitation/Article/Journal/JournalIssue/Volume"}
	}

	pages := a.Pagination.MedlinePgn
	if pages == "" {
		return types.Metadata{}, &MissingFieldError{Path: "MedlineCitation/Article/Pagination/MedlinePgn"}
	}
	// Double every hyphen for the BibTeX range convention. This is a
	// naive substitution: hyphens that are not range separators are
	// doubled too.
	pages = strings.ReplaceAll(pages, "-", "--")

	journal, err := journalTitle(art, mode)
	if err != nil {
		return types.Metadata{}, err
	}

	return types.Metadata{
		PMID:    art.MedlineCitation.PMID,
		Authors: authors,
		Title:   title,
		Journal: journal,
		Year:    year,
		Volume:  volume,
		Pages:   pages,
		Issue:   a.Journal.Issue.Issue,
		DOI:     findArticleID(art.PubmedData.ArticleIDs, "doi"),
	}, nil
}

// extractAuthors pairs each surname with its initials entry positionally.
// The list and both halves of every pair are required.
func extractAuthors(list []docAuthor) ([]types.Author, error) {
	if len(list) == 0 {
		return nil, &MissingFieldError{Path: "MedlineCitation/Article/AuthorList/Author"}
	}
	authors := make([]types.Author, 0, len(list))
	for _, a := range list {
		if a.LastName == "" {
			return nil, &MissingFieldError{Path: "MedlineCitation/Article/AuthorList/Author/LastName"}
		}
		if a.Initials == "" {
			return nil, &MissingFieldError{Path: "MedlineCitation/Article/AuthorList/Author/Initials"}
		}
		authors = append(authors, types.Author{LastName: a.LastName, Initials: a.Initials})
	}
	return authors, nil
}

// journalTitle selects the journal name variant for the configured mode
// and strips the MEDLINE electronic-resource suffix.
func journalTitle(art *Article, mode types.JournalMode) (string, error) {
	var name, path string
	switch mode {
	case types.JournalAbbrev:
		name = art.MedlineCitation.JournalInfo.MedlineTA
		path = "MedlineCitation/MedlineJournalInfo/MedlineTA"
	case types.JournalISO:
		name = art.MedlineCitation.Article.Journal.ISOAbbreviation
		path = "MedlineCitation/Article/Journal/ISOAbbreviation"
	default:
		name = art.MedlineCitation.Article.Journal.Title
		path = "MedlineCitation/Article/Journal/Title"
	}
	if name == "" {
		return "", &MissingFieldError{Path: path}
	}
	return strings.TrimSuffix(name, electronicSuffix), nil
}

// findArticleID scans the typed external identifier list for the entry
// whose kind matches idType, ignoring all others. Returns "" when no
// entry matches.
func findArticleID(ids []ArticleID, idType string) string {
	for _, id := range ids {
		if id.IDType == idType {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}
