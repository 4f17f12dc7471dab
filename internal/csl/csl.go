// Package csl serializes extracted metadata as CSL (Citation Style
// Language) items. The field names and structure follow the
// CSL-JSON/CSL-YAML schema so that output is consumable by Pandoc and
// reference managers.
package csl

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubtex/pkg/types"
)

// Item represents one bibliographic entry in CSL format.
type Item struct {
	ID             string  `yaml:"id"`
	Type           string  `yaml:"type"`
	Title          string  `yaml:"title"`
	Author         []Name  `yaml:"author,omitempty"`
	ContainerTitle string  `yaml:"container-title,omitempty"`
	Volume         string  `yaml:"volume,omitempty"`
	Issue          string  `yaml:"issue,omitempty"`
	Page           string  `yaml:"page,omitempty"`
	Issued         *Date   `yaml:"issued,omitempty"`
	DOI            string  `yaml:"DOI,omitempty"`
	PMID           string  `yaml:"PMID,omitempty"`
}

// Name represents a person's name in CSL format.
type Name struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// Date represents a date in CSL format using date-parts.
type Date struct {
	DateParts [][]int `yaml:"date-parts"`
}

// Format writes the metadata records as a CSL-YAML list to w.
func Format(metas []types.Metadata, w io.Writer) error {
	items := make([]Item, len(metas))
	for i, m := range metas {
		items[i] = toItem(m)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toItem converts one Metadata record to a CSL item.
func toItem(m types.Metadata) Item {
	item := Item{
		ID:             m.PMID,
		Type:           "article-journal",
		Title:          m.Title,
		ContainerTitle: m.Journal,
		Volume:         m.Volume,
		Issue:          m.Issue,
		// Extracted pages carry the BibTeX double-hyphen convention;
		// CSL uses plain ranges.
		Page: strings.ReplaceAll(m.Pages, "--", "-"),
		DOI:  m.DOI,
		PMID: m.PMID,
	}

	for _, a := range m.Authors {
		item.Author = append(item.Author, Name{
			Family: a.LastName,
			Given:  spacedInitials(a.Initials),
		})
	}

	if y, err := strconv.Atoi(m.Year); err == nil {
		item.Issued = &Date{DateParts: [][]int{{y}}}
	}
	return item
}

// spacedInitials renders an initials string as "T. N.".
func spacedInitials(initials string) string {
	parts := make([]string, 0, len(initials))
	for _, c := range initials {
		parts = append(parts, string(c)+".")
	}
	return strings.Join(parts, " ")
}
