// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

// EFetch XML document structures. Field tags mirror the PubMed DTD
// hierarchy: PubmedArticleSet > PubmedArticle > MedlineCitation/PubmedData.

type articleSet struct {
	Articles []Article `xml:"PubmedArticle"`
}

// Article is one fetched PubMed article: the citation proper plus the
// PubMed bookkeeping data (external identifier list).
type Article struct {
	MedlineCitation MedlineCitation `xml:"MedlineCitation"`
	PubmedData      PubmedData      `xml:"PubmedData"`
}

// MedlineCitation holds the citation node of a PubMed article.
type MedlineCitation struct {
	PMID        string             `xml:"PMID"`
	Article     ArticleNode        `xml:"Article"`
	JournalInfo MedlineJournalInfo `xml:"MedlineJournalInfo"`
}

// ArticleNode holds the article metadata: title, journal, authors, pagination.
type ArticleNode struct {
	Title      string      `xml:"ArticleTitle"`
	Journal    Journal     `xml:"Journal"`
	AuthorList []docAuthor `xml:"AuthorList>Author"`
	Pagination Pagination  `xml:"Pagination"`
}

// Journal holds the journal metadata with its alternate name fields.
type Journal struct {
	Title           string       `xml:"Title"`
	ISOAbbreviation string       `xml:"ISOAbbreviation"`
	Issue           JournalIssue `xml:"JournalIssue"`
}

// JournalIssue holds volume, issue, and publication date.
type JournalIssue struct {
	Volume  string  `xml:"Volume"`
	Issue   string  `xml:"Issue"`
	PubDate PubDate `xml:"PubDate"`
}

// PubDate holds the publication date; only the year is used.
type PubDate struct {
	Year string `xml:"Year"`
}

// Pagination holds the MEDLINE page range (e.g. "120-35").
type Pagination struct {
	MedlinePgn string `xml:"MedlinePgn"`
}

// MedlineJournalInfo carries the MEDLINE abbreviated journal title.
type MedlineJournalInfo struct {
	MedlineTA string `xml:"MedlineTA"`
}

type docAuthor struct {
	LastName string `xml:"LastName"`
	Initials string `xml:"Initials"`
}

// PubmedData holds the typed external identifier list.
type PubmedData struct {
	ArticleIDs []ArticleID `xml:"ArticleIdList>ArticleId"`
}

// ArticleID is one typed external identifier (kinds include "pubmed",
// "doi", "pmc", "pii").
type ArticleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}
