// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/pdiddy/pubtex/pkg/types"
)

// sampleArticle returns a fully-populated article, the baseline for the
// field-removal tests below.
func sampleArticle() *Article {
	return &Article{
		MedlineCitation: MedlineCitation{
			PMID: "20230601",
			Article: ArticleNode{
				Title: "SCPS: a fast implementation of a spectral method for detecting protein families.",
				Journal: Journal{
					Title:           "BMC bioinformatics [electronic resource]",
					ISOAbbreviation: "BMC Bioinformatics",
					Issue: JournalIssue{
						Volume:  "11",
						Issue:   "1",
						PubDate: PubDate{Year: "2010"},
					},
				},
				AuthorList: []docAuthor{
					{LastName: "Nepusz", Initials: "T"},
					{LastName: "Sasidharan", Initials: "R"},
					{LastName: "Paccanaro", Initials: "A"},
				},
				Pagination: Pagination{MedlinePgn: "120-35"},
			},
			JournalInfo: MedlineJournalInfo{MedlineTA: "BMC Bioinformatics"},
		},
		PubmedData: PubmedData{
			ArticleIDs: []ArticleID{
				{IDType: "pubmed", Value: "20230601"},
				{IDType: "doi", Value: "10.1186/1471-2105-11-120"},
				{IDType: "pmc", Value: "PMC2852219"},
			},
		},
	}
}

func TestExtract(t *testing.T) {
	got, err := Extract(sampleArticle(), types.JournalFull)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got.PMID != "20230601" {
		t.Errorf("PMID = %q, want %q", got.PMID, "20230601")
	}
	// Trailing period dropped; the acronym stays untouched here.
	wantTitle := "SCPS: a fast implementation of a spectral method for detecting protein families"
	if got.Title != wantTitle {
		t.Errorf("Title = %q, want %q", got.Title, wantTitle)
	}
	// Electronic-resource suffix stripped from the full title.
	if got.Journal != "BMC bioinformatics" {
		t.Errorf("Journal = %q, want %q", got.Journal, "BMC bioinformatics")
	}
	if got.Year != "2010" {
		t.Errorf("Year = %q, want %q", got.Year, "2010")
	}
	if got.Volume != "11" {
		t.Errorf("Volume = %q, want %q", got.Volume, "11")
	}
	if got.Pages != "120--35" {
		t.Errorf("Pages = %q, want %q", got.Pages, "120--35")
	}
	if got.Issue != "1" {
		t.Errorf("Issue = %q, want %q", got.Issue, "1")
	}
	if got.DOI != "10.1186/1471-2105-11-120" {
		t.Errorf("DOI = %q, want %q", got.DOI, "10.1186/1471-2105-11-120")
	}
	wantAuthors := []types.Author{
		{LastName: "Nepusz", Initials: "T"},
		{LastName: "Sasidharan", Initials: "R"},
		{LastName: "Paccanaro", Initials: "A"},
	}
	if len(got.Authors) != len(wantAuthors) {
		t.Fatalf("len(Authors) = %d, want %d", len(got.Authors), len(wantAuthors))
	}
	for i, want := range wantAuthors {
		if got.Authors[i] != want {
			t.Errorf("Authors[%d] = %v, want %v", i, got.Authors[i], want)
		}
	}
}

func TestExtractJournalModes(t *testing.T) {
	tests := []struct {
		name string
		mode types.JournalMode
		want string
	}{
		{"full strips electronic suffix", types.JournalFull, "BMC bioinformatics"},
		{"abbrev uses MedlineTA", types.JournalAbbrev, "BMC Bioinformatics"},
		{"iso uses ISOAbbreviation", types.JournalISO, "BMC Bioinformatics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(sampleArticle(), tt.mode)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if got.Journal != tt.want {
				t.Errorf("Journal = %q, want %q", got.Journal, tt.want)
			}
		})
	}
}

func TestExtractMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Article)
		wantPath string
	}{
		{
			"title",
			func(a *Article) { a.MedlineCitation.Article.Title = "" },
			"MedlineCitation/Article/ArticleTitle",
		},
		{
			"year",
			func(a *Article) { a.MedlineCitation.Article.Journal.Issue.PubDate.Year = "" },
			"MedlineCitation/Article/Journal/JournalIssue/PubDate/Year",
		},
		{
			"volume",
			func(a *Article) { a.MedlineCitation.Article.Journal.Issue.Volume = "" },
			"MedlineCitation/Article/Journal/JournalIssue/Volume",
		},
		{
			"pages",
			func(a *Article) { a.MedlineCitation.Article.Pagination.MedlinePgn = "" },
			"MedlineCitation/Article/Pagination/MedlinePgn",
		},
		{
			"empty author list",
			func(a *Article) { a.MedlineCitation.Article.AuthorList = nil },
			"MedlineCitation/Article/AuthorList/Author",
		},
		{
			"author surname",
			func(a *Article) { a.MedlineCitation.Article.AuthorList[1].LastName = "" },
			"MedlineCitation/Article/AuthorList/Author/LastName",
		},
		{
			"author initials",
			func(a *Article) { a.MedlineCitation.Article.AuthorList[2].Initials = "" },
			"MedlineCitation/Article/AuthorList/Author/Initials",
		},
		{
			"full journal title",
			func(a *Article) { a.MedlineCitation.Article.Journal.Title = "" },
			"MedlineCitation/Article/Journal/Title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := sampleArticle()
			tt.mutate(art)
			_, err := Extract(art, types.JournalFull)
			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Extract error = %v, want MissingFieldError", err)
			}
			if missing.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", missing.Path, tt.wantPath)
			}
		})
	}
}

func TestExtractMissingJournalModeField(t *testing.T) {
	art := sampleArticle()
	art.MedlineCitation.JournalInfo.MedlineTA = ""

	// The abbrev path is gone but the other modes still resolve.
	if _, err := Extract(art, types.JournalAbbrev); err == nil {
		t.Error("Extract(abbrev) succeeded with MedlineTA missing")
	}
	if _, err := Extract(art, types.JournalFull); err != nil {
		t.Errorf("Extract(full): %v", err)
	}
	if _, err := Extract(art, types.JournalISO); err != nil {
		t.Errorf("Extract(iso): %v", err)
	}
}

func TestExtractTitleNormalization(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"trailing period dropped", "A title.", "A title"},
		{"only one period dropped", "A title..", "A title."},
		{"question mark kept", "Is this a title?", "Is this a title?"},
		{"whitespace trimmed", "  A title \n", "A title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := sampleArticle()
			art.MedlineCitation.Article.Title = tt.title
			got, err := Extract(art, types.JournalFull)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if got.Title != tt.want {
				t.Errorf("Title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}

func TestExtractPagesDoubling(t *testing.T) {
	tests := []struct {
		name  string
		pages string
		want  string
	}{
		{"range", "120-135", "120--135"},
		{"single page", "120", "120"},
		{"roman prefix doubled too", "iv-12", "iv--12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := sampleArticle()
			art.MedlineCitation.Article.Pagination.MedlinePgn = tt.pages
			got, err := Extract(art, types.JournalFull)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if got.Pages != tt.want {
				t.Errorf("Pages = %q, want %q", got.Pages, tt.want)
			}
		})
	}
}

func TestExtractDOISelection(t *testing.T) {
	tests := []struct {
		name string
		ids  []ArticleID
		want string
	}{
		{
			"doi among mixed kinds",
			[]ArticleID{
				{IDType: "pubmed", Value: "123"},
				{IDType: "doi", Value: "10.1000/xyz"},
				{IDType: "pmc", Value: "PMC1"},
			},
			"10.1000/xyz",
		},
		{
			"no doi kind",
			[]ArticleID{
				{IDType: "pubmed", Value: "123"},
				{IDType: "pmc", Value: "PMC1"},
			},
			"",
		},
		{"empty list", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := sampleArticle()
			art.PubmedData.ArticleIDs = tt.ids
			got, err := Extract(art, types.JournalFull)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if got.DOI != tt.want {
				t.Errorf("DOI = %q, want %q", got.DOI, tt.want)
			}
		})
	}
}

func TestExtractIssueOptional(t *testing.T) {
	art := sampleArticle()
	art.MedlineCitation.Article.Journal.Issue.Issue = ""
	got, err := Extract(art, types.JournalFull)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.Issue != "" {
		t.Errorf("Issue = %q, want empty", got.Issue)
	}
}

func TestExtractFromXML(t *testing.T) {
	var set articleSet
	if err := xml.Unmarshal([]byte(sampleEFetchXML), &set); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	if len(set.Articles) != 1 {
		t.Fatalf("len(Articles) = %d, want 1", len(set.Articles))
	}

	got, err := Extract(&set.Articles[0], types.JournalISO)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.Journal != "BMC Bioinformatics" {
		t.Errorf("Journal = %q, want %q", got.Journal, "BMC Bioinformatics")
	}
	if got.Pages != "120--35" {
		t.Errorf("Pages = %q, want %q", got.Pages, "120--35")
	}
	if len(got.Authors) != 2 || got.Authors[0].LastName != "Nepusz" || got.Authors[0].Initials != "T" {
		t.Errorf("Authors = %v", got.Authors)
	}
	if got.DOI != "10.1186/1471-2105-11-120" {
		t.Errorf("DOI = %q", got.DOI)
	}
}
