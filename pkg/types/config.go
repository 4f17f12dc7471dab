package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubtex/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// JournalMode selects which journal name field is taken from the source
// document.
type JournalMode string

const (
	// JournalFull selects the full journal title.
	JournalFull JournalMode = "full"

	// JournalAbbrev selects the MEDLINE abbreviated title.
	JournalAbbrev JournalMode = "abbrev"

	// JournalISO selects the ISO abbreviation.
	JournalISO JournalMode = "iso"
)

// Valid reports whether m is one of the recognized journal modes.
func (m JournalMode) Valid() bool {
	switch m {
	case JournalFull, JournalAbbrev, JournalISO:
		return true
	}
	return false
}

// OutputFormat selects the citation output format.
type OutputFormat string

const (
	OutputBibTeX OutputFormat = "bibtex"
	OutputCSL    OutputFormat = "csl"
)

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is the contact address sent to NCBI with every request,
	// per the E-utilities usage policy.
	Email string `json:"email" yaml:"email"`

	// APIKey is an optional NCBI API key for a higher rate limit.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// JournalMode selects the journal name variant (default full).
	JournalMode JournalMode `json:"journal_mode" yaml:"journal_mode"`

	// Format selects the output format: bibtex or csl.
	Format OutputFormat `json:"format" yaml:"format"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is the contact address sent to NCBI with every request.
	Email string `json:"email" yaml:"email"`

	// APIKey is an optional NCBI API key for a higher rate limit.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the maximum number of PMIDs to return (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Search SearchConfig `json:"search" yaml:"search"`
}
