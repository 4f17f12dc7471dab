package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubtex/internal/cite"
	"github.com/pdiddy/pubtex/internal/pubmed"
	"github.com/pdiddy/pubtex/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pubtex/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [PMIDs...]",
	Short: "Render PubMed articles as BibTeX records",
	Long: `Fetch retrieves the metadata for each PubMed ID and prints one BibTeX
record per article, separated by blank lines. A PMID that cannot be
resolved is reported on stderr and the remaining PMIDs still run; the
exit status is non-zero if any PMID failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("journal-mode", "", "journal name variant: full, abbrev, or iso (default full)")
	fetchCmd.Flags().String("format", "", "output format: bibtex or csl (default bibtex)")
	fetchCmd.Flags().String("email", "", "contact email sent to NCBI")
	fetchCmd.Flags().String("api-key", "", "NCBI API key for a higher rate limit")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := fetchConfig(cmd)
	if err != nil {
		return err
	}

	client := pubmed.NewClient(
		pubmed.WithEmail(cfg.Email),
		pubmed.WithAPIKey(cfg.APIKey),
		pubmed.WithUserAgent(cfg.UserAgent),
		pubmed.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)

	result := cite.RunBatch(cmd.Context(), client, args, cfg, os.Stdout, os.Stderr)
	if result.HasFailures() {
		return fmt.Errorf("%d identifier(s) failed", result.Failed())
	}
	return nil
}

// fetchConfig resolves the fetch configuration: flag values win over
// config file values, which win over loaded secrets and defaults.
func fetchConfig(cmd *cobra.Command) (types.FetchConfig, error) {
	mode, _ := cmd.Flags().GetString("journal-mode")
	if mode == "" {
		mode = viper.GetString("fetch.journal_mode")
	}
	if mode == "" {
		mode = string(types.JournalFull)
	}
	if !types.JournalMode(mode).Valid() {
		return types.FetchConfig{}, fmt.Errorf("invalid journal mode %q: must be full, abbrev, or iso", mode)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("fetch.format")
	}
	if format == "" {
		format = string(types.OutputBibTeX)
	}
	if f := types.OutputFormat(format); f != types.OutputBibTeX && f != types.OutputCSL {
		return types.FetchConfig{}, fmt.Errorf("invalid output format %q: must be bibtex or csl", format)
	}

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("fetch.email")
	}
	email = secretDefault("ncbi-email", email)

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = viper.GetString("fetch.api_key")
	}
	apiKey = secretDefault("ncbi-api-key", apiKey)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Email:       email,
		APIKey:      apiKey,
		JournalMode: types.JournalMode(mode),
		Format:      types.OutputFormat(format),
	}, nil
}
