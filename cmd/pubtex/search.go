package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubtex/internal/pubmed"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search PubMed and print matching PMIDs",
	Long: `Search runs an ESearch query against PubMed and prints the matching
PMIDs one per line, ready to feed into fetch.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "PubMed search term")
	searchCmd.Flags().Int("max-results", 0, "maximum number of PMIDs to return (default 20)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		return fmt.Errorf("provide a search term with --query")
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("search.max_results")
	}

	email := secretDefault("ncbi-email", viper.GetString("search.email"))
	apiKey := secretDefault("ncbi-api-key", viper.GetString("search.api_key"))

	client := pubmed.NewClient(
		pubmed.WithEmail(email),
		pubmed.WithAPIKey(apiKey),
		pubmed.WithUserAgent(defaultUserAgent),
		pubmed.WithHTTPClient(&http.Client{Timeout: defaultTimeout}),
	)

	pmids, err := client.Search(cmd.Context(), query, maxResults)
	if err != nil {
		return err
	}
	if len(pmids) == 0 {
		fmt.Fprintln(os.Stderr, "No results found.")
		return nil
	}
	for _, pmid := range pmids {
		fmt.Println(pmid)
	}
	return nil
}
