package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

var (
	searchInstitution string
	searchLimit       int
	searchAnswer      bool
	searchNoRerank    bool
	searchJSON        bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed researcher profiles",
	Long: `Performs a semantic search against one institution's profile store.

Use a single, focused natural language query. Overly long queries and
queries batching many OR clauses are rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchInstitution, "institution", "i", "", "OpenAlex institution identifier (required)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchAnswer, "answer", false, "generate an answer from the results")
	searchCmd.Flags().BoolVar(&searchNoRerank, "no-rerank", false, "disable result reranking")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.MarkFlagRequired("institution") //nolint:errcheck
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if profileSearchService == nil {
		return errors.New("search service not configured (set mixedbread.api_key)")
	}

	mode := domain.ModeSearch
	if searchAnswer {
		mode = domain.ModeAnswer
	}

	result, err := profileSearchService.Search(cmd.Context(), domain.SearchRequest{
		Query:           args[0],
		OrganizationKey: searchInstitution,
		TopK:            searchLimit,
		Rerank:          !searchNoRerank,
		Mode:            mode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQueryTooBroad) {
			return errors.New("query is too broad; use a single, focused natural language query")
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}

	return outputSearchTable(cmd, result)
}

func outputSearchJSON(cmd *cobra.Command, result *driven.RetrievalResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, result *driven.RetrievalResult) error {
	if result.Answer != "" {
		cmd.Println("Answer:")
		cmd.Println()
		cmd.Println("  " + result.Answer)
		cmd.Println()
	}

	if len(result.Hits) == 0 {
		if result.Answer == "" {
			cmd.Println("No results found.")
		}
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, hit := range result.Hits {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, hit.Filename, hit.Score)
		if snippet := firstLine(hit.Content); snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}

	return nil
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
