package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profscout/internal/adapters/driven/progress"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
)

var (
	harvestPageSize int
	harvestJSON     bool
)

var harvestCmd = &cobra.Command{
	Use:   "harvest [organization]",
	Short: "Harvest researcher profiles for an institution",
	Long: `Resolves the institution against OpenAlex, harvests affiliated
researchers that have an ORCID and recent citation activity, synthesizes
markdown profiles, and indexes them into the institution's semantic store.

The organization may be a free-text name, a canonical identifier like I42,
or a full OpenAlex URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().IntVar(&harvestPageSize, "page-size", 200, "page size used while paginating (1-200)")
	harvestCmd.Flags().BoolVar(&harvestJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured (set mixedbread.api_key)")
	}

	// Stream page-by-page progress to the terminal while the harvest runs.
	if progressBroadcaster != nil && !harvestJSON {
		progressBroadcaster.Attach(progress.NewWriterSink(cmd.OutOrStdout()))
	}

	result, err := ingestService.Harvest(cmd.Context(), driving.HarvestRequest{
		OrganizationQuery: args[0],
		PageSize:          harvestPageSize,
	})
	if err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}

	if harvestJSON {
		return outputHarvestJSON(cmd, result)
	}

	cmd.Printf("Organization: %s (%s)\n", result.Organization.ID, result.Organization.Key)
	cmd.Printf("Harvested %d researchers across %d page(s)\n", len(result.Researchers), result.PagesFetched)
	switch {
	case result.Indexed:
		cmd.Printf("Indexed into store %s\n", result.StoreName)
	case len(result.Researchers) == 0:
		cmd.Println("Nothing to index.")
	default:
		cmd.Printf("Warning: indexing failed; profiles were not uploaded to %s\n", result.StoreName)
	}
	if result.RunID != "" {
		cmd.Printf("Run recorded: %s\n", result.RunID)
	}

	return nil
}

func outputHarvestJSON(cmd *cobra.Command, result *driving.HarvestResult) error {
	summary := struct {
		OrganizationID string `json:"organization_id"`
		Key            string `json:"key"`
		Count          int    `json:"count"`
		PagesFetched   int    `json:"pages_fetched"`
		Store          string `json:"store"`
		Indexed        bool   `json:"indexed"`
		RunID          string `json:"run_id,omitempty"`
	}{
		OrganizationID: result.Organization.ID,
		Key:            result.Organization.Key,
		Count:          len(result.Researchers),
		PagesFetched:   result.PagesFetched,
		Store:          result.StoreName,
		Indexed:        result.Indexed,
		RunID:          result.RunID,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
