package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status [institution]",
	Short: "Check an institution's profile store",
	Long:  `Checks whether the institution's profile store exists and reports its metadata.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if profileSearchService == nil {
		return errors.New("search service not configured (set mixedbread.api_key)")
	}

	status, err := profileSearchService.Status(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrStoreNotFound) {
		cmd.Printf("No profile store found for %s. Run 'profscout harvest' first.\n", args[0])
		return nil
	}
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	cmd.Printf("Store: %s\n", status.StoreName)
	if status.Info != nil {
		cmd.Printf("Documents: %d\n", status.Info.FileCount)
		if status.Info.ExternalID != "" {
			cmd.Printf("Backend ID: %s\n", status.Info.ExternalID)
		}
	}
	cmd.Println("Store is accessible.")

	return nil
}
