package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage harvest run history",
	Long:  `List and inspect completed harvest runs recorded in the local history database.`,
	RunE:  runRunsList,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded harvest runs",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Print the profile document of a harvest run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runStore == nil {
		return errors.New("harvest history not available")
	}

	runs, err := runStore.ListRuns(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No harvest runs recorded.")
		return nil
	}

	for _, run := range runs {
		indexed := "indexed"
		if !run.Indexed {
			indexed = "not indexed"
		}
		cmd.Printf("  %s  %s  %d researchers, %d page(s), %s\n",
			run.CreatedAt.Format(time.RFC3339), run.OrganizationKey,
			run.RecordCount, run.PagesFetched, indexed)
		cmd.Printf("      %s\n", run.ID)
	}

	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	if runStore == nil {
		return errors.New("harvest history not available")
	}

	run, err := runStore.GetRun(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting run: %w", err)
	}

	cmd.Print(run.Document)
	return nil
}
