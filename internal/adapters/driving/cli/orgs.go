package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	orgsLimit    int
	authorsLimit int
)

var orgsCmd = &cobra.Command{
	Use:   "orgs [query]",
	Short: "Search OpenAlex institutions",
	Long: `Searches institutions by name, city, or region and prints a summary list.
Useful for finding the canonical identifier to harvest.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrgs,
}

var authorsCmd = &cobra.Command{
	Use:   "authors [query]",
	Short: "Search OpenAlex authors",
	Long:  `Searches authors by name or keywords and prints a summary list.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthors,
}

func init() {
	orgsCmd.Flags().IntVarP(&orgsLimit, "limit", "n", 20, "maximum number of results")
	authorsCmd.Flags().IntVarP(&authorsLimit, "limit", "n", 20, "maximum number of results")
	rootCmd.AddCommand(orgsCmd)
	rootCmd.AddCommand(authorsCmd)
}

func runOrgs(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	orgs, err := directoryService.SearchOrganizations(cmd.Context(), args[0], orgsLimit)
	if err != nil {
		return fmt.Errorf("institution search failed: %w", err)
	}

	if len(orgs) == 0 {
		cmd.Println("No institutions found.")
		return nil
	}

	for i, org := range orgs {
		cmd.Printf("  [%d] %s", i+1, org.DisplayName)
		if org.CountryCode != "" {
			cmd.Printf(" (%s)", org.CountryCode)
		}
		cmd.Println()
		cmd.Printf("      %s\n", org.ID)
		if org.HomepageURL != "" {
			cmd.Printf("      %s\n", org.HomepageURL)
		}
		cmd.Println()
	}

	return nil
}

func runAuthors(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	authors, err := directoryService.SearchResearchers(cmd.Context(), args[0], authorsLimit)
	if err != nil {
		return fmt.Errorf("author search failed: %w", err)
	}

	if len(authors) == 0 {
		cmd.Println("No authors found.")
		return nil
	}

	for i, a := range authors {
		cmd.Printf("  [%d] %s (works: %d, cited by: %d)\n", i+1, a.DisplayName, a.WorksCount, a.CitedByCount)
		if a.LastKnownInstitution != "" {
			cmd.Printf("      %s\n", a.LastKnownInstitution)
		}
		cmd.Printf("      %s\n", a.ID)
		cmd.Println()
	}

	return nil
}
