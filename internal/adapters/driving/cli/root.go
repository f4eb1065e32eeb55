// Package cli implements the profscout command-line interface using cobra.
// Commands talk to the core services through the driving ports; service
// wiring happens once in Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profscout/internal/adapters/driven/config/file"
	"github.com/custodia-labs/profscout/internal/adapters/driven/mixedbread"
	"github.com/custodia-labs/profscout/internal/adapters/driven/openalex"
	"github.com/custodia-labs/profscout/internal/adapters/driven/progress"
	"github.com/custodia-labs/profscout/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
	"github.com/custodia-labs/profscout/internal/core/services"
	"github.com/custodia-labs/profscout/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

// defaultStoreBase is the base name for scoped profile stores when none is
// configured.
const defaultStoreBase = "profscout"

var verbose bool

// Services injected into commands. Wired by initServices; tests replace
// them directly.
var (
	configStore          driven.ConfigStore
	runStore             driven.HarvestRunStore
	ingestService        driving.IngestService
	profileSearchService driving.ProfileSearchService
	directoryService     driving.DirectoryService
	progressBroadcaster  *services.Broadcaster
)

var rootCmd = &cobra.Command{
	Use:   "profscout",
	Short: "Harvest and search researcher profiles from OpenAlex",
	Long: `profscout resolves academic institutions against OpenAlex, harvests
their affiliated researchers, synthesizes markdown profile documents, and
indexes them into per-institution semantic stores for retrieval.

Configuration lives in ~/.profscout/config.toml. The indexing backend
requires mixedbread.api_key (or the MXBAI_API_KEY environment variable).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the services and runs the root command.
func Execute() error {
	if err := initServices(); err != nil {
		return err
	}
	defer closeServices()

	return rootCmd.Execute()
}

// initServices builds the adapter stack from configuration. Components with
// missing configuration are left nil; commands report what is missing.
func initServices() error {
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = store

	graph := openalex.NewClient(openalex.Config{
		Mailto: store.GetString("openalex.mailto"),
	})
	directoryService = services.NewDirectoryService(graph)

	progressBroadcaster = services.NewBroadcaster(progress.NewLogSink())
	resolver := services.NewResolver(graph)
	harvester := services.NewHarvester(graph, progressBroadcaster)

	if runStore == nil {
		rs, err := sqlite.NewStore("")
		if err != nil {
			logger.Warn("Harvest history disabled: %v", err)
		} else {
			runStore = rs
		}
	}

	apiKey := store.GetString("mixedbread.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("MXBAI_API_KEY")
	}
	if apiKey == "" {
		logger.Debug("No mixedbread API key configured; harvest and search are unavailable")
		return nil
	}

	baseName := store.GetString("mixedbread.store")
	if baseName == "" {
		baseName = defaultStoreBase
	}

	index, err := mixedbread.NewClient(mixedbread.Config{APIKey: apiKey})
	if err != nil {
		return fmt.Errorf("configuring index backend: %w", err)
	}

	storeManager := services.NewStoreManager(index, baseName)
	profileSearchService = services.NewRetrievalService(index, baseName)
	ingestService = services.NewIngestService(resolver, harvester, storeManager, runStore)

	return nil
}

func closeServices() {
	if runStore != nil {
		if err := runStore.Close(); err != nil {
			logger.Warn("Closing run store: %v", err)
		}
	}
}
