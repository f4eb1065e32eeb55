// Command profscout harvests researcher profiles from OpenAlex and serves
// semantic retrieval over them, as a CLI and as an MCP server.
package main

import (
	"os"

	"github.com/custodia-labs/profscout/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
