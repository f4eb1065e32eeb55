package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresInstitutionFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "robotics"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "institution")
}

func TestSearchCmd_PrintsResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-i", "I42", "robotics"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchInstitution = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Results:")
	assert.Contains(t, buf.String(), "professors.md")
	assert.Contains(t, buf.String(), "0.93")
	assert.Contains(t, buf.String(), "# Jane Doe")
}

func TestSearchCmd_PrintsAnswer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	profileSearchService = &mockProfileSearchService{
		result: &driven.RetrievalResult{Answer: "Jane Doe works on robotics."},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-i", "I42", "--answer", "who works on robotics?"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchInstitution = ""
		searchAnswer = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Jane Doe works on robotics.")
}

func TestSearchCmd_TooBroadQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	profileSearchService = &mockProfileSearchService{err: domain.ErrQueryTooBroad}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "-i", "I42", "a OR b OR c OR d OR e OR f"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchInstitution = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too broad")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	profileSearchService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "-i", "I42", "robotics"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchInstitution = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestOutputSearchTable_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchTable(rootCmd, &driven.RetrievalResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "# Jane Doe", firstLine("\n  # Jane Doe\nRobotics."))
	assert.Equal(t, "", firstLine("  \n\n"))
}
