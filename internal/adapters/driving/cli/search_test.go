package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

func sampleResults() domain.ResultSet {
	return domain.ResultSet{
		Exact: []domain.ExactResult{
			{Item: "std/vec/struct.Vec", Fragment: fragment("method.new")},
			{Item: "std/vec/struct.Vec", Fragment: fragment("method.push")},
		},
		Vague: []domain.VagueResult{
			{Item: "std/fmt/index", Contexts: []string{"uses Vec internally"}},
		},
	}
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSearchCmd_RequiresDocsetAndQuery(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := runRoot(t, "search", "rust")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 arg(s)")
}

func TestSearchCmd_PrintsNumberedListing(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.results = sampleResults()

	out, _, err := runRoot(t, "search", "-p", "rust", "Vec")

	require.NoError(t, err)
	assert.Contains(t, out, "Searching for `Vec`...")
	assert.Contains(t, out, "Exact matches in `rust`:")
	// Group head carries the item, the follower only its fragment.
	assert.Contains(t, out, "   1  std/vec/struct.Vec, #method.new")
	assert.Contains(t, out, "   2  #method.push")
	assert.NotContains(t, out, "2  std/vec/struct.Vec")
	// Vague results continue the numbering.
	assert.Contains(t, out, "Mentions in other files from `rust`:")
	assert.Contains(t, out, "   3  std/fmt/index")
	assert.Contains(t, out, "...uses Vec internally...")
}

func TestSearchCmd_EmptyResults(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := runRoot(t, "search", "rust", "nothing")

	require.NoError(t, err)
	assert.Contains(t, out, "No exact matches in `rust`.")
	// Without --precise there is no mentions section at all.
	assert.NotContains(t, out, "Mentions")
}

func TestSearchCmd_BuildsFingerprint(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := runRoot(t, "search", "-i", "-p", "-w", "rust", "push", "back")

	require.NoError(t, err)
	assert.Equal(t, domain.SearchOptions{
		// Whole-word mode wraps the joined query in spaces.
		Query:  " push back ",
		Docset: "rust",
		Flags: domain.SearchFlags{
			CaseInsensitive: true,
			Precise:         true,
			Whole:           true,
		},
	}, search.gotOpts)
}

func TestSearchCmd_OpenResolvesExact(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.results = sampleResults()

	out, _, err := runRoot(t, "search", "-p", "-o", "2", "rust", "Vec")

	require.NoError(t, err)
	require.NotNil(t, search.openedSel)
	assert.Equal(t, "rust", search.openedDocset)
	assert.Equal(t, "std/vec/struct.Vec", search.openedSel.Item)
	require.NotNil(t, search.openedSel.Fragment)
	assert.Equal(t, "method.push", *search.openedSel.Fragment)
	assert.NotContains(t, out, "Exact matches", "opening suppresses the listing")
}

func TestSearchCmd_OpenResolvesVague(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.results = sampleResults()

	_, _, err := runRoot(t, "search", "-p", "-o", "3", "rust", "Vec")

	require.NoError(t, err)
	require.NotNil(t, search.openedSel)
	assert.Equal(t, "std/fmt/index", search.openedSel.Item)
	assert.Nil(t, search.openedSel.Fragment)
}

func TestSearchCmd_OpenIgnoreFragment(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.results = sampleResults()

	_, _, err := runRoot(t, "search", "-p", "-f", "-o", "1", "rust", "Vec")

	require.NoError(t, err)
	require.NotNil(t, search.openedSel)
	assert.Equal(t, "std/vec/struct.Vec", search.openedSel.Item)
	assert.Nil(t, search.openedSel.Fragment)
}

func TestSearchCmd_OpenOutOfBounds(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.results = sampleResults()

	out, errOut, err := runRoot(t, "search", "-p", "-o", "99", "rust", "Vec")

	require.NoError(t, err)
	assert.Nil(t, search.openedSel)
	// Falls back to the full listing, warning printed after it.
	assert.Contains(t, out, "Exact matches in `rust`:")
	assert.Contains(t, errOut, "`--open 99` is out of bounds.")
}

func TestSearchCmd_OpenNonNumeric(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.results = sampleResults()

	out, errOut, err := runRoot(t, "search", "-p", "-o", "first", "rust", "Vec")

	require.NoError(t, err)
	assert.Nil(t, search.openedSel)
	assert.Contains(t, out, "Exact matches in `rust`:")
	assert.Contains(t, errOut, "`--open` requires a number.")
}

func TestSearchCmd_ServiceWarningsPrintAfterListing(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.warnings = []string{"Could not write cache: disk full."}

	_, errOut, err := runRoot(t, "search", "rust", "Vec")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Could not write cache: disk full.")
}

func TestSearchCmd_InvalidColumnsWarns(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	_, errOut, err := runRoot(t, "search", "-c", "wide", "rust", "Vec")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Invalid number of columns.")
}

func TestSearchCmd_ServiceErrorFails(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.err = domain.ErrNotDownloaded

	_, _, err := runRoot(t, "search", "rust", "Vec")

	assert.ErrorIs(t, err, domain.ErrNotDownloaded)
}
