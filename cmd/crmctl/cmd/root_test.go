package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { indexesDryRun = false })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"create-admin", "ensure-indexes", "import-leads", "run-job"} {
		assert.True(t, names[want], want)
	}
}

func TestEnsureIndexesDryRunPrintsPlan(t *testing.T) {
	out, err := execute(t, "ensure-indexes", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "COLLECTION")
	assert.Contains(t, out, "teams")
	assert.Contains(t, out, "companies")
	assert.Contains(t, out, "true")
}

func TestImportLeadsNeedsFile(t *testing.T) {
	_, err := execute(t, "import-leads")
	assert.Error(t, err)

	_, err = execute(t, "import-leads", "/nonexistent/leads.xlsx")
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Empty(t, firstNonEmpty("", ""))
}
