package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns/internal/app"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(app.IO{In: strings.NewReader(input), Out: &out, Err: &errOut})
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_ExportToFlagPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	out, err := run(t, "1\n20\nLunch\n5\n7\n", "--report", path, "--currency", "€")
	require.NoError(t, err)
	assert.Contains(t, out, "Report exported to "+path+".")
	assert.Contains(t, out, "Thank you for using Expense Tracker!")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Expense: Lunch - €20.00\n")
	assert.Contains(t, string(got), "Net Balance: -€20.00\n")
}

func TestRoot_ConfigFileThenFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "patterns.yaml")
	fromFile := filepath.Join(dir, "from-file.txt")
	fromFlag := filepath.Join(dir, "from-flag.txt")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report_path: "+fromFile+"\ncurrency_symbol: £\n"), 0o600))

	_, err := run(t, "2\n3\nGift\n5\n7\n", "--config", cfgPath)
	require.NoError(t, err)
	got, err := os.ReadFile(fromFile)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Income: Gift - £3.00\n")

	_, err = run(t, "5\n7\n", "--config", cfgPath, "--report", fromFlag)
	require.NoError(t, err)
	assert.FileExists(t, fromFlag)
}

func TestRoot_EmptyReportPathRejected(t *testing.T) {
	_, err := run(t, "7\n", "--report", "")
	assert.Error(t, err)
}
