package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffAgainstReportsNoDifferences(t *testing.T) {
	dir := t.TempDir()
	against := filepath.Join(dir, "against.yml")
	require.NoError(t, os.WriteFile(against, []byte("a: 1\n"), 0644))

	_, changed, err := diffAgainst(map[string]interface{}{"a": float64(1)}, against)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDiffAgainstReportsDifferences(t *testing.T) {
	dir := t.TempDir()
	against := filepath.Join(dir, "against.yml")
	require.NoError(t, os.WriteFile(against, []byte("a: 1\n"), 0644))

	report, changed, err := diffAgainst(map[string]interface{}{"a": float64(2)}, against)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotEmpty(t, report)
}
