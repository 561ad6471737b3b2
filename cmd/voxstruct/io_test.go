package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConvertsInterfaceKeyedMaps(t *testing.T) {
	in := map[interface{}]interface{}{
		"a": 1,
		"b": []interface{}{map[interface{}]interface{}{"c": 2}},
	}
	out := normalize(in)

	m, ok := out.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1), m["a"])

	lst, ok := m["b"].([]interface{})
	assert.True(t, ok)
	nested, ok := lst[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(2), nested["c"])
}

func TestReadInputRoundTripsYAMLMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\nb:\n  c: two\n"), 0644))

	got, err := readInput(path)
	require.NoError(t, err)

	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), m["a"])
	nested, ok := m["b"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "two", nested["c"])
}

func TestReadInputEmptyFileIsNil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	got, err := readInput(path)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadInputRejectsScalarRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scalar.yml")
	require.NoError(t, os.WriteFile(path, []byte("just a string\n"), 0644))

	_, err := readInput(path)
	assert.Error(t, err)
}

func TestWriteOutputYAMLThenReadBackMatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")

	f, err := os.Create(path)
	require.NoError(t, err)
	val := map[string]interface{}{"a": float64(1), "b": "two"}
	require.NoError(t, writeOutputTo(f, val))
	require.NoError(t, f.Close())

	got, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, val, got)
}
