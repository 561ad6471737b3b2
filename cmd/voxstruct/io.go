package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/geofffranks/simpleyaml"
	"gopkg.in/yaml.v3"
)

// readInput reads path ("-" for stdin) and decodes it as YAML or JSON
// (both are valid YAML, so one decoder handles both), normalizing the
// result into the map[string]interface{}/[]interface{} shape every
// voxstruct.Value operation expects.
func readInput(path string) (interface{}, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	y, err := simpleyaml.NewYaml(data)
	if err != nil {
		return nil, ansiErrorf("@R{Error parsing} @m{%s}: %s", path, err.Error())
	}
	raw, err := y.Map()
	if err == nil {
		return normalize(raw), nil
	}
	arr, err := y.Array()
	if err == nil {
		return normalize(arr), nil
	}
	return nil, ansiErrorf("@R{Root of document} @m{%s} @R{is not a hash/map or array}", path)
}

func readFile(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ansiErrorf("@R{Error reading file} @m{%s}: %s", path, err.Error())
	}
	defer f.Close()
	return io.ReadAll(f)
}

// normalize converts YAML's map[interface{}]interface{} into
// map[string]interface{}, and integers (YAML's native int) into
// float64, recursively, so the tree matches voxstruct's JSON-native
// Value model exactly regardless of which decoder produced it.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = normalize(val)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}

// writeOutput renders val as YAML or JSON to stdout.
func writeOutput(val interface{}, format string, indent int) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", spaces(indent))
		return enc.Encode(val)
	default:
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(indent)
		defer enc.Close()
		return enc.Encode(val)
	}
}

// writeOutputTo renders val as YAML to an arbitrary writer — used by
// diffAgainst to stage a comparison file on disk.
func writeOutputTo(w io.Writer, val interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(val)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
