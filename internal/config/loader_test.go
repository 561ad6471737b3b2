package config

import (
	"os"
	"testing"
)

func TestLoadEnvOverride(t *testing.T) {
	os.Setenv("VOXSTRUCT_OUTPUT_FORMAT", "json")
	defer os.Unsetenv("VOXSTRUCT_OUTPUT_FORMAT")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputFormat != "json" {
		t.Fatalf("expected env override to set json, got %s", cfg.OutputFormat)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/voxstruct.toml")
	if err != nil {
		t.Fatalf("Load should tolerate a missing config file, got %v", err)
	}
	if cfg.OutputFormat != "yaml" {
		t.Fatalf("expected defaults when file is missing, got %s", cfg.OutputFormat)
	}
}
