package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputFormat != "yaml" {
		t.Fatalf("expected default output format yaml, got %s", cfg.OutputFormat)
	}
	if !cfg.ColorOutput {
		t.Fatalf("expected color output on by default")
	}
	if cfg.IndentWidth != 2 {
		t.Fatalf("expected default indent width 2, got %d", cfg.IndentWidth)
	}
}
