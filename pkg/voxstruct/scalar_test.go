package voxstruct

import "testing"

func TestPathifyScenario(t *testing.T) {
	if got := Pathify([]interface{}{"$TOP", "a", "b"}, 1); got != "a.b" {
		t.Fatalf("expected a.b, got %q", got)
	}
	if got := Pathify([]interface{}{}, 0); got != "<root>" {
		t.Fatalf("expected <root>, got %q", got)
	}
}

func TestPathifyUnknownPath(t *testing.T) {
	if got := Pathify(float64(5)); got != "<unknown-path:5>" {
		t.Fatalf("expected <unknown-path:5>, got %q", got)
	}
}

func TestSliceNegativeIndices(t *testing.T) {
	if got := Slice("hello world", -5, -1); got != "worl" {
		t.Fatalf("expected worl, got %q", got)
	}
	xs := []interface{}{float64(1), float64(2), float64(3), float64(4)}
	out := Slice(xs, -2, 100)
	want := []interface{}{float64(3), float64(4)}
	if !structEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestSliceEmptyRange(t *testing.T) {
	if got := Slice("abc", 2, 1); got != "" {
		t.Fatalf("expected empty string for inverted range, got %q", got)
	}
}

func TestJsonifyRoundTrip(t *testing.T) {
	v := map[string]interface{}{"b": float64(2), "a": float64(1)}
	s, err := Jsonify(v)
	if err != nil {
		t.Fatalf("Jsonify: %v", err)
	}
	s2, err := Jsonify(v)
	if err != nil {
		t.Fatalf("Jsonify: %v", err)
	}
	if s != s2 {
		t.Fatalf("expected stable Jsonify output with sorted keys, got %q vs %q", s, s2)
	}
}

func TestJsonifyOffsetIndentsContinuationLines(t *testing.T) {
	s, err := Jsonify(map[string]interface{}{"a": float64(1)}, 2)
	if err != nil {
		t.Fatalf("Jsonify: %v", err)
	}
	want := "{\n    \"a\": 1\n  }"
	if s != want {
		t.Fatalf("expected %q, got %q", want, s)
	}
}

func TestPadDefaultsWidthTo44(t *testing.T) {
	got := Pad("x", 0, "")
	if len(got) != 44 {
		t.Fatalf("expected default width 44, got length %d (%q)", len(got), got)
	}
}
