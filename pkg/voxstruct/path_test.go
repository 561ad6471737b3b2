package voxstruct

import "testing"

func TestGetPathDottedDescent(t *testing.T) {
	store := map[string]interface{}{
		"x": map[string]interface{}{
			"y": map[string]interface{}{"z": float64(9)},
		},
	}
	got := GetPath(store, "x.y.z", nil)
	if got != float64(9) {
		t.Fatalf("expected 9, got %v", got)
	}
}

func TestGetPathMissingSegmentIsNilNotError(t *testing.T) {
	store := map[string]interface{}{"x": map[string]interface{}{}}
	if got := GetPath(store, "x.y.z", nil); got != nil {
		t.Fatalf("expected nil for a missing segment, got %v", got)
	}
}
