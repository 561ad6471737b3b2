package voxstruct

import "testing"

func TestSelectScenario(t *testing.T) {
	children := []interface{}{
		map[string]interface{}{"a": float64(1), "b": float64(2)},
		map[string]interface{}{"a": float64(2), "b": float64(2)},
		map[string]interface{}{"a": float64(1), "b": float64(3)},
	}
	query := map[string]interface{}{"a": float64(1)}

	got := Select(children, query)
	want := []interface{}{
		map[string]interface{}{"a": float64(1), "b": float64(2)},
		map[string]interface{}{"a": float64(1), "b": float64(3)},
	}
	if !structEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
