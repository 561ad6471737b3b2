package voxstruct

import "testing"

func TestMergeBasic(t *testing.T) {
	got := Merge(
		map[string]interface{}{"a": float64(1), "b": float64(2)},
		map[string]interface{}{"b": float64(3), "d": float64(4)},
	)
	want := map[string]interface{}{"a": float64(1), "b": float64(3), "d": float64(4)}
	if !structEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMergeNested(t *testing.T) {
	got := Merge(
		map[string]interface{}{
			"a": []interface{}{float64(1), float64(2)},
			"b": map[string]interface{}{"c": float64(3), "d": float64(4)},
		},
		map[string]interface{}{
			"a": []interface{}{float64(11)},
			"b": map[string]interface{}{"c": float64(33)},
		},
	)
	want := map[string]interface{}{
		"a": []interface{}{float64(11), float64(2)},
		"b": map[string]interface{}{"c": float64(33), "d": float64(4)},
	}
	if !structEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMergeSingleAndEmpty(t *testing.T) {
	a := map[string]interface{}{"a": float64(1)}
	if got := Merge(a); !structEqual(got, a) {
		t.Fatalf("merge([a]) should equal a, got %v", got)
	}
	if got := Merge(); got != nil {
		t.Fatalf("merge([]) should be nil, got %v", got)
	}
}
