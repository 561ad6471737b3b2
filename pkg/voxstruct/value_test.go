package voxstruct

import "testing"

func TestCloneIsStructurallyEqualAndIndependent(t *testing.T) {
	orig := map[string]interface{}{"a": []interface{}{float64(1), float64(2)}}
	clone := Clone(orig).(map[string]interface{})

	if !structEqual(orig, clone) {
		t.Fatalf("clone should be structurally equal to original")
	}

	clone["a"].([]interface{})[0] = float64(99)
	if orig["a"].([]interface{})[0] != float64(1) {
		t.Fatalf("mutating the clone must not affect the original")
	}
}

func TestSetPropListIndex(t *testing.T) {
	xs := Clone([]interface{}{float64(1), float64(2), float64(3)})
	xs = SetProp(xs, 1, "y")
	got, ok := GetProp(xs, 1)
	if !ok || got != "y" {
		t.Fatalf("expected y at index 1, got %v, %v", got, ok)
	}
}

func TestSetPropMapKeyNilDeletes(t *testing.T) {
	m := Clone(map[string]interface{}{"k": float64(1)})
	m = SetProp(m, "k", nil)
	_, ok := GetProp(m, "k")
	if ok {
		t.Fatalf("expected key to be absent after SetProp(..., nil)")
	}
}

func TestSetPropListIndexNilDeletes(t *testing.T) {
	xs := []interface{}{float64(10), float64(20), float64(30)}
	out := SetProp(Clone(xs), 1, nil)
	want := []interface{}{float64(10), float64(30)}
	if !structEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestGetElemNegativeIndex(t *testing.T) {
	xs := []interface{}{float64(1), float64(2), float64(3)}
	got, ok := GetElem(xs, -1)
	if !ok || got != float64(3) {
		t.Fatalf("expected -1 to resolve to the last element, got %v, %v", got, ok)
	}
	if _, ok := GetElem(xs, -4); ok {
		t.Fatalf("expected an out-of-range negative index to fail")
	}
}

func TestGetElemRejectsMapNode(t *testing.T) {
	if _, ok := GetElem(map[string]interface{}{"a": float64(1)}, "a"); ok {
		t.Fatalf("expected GetElem to refuse a map node")
	}
}

func TestWalkIdentity(t *testing.T) {
	v := map[string]interface{}{"a": []interface{}{float64(1), "two"}}
	out := Walk(v, func(key, val, parent interface{}, path []string) interface{} {
		return val
	})
	if !structEqual(v, out) {
		t.Fatalf("walk with identity apply should reproduce the input, got %v", out)
	}
}
