package voxstruct

import "testing"

func TestPackBuildsMapKeyedBySourceKey(t *testing.T) {
	data := map[string]interface{}{
		"items": map[string]interface{}{
			"a": map[string]interface{}{"n": float64(1)},
			"b": map[string]interface{}{"n": float64(2)},
		},
	}
	spec := map[string]interface{}{
		"out": []interface{}{
			"`$PACK`",
			"items",
			map[string]interface{}{"v": "`n`"},
		},
	}

	got := Transform(data, spec, nil)
	gm, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map result, got %T", got)
	}
	out, ok := gm["out"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected out to be a map, got %T", gm["out"])
	}

	a, _ := out["a"].(map[string]interface{})
	b, _ := out["b"].(map[string]interface{})
	if a == nil || a["v"] != float64(1) {
		t.Fatalf("expected out[a].v == 1, got %v", out["a"])
	}
	if b == nil || b["v"] != float64(2) {
		t.Fatalf("expected out[b].v == 2, got %v", out["b"])
	}
}
