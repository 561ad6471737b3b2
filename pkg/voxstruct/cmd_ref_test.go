package voxstruct

import "testing"

func TestRefExpandsAgainstSpecTree(t *testing.T) {
	specRoot := map[string]interface{}{
		"a":   []interface{}{"`$REF`", "sub"},
		"sub": map[string]interface{}{"v": "`leaf`"},
	}
	data := map[string]interface{}{"leaf": float64(5)}

	got := Transform(data, specRoot, map[string]interface{}{"$SPEC": specRoot})
	gm, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map result, got %T", got)
	}

	a, ok := gm["a"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected a to expand to a map, got %v", gm["a"])
	}
	if a["v"] != float64(5) {
		t.Fatalf("expected referenced sub-spec to resolve against data, got %v", a["v"])
	}
}

func TestRefStopsOnNilData(t *testing.T) {
	specRoot := map[string]interface{}{
		"a": []interface{}{"`$REF`", "sub"},
		"sub": map[string]interface{}{
			"v":    "`leaf`",
			"next": []interface{}{"`$REF`", "sub"},
		},
	}
	data := map[string]interface{}{}

	got := Transform(data, specRoot, map[string]interface{}{"$SPEC": specRoot})
	gm := got.(map[string]interface{})
	if gm["a"] != nil {
		t.Fatalf("expected $REF to stop expanding once its data slot is nil, got %v", gm["a"])
	}
}
