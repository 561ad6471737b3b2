package voxstruct

import "testing"

func TestMergeCommandMapForm(t *testing.T) {
	spec := map[string]interface{}{
		"a": float64(1),
		"$MERGE": map[string]interface{}{"b": float64(2)},
	}
	got := Transform(map[string]interface{}{}, spec, nil)
	want := map[string]interface{}{"a": float64(1), "b": float64(2)}
	if !structEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestChildCommandStampsEveryDataKey(t *testing.T) {
	data := map[string]interface{}{
		"items": map[string]interface{}{
			"a": float64(1),
			"b": float64(2),
		},
	}
	spec := map[string]interface{}{
		"items": map[string]interface{}{
			"$CHILD": "`$COPY`",
		},
	}
	got := Transform(data, spec, nil)
	gm := got.(map[string]interface{})
	items := gm["items"].(map[string]interface{})
	if items["a"] != float64(1) || items["b"] != float64(2) {
		t.Fatalf("expected $CHILD to stamp every data key with $COPY, got %v", items)
	}
}

func TestExactCommand(t *testing.T) {
	spec := []interface{}{"`$EXACT`", "red", "blue"}

	if _, err := Validate("red", spec, nil, nil); err != nil {
		t.Fatalf("expected red to satisfy $EXACT[red,blue], got %v", err)
	}
	if _, err := Validate("green", spec, nil, nil); err == nil {
		t.Fatalf("expected green to fail $EXACT[red,blue]")
	}
}
