package voxstruct

import (
	"fmt"
	"strings"
)

// Validate checks data against a by-example spec, filling in spec
// defaults where data omits them and reconciling spec-declared types
// against the incoming data. It is transform (§ Inject) parameterized
// with the validator command set and a post-modify reconciliation pass.
//
// When errs is nil, a fresh collector is used and a non-empty result
// raises a fatal error carrying every accumulated message; callers that
// want to inspect partial errors instead should pass their own errs.
func Validate(data, spec interface{}, errs *MultiError, extra map[string]interface{}) (interface{}, error) {
	owned := errs == nil
	if owned {
		errs = &MultiError{}
	}
	result := runInjection(data, spec, extra, errs, postModify(false), false)
	if owned && !errs.Empty() {
		return result, errs.AsError()
	}
	return result, nil
}

// runInjection is the shared plumbing behind Transform, Validate, $ONE's
// per-alternative trial, and Select: it builds a store, wraps spec in a
// fresh arena, and injects, letting the caller supply the errs
// collector and the optional post-modify hook.
func runInjection(data, spec interface{}, extra map[string]interface{}, errs *MultiError, modify ModifyFunc, exact bool) interface{} {
	store := NewStore(data, extra)
	if exact {
		store["$EXACT"] = true
	}
	root := map[string]interface{}{"$TOP": Clone(spec)}
	inj := &Inj{
		Mode:    ModeVal,
		Key:     "$TOP",
		Base:    "$TOP",
		Dparent: store,
		Dpath:   []interface{}{},
		Errs:    errs,
		Meta:    map[string]interface{}{},
		Handler: DefaultHandler,
		Modify:  modify,
		Path:    []interface{}{"$TOP"},
		boxes:   []*box{rootBox(root)},
	}
	return Inject(nil, store, inj)
}

// postModify implements the §4.5 post-modify reconciliation pass: it
// runs after every node is injected, comparing the (possibly
// command-resolved) spec value against the corresponding data value.
func postModify(exact bool) ModifyFunc {
	return func(val interface{}, key interface{}, parent interface{}, inj *Inj) {
		if s, ok := val.(string); ok && isLeftoverCommand(s) {
			return
		}
		// A command-keyed entry (e.g. a comparator's threshold) is an
		// argument to its command, not a value with a data counterpart.
		if ks, ok := key.(string); ok && isCommandKey(ks) {
			return
		}

		data, _ := GetProp(inj.Dparent, inj.Key)

		if IsMap(val) && IsMap(data) {
			reconcileMap(val.(map[string]interface{}), data.(map[string]interface{}), inj)
			return
		}
		if IsList(val) && IsList(data) {
			return // elements already reconciled individually
		}
		if val == nil {
			return
		}

		wantT := Typify(val)
		gotT := Typify(data)
		if wantT != gotT {
			inj.Errs.Add(fmt.Sprintf("Expected %s at %s, found %s: %s.",
				wantT, Pathify(inj.Path, 1), gotT, Stringify(data)))
			return
		}

		if IsNode(val) {
			return
		}

		if exact && !structEqual(val, data) {
			inj.Errs.Add(fmt.Sprintf("Value at %s should equal %s, but found %s.",
				Pathify(inj.Path, 1), Stringify(val), Stringify(data)))
		}

		inj.SetAncestor(1, data)
	}
}

func reconcileMap(sm, dm map[string]interface{}, inj *Inj) {
	open := false
	if ov, ok := sm["$OPEN"]; ok {
		if ob, ok := ov.(bool); ok {
			open = ob
		}
	}
	if len(sm) > 0 && !open {
		for k := range dm {
			if _, exists := sm[k]; !exists {
				inj.Errs.Add(fmt.Sprintf("Unexpected keys at %s: %s", Pathify(inj.Path, 1), k))
			}
		}
		return
	}
	for k, v := range dm {
		if _, exists := sm[k]; !exists {
			sm[k] = v
		}
	}
}

func isLeftoverCommand(s string) bool {
	return strings.HasPrefix(s, "$") && s == strings.ToUpper(s) && len(s) > 1
}

// structEqual is scalar equality for leaves, structural (compact-JSON)
// equality for nodes — used by $EXACT and select's exact-mode check.
func structEqual(a, b interface{}) bool {
	if IsNode(a) || IsNode(b) {
		sa, errA := Jsonify(a)
		sb, errB := Jsonify(b)
		if errA != nil || errB != nil {
			return false
		}
		return compactJSON(sa) == compactJSON(sb)
	}
	return a == b
}
