package voxstruct

import "strings"

func init() {
	RegisterCommand("$REF", cmdRef)
}

// cmdRef fires like $EACH/$PACK when "`$REF`" sits as element 0 of its
// enclosing list: [ "`$REF`", refPath ]. It follows refPath against the
// store's "$SPEC" tree, clones the referenced sub-spec, and injects it
// at the current data position, replacing the enclosing list two
// ancestor levels up. A referenced sub-spec that itself contains a
// "`$REF`" only expands while the data slot at the enclosing list's
// position holds a value, which bounds recursive self-referential specs.
func cmdRef(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	lst, ok := inj.Parent.([]interface{})
	if !ok || inj.Mode != ModeVal {
		return val, nil
	}
	idx, ok := inj.Key.(int)
	if !ok || idx != 0 || len(lst) < 2 {
		return val, nil
	}

	spec, _ := GetProp(store, "$SPEC")
	sub := walkRefPath(spec, lst[1])

	if inj.Prior != nil && strings.Contains(Stringify(sub), "\"`$REF`\"") {
		if slot, _ := GetProp(inj.Prior.Dparent, inj.Prior.Key); slot == nil {
			inj.SetAncestor(2, nil)
			inj.Halt()
			return nil, nil
		}
	}
	clone := Clone(sub)

	injected := injectAgainst(inj, store, clone, inj.Dparent)
	inj.SetAncestor(2, injected)
	inj.Halt()
	return nil, nil
}

func walkRefPath(root interface{}, refPath interface{}) interface{} {
	parts := pathParts(refPath)
	cur := root
	for _, p := range parts {
		if cur == nil {
			return nil
		}
		cur, _ = GetProp(cur, p)
	}
	return cur
}
