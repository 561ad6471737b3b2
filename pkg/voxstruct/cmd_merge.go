package voxstruct

func init() {
	RegisterCommand("$MERGE", cmdMerge)
}

// cmdMerge has two distinct shapes. As a map key (acts at key:post): the
// map's own "$MERGE" entry supplies the merge args (a list, a singleton
// value wrapped into one, or "" meaning "the data root"); the entry is
// dropped and the surrounding map is replaced by merging
// [map, args..., clone(map)] so the map's own literal keys win over the
// merged-in args. As the first element of a list (acts at val): the
// command marker is stripped and the remaining elements become the list.
func cmdMerge(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	switch inj.Mode {
	case ModeKeyPre:
		return inj.Key, nil

	case ModeKeyPost:
		parentMap, ok := inj.Parent.(map[string]interface{})
		if !ok {
			return val, nil
		}
		// The Func dispatch path (see path.go's single-"$NAME" rule)
		// always hands the handler the command Func itself as val, not
		// the already-value-phase-injected entry; the real argument
		// lives on the parent map under this same key.
		argVal, _ := GetProp(parentMap, inj.Key)
		DelProp(parentMap, inj.Key)
		args := normalizeMergeArgs(argVal, store)
		items := make([]interface{}, 0, len(args)+2)
		items = append(items, parentMap)
		items = append(items, args...)
		items = append(items, Clone(parentMap))
		merged := Merge(items...)
		inj.SetAncestor(2, merged)
		inj.Halt()
		return nil, nil

	default: // ModeVal
		lst, ok := inj.Parent.([]interface{})
		if !ok {
			return val, nil
		}
		idx, ok := inj.Key.(int)
		if !ok || idx != 0 {
			return val, nil
		}
		rest := append([]interface{}{}, lst[1:]...)
		inj.SetAncestor(2, rest)
		inj.Halt()
		return nil, nil
	}
}

func normalizeMergeArgs(val interface{}, store map[string]interface{}) []interface{} {
	if s, ok := val.(string); ok && s == "" {
		top, _ := GetProp(store, "$TOP")
		return []interface{}{top}
	}
	if lst, ok := val.([]interface{}); ok {
		return lst
	}
	return []interface{}{val}
}
