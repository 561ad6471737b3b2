package voxstruct

func init() {
	RegisterCommand("$PACK", cmdPack)
}

// cmdPack fires like $EACH (see cmd_each.go) when "`$PACK`" sits as
// element 0 of its enclosing list: [ "`$PACK`", srcPath, childTemplate ].
// Rather than a parallel list, it builds a map keyed by each source
// element's resolved "$KEY" (falling back to the source key itself when
// the clone carries no "$KEY" entry), replacing the enclosing list two
// ancestor levels up.
func cmdPack(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	lst, ok := inj.Parent.([]interface{})
	if !ok || inj.Mode != ModeVal {
		return val, nil
	}
	idx, ok := inj.Key.(int)
	if !ok || idx != 0 || len(lst) < 3 {
		return val, nil
	}

	src := GetPath(store, lst[1], inj)
	tmpl := lst[2]

	keys := KeysOf(src)
	isSrcMap := IsMap(src)
	out := make(map[string]interface{}, len(keys))

	for _, k := range keys {
		elem, _ := GetProp(src, k)
		clone := Clone(tmpl)
		if isSrcMap {
			if cm, ok := clone.(map[string]interface{}); ok {
				cm["$META"] = map[string]interface{}{"KEY": k}
			}
		}
		injected := injectAgainst(inj, store, clone, elem)
		out[packKey(injected, k)] = injected
	}

	inj.SetAncestor(2, out)
	inj.Halt()
	return nil, nil
}

func packKey(injected interface{}, fallback interface{}) string {
	if m, ok := injected.(map[string]interface{}); ok {
		if kv, ok := m["$KEY"]; ok {
			return Stringify(kv)
		}
	}
	return Stringify(fallback)
}
