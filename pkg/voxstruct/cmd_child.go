package voxstruct

func init() {
	RegisterCommand("$CHILD", cmdChild)
}

// cmdChild implements both by-example "$CHILD" syntaxes.
//
// Map syntax — the literal key "$CHILD" (detected like any other
// command-shaped key, via runKeyPhase during key:pre): the surrounding
// spec map is expanded in place, one cloned childTemplate per key
// present in the corresponding data map, then the "$CHILD" marker is
// dropped and iteration resumes over the newly-stamped keys. Assumes
// "$CHILD" is the sole key of its map, the by-example convention.
//
// List syntax — "`$CHILD`" as element 0 of [ "`$CHILD`", childTemplate ]
// (mirroring $EACH/$PACK/$REF/$MERGE's list-marker dispatch): one cloned
// childTemplate per element of the corresponding data list, replacing
// the marker list two ancestor levels up.
func cmdChild(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	if inj.Mode == ModeKeyPre {
		p, ok := inj.Parent.(map[string]interface{})
		if !ok {
			return nil, nil
		}
		tmpl, _ := GetProp(p, "$CHILD")
		delete(p, "$CHILD")
		if dm, ok := inj.Dparent.(map[string]interface{}); ok {
			for k := range dm {
				p[k] = Clone(tmpl)
			}
		}
		inj.Keys = KeysOf(p)
		inj.KeyI = -1
		return nil, nil
	}

	lst, ok := inj.Parent.([]interface{})
	if !ok || inj.Mode != ModeVal {
		return val, nil
	}
	idx, ok := inj.Key.(int)
	if !ok || idx != 0 || len(lst) < 2 {
		return val, nil
	}

	tmpl := lst[1]
	dataList, _ := inj.Dparent.([]interface{})
	out := make([]interface{}, len(dataList))
	for i, elem := range dataList {
		out[i] = injectAgainst(inj, store, Clone(tmpl), elem)
	}
	inj.SetAncestor(2, out)
	inj.Halt()
	return nil, nil
}
