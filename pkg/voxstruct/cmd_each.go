package voxstruct

func init() {
	RegisterCommand("$EACH", cmdEach)
}

// cmdEach fires when the backtick reference "`$EACH`" sits as element 0
// of its enclosing list: [ "`$EACH`", srcPath, childTemplate ]. It
// resolves srcPath against the data, produces one cloned childTemplate
// per source element (map sources get a "$META": {"KEY": k} stamp so
// `$KEY` can recover the source key), injects each clone with the
// matching source element standing in as the data root, and replaces
// the whole enclosing list (two ancestor levels up from this element)
// with the resulting list.
func cmdEach(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
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
	out := make([]interface{}, 0, len(keys))

	for _, k := range keys {
		elem, _ := GetProp(src, k)
		clone := Clone(tmpl)
		if isSrcMap {
			if cm, ok := clone.(map[string]interface{}); ok {
				cm["$META"] = map[string]interface{}{"KEY": k}
			}
		}
		out = append(out, injectAgainst(inj, store, clone, elem))
	}

	inj.SetAncestor(2, out)
	inj.Halt()
	return nil, nil
}

// injectAgainst runs a nested inject pass over tmpl with elem standing
// in as the data root: a scratch store slot is set so ordinary
// (absolute) backtick references inside the per-item template resolve
// against the source element rather than the overall top-level data.
// Errors accumulate into the caller's errs list.
func injectAgainst(inj *Inj, store map[string]interface{}, tmpl interface{}, elem interface{}) interface{} {
	tempBase := "$EACHITEM"
	saved, hadSaved := store[tempBase]
	store[tempBase] = elem
	defer func() {
		if hadSaved {
			store[tempBase] = saved
		} else {
			delete(store, tempBase)
		}
	}()

	root := map[string]interface{}{"$TOP": tmpl}
	cinj := &Inj{
		Mode: ModeVal,
		Key:  "$TOP",
		Base: tempBase,
		// Dparent paired with Key "$TOP" must resolve (via GetProp) to
		// elem itself, mirroring the top-level Inject root's own
		// (store, "$TOP") pairing — a bare Dparent: elem would break
		// that invariant for any command reading dparent[key] here.
		Dparent: map[string]interface{}{"$TOP": elem},
		Dpath:   []interface{}{},
		Errs:    inj.Errs,
		Meta:    inj.Meta,
		Handler: DefaultHandler,
		Path:    []interface{}{"$TOP"},
		boxes:   []*box{rootBox(root)},
	}
	return Inject(tmpl, store, cinj)
}
