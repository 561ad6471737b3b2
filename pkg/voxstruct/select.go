package voxstruct

// Select filters children (a map's values or a list's elements) against
// query: query is cloned once per child, every map node in the clone is
// stamped "$OPEN": true unless already set (so unmatched keys in a
// child don't themselves fail the match — only the keys query actually
// names are checked), and the clone is validated against the child with
// exact equality on scalars. A child survives iff that validation
// raises no errors.
func Select(children interface{}, query interface{}) []interface{} {
	items := make([]interface{}, 0)
	for _, k := range KeysOf(children) {
		elem, _ := GetProp(children, k)
		items = append(items, elem)
	}

	out := make([]interface{}, 0, len(items))
	for _, elem := range items {
		clone := openAll(Clone(query))
		errs := &MultiError{}
		runInjection(elem, clone, nil, errs, postModify(true), true)
		if errs.Empty() {
			out = append(out, elem)
		}
	}
	return out
}

// openAll stamps every map node in val with "$OPEN": true, unless that
// node already declares $OPEN itself — query maps default to open so a
// select query only constrains the keys it actually names.
func openAll(val interface{}) interface{} {
	return Walk(val, func(key interface{}, v interface{}, parent interface{}, path []string) interface{} {
		if m, ok := v.(map[string]interface{}); ok {
			if _, has := m["$OPEN"]; !has {
				m["$OPEN"] = true
			}
		}
		return v
	})
}
