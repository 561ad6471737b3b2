package voxstruct

// WalkApply is invoked once per node visited by Walk, post-order
// (children before parents), including the root. key is nil at the root.
// The return value replaces val at that position in the tree.
type WalkApply func(key interface{}, val interface{}, parent interface{}, path []string) interface{}

// Walk performs a depth-first, post-order traversal of val, calling apply
// at every node (map, list, or scalar) and rebuilding the tree from
// apply's return values. Children are visited, and their results written
// back into a cloned parent, before apply runs on the parent itself, so
// apply always sees already-processed children.
func Walk(val interface{}, apply WalkApply) interface{} {
	return walk(nil, val, nil, nil, apply)
}

func walk(key interface{}, val interface{}, parent interface{}, path []string, apply WalkApply) interface{} {
	switch v := val.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for _, k := range KeysOf(v) {
			ks := k.(string)
			childPath := append(append([]string(nil), path...), ks)
			out[ks] = walk(ks, v[ks], out, childPath, apply)
		}
		return apply(key, out, parent, path)

	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			childPath := append(append([]string(nil), path...), itoaFast(i))
			out[i] = walk(i, item, out, childPath, apply)
		}
		return apply(key, out, parent, path)

	default:
		return apply(key, val, parent, path)
	}
}

func itoaFast(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
