package voxstruct

// Merge deep-merges zero or more values left to right: later values win
// on scalar and type conflicts, maps are merged key-by-key recursively,
// and lists are merged index-by-index (the later list's element wins at
// each shared index; whichever list is longer contributes its
// remaining tail) rather than replaced wholesale — there is no
// by-example array-operator language here (no keyed merge, no
// append/prepend directives; see DESIGN.md), just the plain
// index-aligned merge. A nil in the list is skipped. The result is
// always a fresh structure; none of the inputs are mutated.
func Merge(objs ...interface{}) interface{} {
	var acc interface{}
	first := true
	for _, o := range objs {
		if o == nil {
			continue
		}
		if first {
			acc = Clone(o)
			first = false
			continue
		}
		acc = mergeTwo(acc, o)
	}
	return acc
}

func mergeTwo(base, over interface{}) interface{} {
	bm, bok := base.(map[string]interface{})
	om, ook := over.(map[string]interface{})
	if bok && ook {
		out := make(map[string]interface{}, len(bm)+len(om))
		for k, v := range bm {
			out[k] = Clone(v)
		}
		for k, v := range om {
			if existing, found := out[k]; found {
				out[k] = mergeTwo(existing, v)
			} else {
				out[k] = Clone(v)
			}
		}
		return out
	}

	bl, blok := base.([]interface{})
	ol, olok := over.([]interface{})
	if blok && olok {
		n := len(bl)
		if len(ol) > n {
			n = len(ol)
		}
		out := make([]interface{}, 0, n)
		for i := 0; i < n; i++ {
			switch {
			case i < len(bl) && i < len(ol):
				out = append(out, mergeTwo(bl[i], ol[i]))
			case i < len(bl):
				out = append(out, Clone(bl[i]))
			default:
				out = append(out, Clone(ol[i]))
			}
		}
		return out
	}

	return Clone(over)
}
