package voxstruct

import "strings"

// GetPath resolves path (a dotted string or a []string of parts) against
// store, honoring the by-example path language: relative ascent via
// leading empty segments, $KEY substitution, $GET:/$REF:/$META: dynamic
// fragments, meta-path rooting, and $$ escaping. When inj is non-nil and
// inj.Handler is set, the resolved value is passed through the handler
// before being returned — this is the mechanism by which a path pointing
// at a registered command actually invokes it.
func GetPath(store map[string]interface{}, path interface{}, inj *Inj) interface{} {
	parts := pathParts(path)

	if len(parts) == 0 {
		return runHandler(inj, defaultRoot(store, inj), "", store)
	}

	// A single "$NAME" part always means "look up a command in the
	// store's top level" (commands never live under the data root), so
	// it bypasses the data-relative root entirely.
	if len(parts) == 1 && strings.HasPrefix(parts[0], "$") {
		name := baseCommandName(parts[0])
		v, _ := GetProp(store, name)
		return runHandler(inj, v, parts[0], store)
	}

	root, rest, ref := resolveMetaRoot(parts, store, inj)

	ascend := 0
	for len(rest) > 0 && rest[0] == "" {
		ascend++
		rest = rest[1:]
	}

	var cur interface{}
	if ascend > 0 {
		cur = ascendData(store, inj, ascend)
	} else {
		cur = root
	}

	for _, part := range rest {
		part = resolvePart(part, store, inj)
		if cur == nil {
			break
		}
		cur, _ = GetProp(cur, part)
	}

	return runHandler(inj, cur, ref, store)
}

// defaultRoot is where an ordinary (non-relative, non-meta) path walk
// begins: the data root (store[inj.Base]) when injection is in progress,
// else the tree passed in directly (plain getpath(tree, path) usage with
// no store/inj wrapping at all).
func defaultRoot(store map[string]interface{}, inj *Inj) interface{} {
	if inj != nil && inj.Base != "" {
		v, _ := GetProp(store, inj.Base)
		return v
	}
	return store
}

func runHandler(inj *Inj, val interface{}, ref string, store map[string]interface{}) interface{} {
	if inj == nil || inj.Handler == nil {
		return val
	}
	out, err := inj.Handler(inj, val, ref, store)
	if err != nil {
		inj.Errs.Add(err.Error())
		return val
	}
	return out
}

// ascendData walks n levels up from inj.Dparent along inj.Dpath, by
// re-resolving a truncated prefix of Dpath from the store root. One
// ascend reuses Dparent directly; each further consecutive empty segment
// drops one more trailing key from Dpath before re-walking.
func ascendData(store map[string]interface{}, inj *Inj, n int) interface{} {
	if inj == nil {
		return store
	}
	if n <= 1 {
		return inj.Dparent
	}
	base := append([]interface{}(nil), inj.Dpath...)
	drop := n - 1
	if drop > len(base) {
		drop = len(base)
	}
	base = base[:len(base)-drop]
	var cur interface{} = store
	for _, k := range base {
		if cur == nil {
			return nil
		}
		cur, _ = GetProp(cur, k)
	}
	return cur
}

// resolveMetaRoot detects "prefix$=rest" / "prefix$~rest" meta-path syntax
// on the first part. If present, the walking root becomes inj.Meta[prefix]
// and the remaining parts continue from there. Otherwise root is the
// ordinary base (store, or relative root handled by the caller) and rest
// is parts unchanged. ref carries the original first part for handler
// reporting.
func resolveMetaRoot(parts []string, store map[string]interface{}, inj *Inj) (root interface{}, rest []string, ref string) {
	if len(parts) > 0 {
		ref = parts[0]
	}
	if len(parts) == 0 {
		return defaultRoot(store, inj), parts, ref
	}
	first := parts[0]
	for _, sep := range []string{"$=", "$~"} {
		if idx := strings.Index(first, sep); idx >= 0 {
			prefix := first[:idx]
			remainder := first[idx+len(sep):]
			var mv interface{}
			if inj != nil && inj.Meta != nil {
				mv = inj.Meta[prefix]
			}
			newRest := append([]string(nil), parts[1:]...)
			if remainder != "" {
				newRest = append([]string{remainder}, newRest...)
			}
			return mv, newRest, ref
		}
	}
	return defaultRoot(store, inj), parts, ref
}

// resolvePart applies $KEY substitution, $GET:/$REF:/$META: dynamic
// fragments, and $$ escaping to a single path segment.
func resolvePart(part string, store map[string]interface{}, inj *Inj) string {
	if inj != nil {
		if ks, ok := inj.Key.(string); ok {
			part = strings.ReplaceAll(part, "$KEY", ks)
		}
	}
	part = resolveDynamicFragment(part, "$GET:", store, inj, func() interface{} {
		if inj != nil {
			return inj.Dparent
		}
		return store
	})
	part = resolveDynamicFragment(part, "$REF:", store, inj, func() interface{} {
		spec, _ := GetProp(store, "$SPEC")
		return spec
	})
	part = resolveDynamicFragment(part, "$META:", store, inj, func() interface{} {
		if inj != nil {
			return inj.Meta
		}
		return nil
	})
	part = strings.ReplaceAll(part, "$$", "$")
	return part
}

func resolveDynamicFragment(part, marker string, store map[string]interface{}, inj *Inj, base func() interface{}) string {
	idx := strings.Index(part, marker)
	if idx < 0 {
		return part
	}
	rest := part[idx+len(marker):]
	end := strings.IndexByte(rest, '$')
	if end < 0 {
		return part
	}
	inner := rest[:end]
	resolved := GetPath(store, inner, &Inj{Dparent: base(), Meta: safeMeta(inj)})
	sub := Stringify(resolved)
	return part[:idx] + sub + rest[end+1:]
}

func safeMeta(inj *Inj) map[string]interface{} {
	if inj == nil {
		return nil
	}
	return inj.Meta
}

// pathParts normalizes a path argument (string or []string/[]interface{})
// into dot-split segments, honoring $$ as an escaped literal dot-adjacent
// dollar rather than splitting logic (splitting is by "." only; $$
// unescaping of $ happens per-segment in resolvePart).
func pathParts(path interface{}) []string {
	switch p := path.(type) {
	case nil:
		return nil
	case string:
		if p == "" {
			return nil
		}
		return strings.Split(p, ".")
	case []string:
		return p
	case []interface{}:
		out := make([]string, len(p))
		for i, v := range p {
			out[i] = Stringify(v)
		}
		return out
	default:
		return nil
	}
}
