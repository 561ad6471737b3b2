// Package voxstruct implements structural injection over JSON-shaped
// values: transform, validate, select, and the inject engine that backs
// all three.
package voxstruct

import (
	"sort"
	"strconv"
)

// Key is either a string (map key) or an int (list index). Callers build
// paths as []string; internally a resolved key on a node is represented
// as the Go value actually used to index it (string for maps, int for
// lists), so Key exists only as a documentation alias here.
type Key = interface{}

// Func is the Value variant for injectable callables: every built-in and
// user-supplied command (transform, validator, or comparator) is a Func
// stored under its "$NAME" entry in the store, invoked by the engine as
// an injection handler with its own Inj, the resolved value, the
// original backtick reference text, and the store itself.
type Func func(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error)

// IsNode reports whether v is a map or a list.
func IsNode(v interface{}) bool {
	return IsMap(v) || IsList(v)
}

// IsMap reports whether v is a map[string]interface{}.
func IsMap(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}

// IsList reports whether v is a []interface{}.
func IsList(v interface{}) bool {
	_, ok := v.([]interface{})
	return ok
}

// IsKey reports whether v can serve as a map key or list index: strings
// and any numeric type.
func IsKey(v interface{}) bool {
	switch v.(type) {
	case string:
		return true
	case int, int64, float64:
		return true
	default:
		return false
	}
}

// IsFunc reports whether v is a Func value.
func IsFunc(v interface{}) bool {
	_, ok := v.(Func)
	return ok
}

// IsEmpty reports whether v is nil, an empty string, an empty map, or an
// empty list. Zero numbers and false are not considered empty.
func IsEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case map[string]interface{}:
		return len(t) == 0
	case []interface{}:
		return len(t) == 0
	default:
		return false
	}
}

// Typify returns a short type tag for v, used in validator error messages:
// "null", "string", "number", "boolean", "object", "array", "function", or
// "unknown".
func Typify(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int, int64, float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case Func:
		return "function"
	default:
		return "unknown"
	}
}

// GetProp reads the property named by key from a map or list node. Absent
// keys and out-of-range indices both return (nil, false) rather than an
// error; the engine has no concept of a failed lookup distinct from null.
func GetProp(node interface{}, key interface{}) (interface{}, bool) {
	switch n := node.(type) {
	case map[string]interface{}:
		ks, ok := keyToString(key)
		if !ok {
			return nil, false
		}
		v, found := n[ks]
		return v, found
	case []interface{}:
		i, ok := keyToIndex(key)
		if !ok || i < 0 || i >= len(n) {
			return nil, false
		}
		return n[i], true
	default:
		return nil, false
	}
}

// GetElem is GetProp narrowed to lists, with one addition: a negative
// key counts from the end (-1 is the last element). It returns (nil,
// false) for a map node or an out-of-range index either direction.
func GetElem(node interface{}, key interface{}) (interface{}, bool) {
	lst, ok := node.([]interface{})
	if !ok {
		return nil, false
	}
	i, ok := keyToIndex(key)
	if !ok {
		return nil, false
	}
	if i < 0 {
		i += len(lst)
	}
	if i < 0 || i >= len(lst) {
		return nil, false
	}
	return lst[i], true
}

// SetProp writes val at key on node, mutating node in place where
// possible and returning the (possibly new) node. Rules:
//
//   - map node: val == nil deletes the key; otherwise it is set/overwritten.
//   - list node, non-negative index within range: overwrite in place.
//   - list node, non-negative index == len(node): append.
//   - list node, negative index: prepend (and -1 specifically prepends,
//     matching by-example convention rather than Python-style tail
//     indexing).
//   - val == nil on a list index in range: delete that element, shifting
//     subsequent elements down.
func SetProp(node interface{}, key interface{}, val interface{}) interface{} {
	switch n := node.(type) {
	case map[string]interface{}:
		ks, ok := keyToString(key)
		if !ok {
			return node
		}
		if val == nil {
			delete(n, ks)
			return n
		}
		n[ks] = val
		return n

	case []interface{}:
		i, ok := keyToIndex(key)
		if !ok {
			return node
		}
		if i < 0 {
			if val == nil {
				return n
			}
			out := make([]interface{}, 0, len(n)+1)
			out = append(out, val)
			out = append(out, n...)
			return out
		}
		if i < len(n) {
			if val == nil {
				out := make([]interface{}, 0, len(n)-1)
				out = append(out, n[:i]...)
				out = append(out, n[i+1:]...)
				return out
			}
			n[i] = val
			return n
		}
		if i == len(n) {
			if val == nil {
				return n
			}
			return append(n, val)
		}
		// sparse append beyond len: pad with nil.
		if val == nil {
			return n
		}
		out := make([]interface{}, i+1)
		copy(out, n)
		out[i] = val
		return out

	default:
		return node
	}
}

// DelProp removes key from node; shorthand for SetProp(node, key, nil).
func DelProp(node interface{}, key interface{}) interface{} {
	return SetProp(node, key, nil)
}

// KeysOf returns the keys of node in the deterministic order used
// throughout the engine: for maps, non-command keys (those that do not
// contain a "$") sorted alphanumerically, followed by command keys sorted
// alphanumerically. For lists, integer indices in order. Any other value
// yields an empty slice.
func KeysOf(node interface{}) []interface{} {
	switch n := node.(type) {
	case map[string]interface{}:
		var plain, cmds []string
		for k := range n {
			if isCommandKey(k) {
				cmds = append(cmds, k)
			} else {
				plain = append(plain, k)
			}
		}
		sort.Strings(plain)
		sort.Strings(cmds)
		out := make([]interface{}, 0, len(plain)+len(cmds))
		for _, k := range plain {
			out = append(out, k)
		}
		for _, k := range cmds {
			out = append(out, k)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(n))
		for i := range n {
			out[i] = i
		}
		return out
	default:
		return nil
	}
}

// isCommandKey reports whether a map key carries a command marker,
// i.e. contains a "$" anywhere in the string.
func isCommandKey(k string) bool {
	for _, r := range k {
		if r == '$' {
			return true
		}
	}
	return false
}

// Items returns [key, value] pairs for node, in KeysOf order.
func Items(node interface{}) [][2]interface{} {
	keys := KeysOf(node)
	out := make([][2]interface{}, 0, len(keys))
	for _, k := range keys {
		v, _ := GetProp(node, k)
		out = append(out, [2]interface{}{k, v})
	}
	return out
}

// Clone makes a deep copy of v. Func values are copied by reference (they
// are not decomposable), which matches the way the rest of the engine
// treats them as opaque leaves; everything else is a structural copy.
func Clone(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = Clone(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}

func keyToString(key interface{}) (string, bool) {
	switch k := key.(type) {
	case string:
		return k, true
	case int:
		return strconv.Itoa(k), true
	case int64:
		return strconv.Itoa(int(k)), true
	case float64:
		return strconv.Itoa(int(k)), true
	default:
		return "", false
	}
}

func keyToIndex(key interface{}) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int64:
		return int(k), true
	case float64:
		return int(k), true
	case string:
		n, err := strconv.Atoi(k)
		return n, err == nil
	default:
		return 0, false
	}
}
