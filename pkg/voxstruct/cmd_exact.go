package voxstruct

import (
	"fmt"
	"strings"
)

func init() {
	RegisterCommand("$EXACT", cmdExact)
}

// cmdExact implements literal equality: parent must be
// [ "`$EXACT`", v1, v2, … ]. Passes iff the current data value equals
// one of v1..vn, structurally for nodes, via compact-JSON comparison.
func cmdExact(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	lst, ok := inj.Parent.([]interface{})
	if !ok || inj.Mode != ModeVal {
		return val, nil
	}
	idx, ok := inj.Key.(int)
	if !ok {
		return val, nil
	}
	if idx != 0 {
		inj.Errs.Add(fmt.Sprintf("$EXACT must be the first element of its list, at %s", Pathify(inj.Path, 1)))
		return val, nil
	}

	vals := lst[1:]
	if len(vals) == 0 {
		inj.Errs.Add(fmt.Sprintf("$EXACT requires at least one value, at %s", Pathify(inj.Path, 1)))
		inj.SetAncestor(2, nil)
		inj.Halt()
		return nil, nil
	}

	data := inj.Dparent
	for _, v := range vals {
		if structEqual(v, data) {
			inj.SetAncestor(2, data)
			inj.Halt()
			return nil, nil
		}
	}

	opts := make([]string, 0, len(vals))
	for _, v := range vals {
		opts = append(opts, Stringify(v))
	}
	inj.Errs.Add(fmt.Sprintf("Value at %s should equal one of %s, but found %s.",
		Pathify(inj.Path, 1), strings.Join(opts, ", "), Stringify(data)))
	inj.SetAncestor(2, nil)
	inj.Halt()
	return nil, nil
}
