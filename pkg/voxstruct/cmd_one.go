package voxstruct

import (
	"fmt"
	"strings"
)

func init() {
	RegisterCommand("$ONE", cmdOne)
}

// cmdOne implements alternation: parent must be
// [ "`$ONE`", alt1, alt2, … ]. Each alternative validates a copy of the
// current data into its own fresh errs list; the first alternative with
// no errors wins and its reconciled value replaces the grandparent
// slot. Misuse (not the first list element, or no alternatives) is
// itself reported as an error.
func cmdOne(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	lst, ok := inj.Parent.([]interface{})
	if !ok || inj.Mode != ModeVal {
		return val, nil
	}
	idx, ok := inj.Key.(int)
	if !ok {
		return val, nil
	}
	if idx != 0 {
		inj.Errs.Add(fmt.Sprintf("$ONE must be the first element of its list, at %s", Pathify(inj.Path, 1)))
		return val, nil
	}

	alts := lst[1:]
	if len(alts) == 0 {
		inj.Errs.Add(fmt.Sprintf("$ONE requires at least one alternative, at %s", Pathify(inj.Path, 1)))
		inj.SetAncestor(2, nil)
		inj.Halt()
		return nil, nil
	}

	exact, _ := store["$EXACT"].(bool)
	data := inj.Dparent

	var winner interface{}
	var tried []string
	matched := false
	for _, alt := range alts {
		trialErrs := &MultiError{}
		result := runInjection(data, alt, nil, trialErrs, postModify(exact), exact)
		tried = append(tried, describeAlt(alt))
		if trialErrs.Empty() {
			winner = result
			matched = true
			break
		}
	}

	if !matched {
		inj.Errs.Add(fmt.Sprintf("Expected one of %s, at %s", strings.Join(tried, ", "), Pathify(inj.Path, 1)))
		inj.SetAncestor(2, nil)
	} else {
		inj.SetAncestor(2, winner)
	}
	inj.Halt()
	return nil, nil
}

func describeAlt(alt interface{}) string {
	if s, ok := alt.(string); ok {
		name := baseCommandName(strings.Trim(s, "`"))
		switch name {
		case "$STRING":
			return "string"
		case "$NUMBER":
			return "number"
		case "$BOOLEAN":
			return "boolean"
		case "$OBJECT":
			return "object"
		case "$ARRAY":
			return "array"
		case "$FUNCTION":
			return "function"
		case "$ANY":
			return "any"
		}
	}
	return Typify(alt)
}
