package voxstruct

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

func init() {
	RegisterCommand("$GT", makeComparator("point > threshold"))
	RegisterCommand("$LT", makeComparator("point < threshold"))
	RegisterCommand("$GTE", makeComparator("point >= threshold"))
	RegisterCommand("$LTE", makeComparator("point <= threshold"))
	RegisterCommand("$AND", cmdAnd)
	RegisterCommand("$OR", cmdOr)
	RegisterCommand("$NOT", cmdNot)
	RegisterCommand("$LIKE", cmdLike)
}

// makeComparator builds a $GT/$LT/$GTE/$LTE handler around a govaluate
// expression. All four work identically in key:post: the threshold is
// the entry's own value on the parent map, the point is the data value
// at the parent's position (already inj.Dparent, by construction — see
// the childInj Dparent derivation), and success replaces the
// grandparent slot with the point.
func makeComparator(expr string) Func {
	parsed, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		panic("voxstruct: bad comparator expression " + expr + ": " + err.Error())
	}
	return func(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
		if inj.Mode != ModeKeyPost {
			return val, nil
		}
		parentMap, ok := inj.Parent.(map[string]interface{})
		if !ok {
			return val, nil
		}
		threshold, _ := GetProp(parentMap, inj.Key)
		point := inj.Dparent

		result, err := parsed.Evaluate(map[string]interface{}{"point": point, "threshold": threshold})
		ok2, _ := result.(bool)
		if err != nil || !ok2 {
			inj.Errs.Add(fmt.Sprintf("Expected %s at %s against %v, but found %s.",
				ref, Pathify(inj.Path, 1), threshold, Stringify(point)))
			return val, nil
		}
		inj.SetAncestor(2, point)
		inj.Halt()
		return nil, nil
	}
}

// cmdLike is a case-insensitive substring match, matching the test
// harness's own stringified-match convention (§6).
func cmdLike(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	if inj.Mode != ModeKeyPost {
		return val, nil
	}
	parentMap, ok := inj.Parent.(map[string]interface{})
	if !ok {
		return val, nil
	}
	threshold, _ := GetProp(parentMap, inj.Key)
	point := inj.Dparent

	if strings.Contains(strings.ToLower(Stringify(point)), strings.ToLower(Stringify(threshold))) {
		inj.SetAncestor(2, point)
		inj.Halt()
		return nil, nil
	}
	inj.Errs.Add(fmt.Sprintf("Expected %s at %s to contain %s, but found %s.",
		ref, Pathify(inj.Path, 1), Stringify(threshold), Stringify(point)))
	return val, nil
}

// cmdAnd/cmdOr/cmdNot combine sub-queries: each alternative validates a
// copy of the current data into its own fresh errs list, and the
// results combine per the named boolean operator. Unlike the other
// comparators they act at key:pre, so the sub-queries are never
// injected as ordinary values; the entry is then skipped.
func cmdAnd(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return combineQueries(inj, store, "and")
}

func cmdOr(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return combineQueries(inj, store, "or")
}

func cmdNot(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return combineQueries(inj, store, "not")
}

func combineQueries(inj *Inj, store map[string]interface{}, op string) (interface{}, error) {
	if inj.Mode != ModeKeyPre {
		return inj.Key, nil
	}
	parentMap, ok := inj.Parent.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	queriesVal, _ := GetProp(parentMap, inj.Key)
	queries, ok := queriesVal.([]interface{})
	if !ok {
		queries = []interface{}{queriesVal}
	}

	exact, _ := store["$EXACT"].(bool)
	data := inj.Dparent

	results := make([]bool, len(queries))
	for i, q := range queries {
		trialErrs := &MultiError{}
		runInjection(data, q, nil, trialErrs, postModify(exact), exact)
		results[i] = trialErrs.Empty()
	}

	var ok3 bool
	switch op {
	case "and":
		ok3 = true
		for _, r := range results {
			ok3 = ok3 && r
		}
	case "or":
		for _, r := range results {
			ok3 = ok3 || r
		}
	case "not":
		ok3 = len(results) > 0 && !results[0]
	}

	if !ok3 {
		inj.Errs.Add(fmt.Sprintf("$%s failed at %s against %s.", strings.ToUpper(op), Pathify(inj.Path, 1), Stringify(data)))
		return nil, nil
	}
	// At key:pre the child's own slot is not yet on the ancestor chain,
	// so level 1 is the slot holding the comparator's map.
	inj.SetAncestor(1, data)
	inj.Halt()
	return nil, nil
}
