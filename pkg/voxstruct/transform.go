package voxstruct

import "strings"

// Transform produces a new structure from data by injecting spec: every
// backtick reference in spec resolves against data (plus extra), and
// any command reference (`` `$COPY` ``, `` `$EACH` ``, …) runs as an
// injection handler. extra is split before the store is built:
// non-"$"-prefixed entries are ordinary data values merged into data
// itself (so commands that read dparent[key], like $COPY, see them),
// while "$"-prefixed entries are custom commands merged alongside the
// built-ins at the store's top level.
func Transform(data, spec interface{}, extra map[string]interface{}) interface{} {
	dataExtra, cmdExtra := splitExtra(extra)
	merged := data
	if len(dataExtra) > 0 {
		merged = Merge(data, dataExtra)
	}
	return runInjection(merged, spec, cmdExtra, &MultiError{}, nil, false)
}

func splitExtra(extra map[string]interface{}) (dataExtra, cmdExtra map[string]interface{}) {
	dataExtra = map[string]interface{}{}
	cmdExtra = map[string]interface{}{}
	for k, v := range extra {
		if strings.HasPrefix(k, "$") {
			cmdExtra[k] = v
		} else {
			dataExtra[k] = v
		}
	}
	return dataExtra, cmdExtra
}
