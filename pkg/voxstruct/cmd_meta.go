package voxstruct

func init() {
	RegisterCommand("$META", cmdMeta)
}

// cmdMeta removes its own "$META" entry from the parent; the stamped
// value (e.g. {KEY: k} written by $EACH/$PACK) has already done its job
// by the time traversal reaches it.
func cmdMeta(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return nil, nil
}
