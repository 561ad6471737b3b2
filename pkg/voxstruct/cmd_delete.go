package voxstruct

func init() {
	RegisterCommand("$DELETE", cmdDelete)
}

// cmdDelete sets the current position to null, which deletes it from a
// map or shifts it out of a list.
func cmdDelete(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return nil, nil
}
