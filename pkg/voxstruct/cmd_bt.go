package voxstruct

func init() {
	RegisterCommand("$BT", cmdBT)
}

// cmdBT resolves to a literal backtick character.
func cmdBT(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return "`", nil
}
