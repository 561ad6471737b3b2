package voxstruct

func init() {
	RegisterCommand("$DS", cmdDS)
}

// cmdDS resolves to a literal dollar sign.
func cmdDS(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return "$", nil
}
