package voxstruct

func init() {
	RegisterCommand("$COPY", cmdCopy)
}

// cmdCopy copies dparent[inj.Key] into the current slot. In key mode it
// returns the current key unchanged (a no-op passthrough).
func cmdCopy(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	if inj.Mode == ModeKeyPre || inj.Mode == ModeKeyPost {
		return inj.Key, nil
	}
	dv, _ := GetProp(inj.Dparent, inj.Key)
	return Clone(dv), nil
}
