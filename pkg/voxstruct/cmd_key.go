package voxstruct

func init() {
	RegisterCommand("$KEY", cmdKey)
}

// cmdKey resolves the source key for a "$KEY" placeholder: by
// preference, the data value at the current key (the newer-draft
// behavior per the spec's resolved ambiguity), then the "$META.KEY"
// entry stamped on the parent by $EACH/$PACK, then the second-to-last
// path segment.
func cmdKey(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	if dv, ok := GetProp(inj.Dparent, inj.Key); ok {
		return dv, nil
	}
	if pm, ok := inj.Parent.(map[string]interface{}); ok {
		if mv, ok := pm["$META"]; ok {
			if mm, ok := mv.(map[string]interface{}); ok {
				if kv, ok := mm["KEY"]; ok {
					return kv, nil
				}
			}
		}
	}
	if len(inj.Path) >= 2 {
		return inj.Path[len(inj.Path)-2], nil
	}
	return nil, nil
}
