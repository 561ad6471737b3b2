package voxstruct

import "time"

func init() {
	RegisterCommand("$WHEN", cmdWhen)
}

// cmdWhen resolves to the current UTC time in ISO-8601 form.
func cmdWhen(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return time.Now().UTC().Format(time.RFC3339), nil
}
