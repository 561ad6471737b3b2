package voxstruct

import "fmt"

func init() {
	RegisterCommand("$STRING", cmdString)
	RegisterCommand("$NUMBER", cmdNumber)
	RegisterCommand("$BOOLEAN", cmdBoolean)
	RegisterCommand("$OBJECT", cmdObject)
	RegisterCommand("$ARRAY", cmdArray)
	RegisterCommand("$FUNCTION", cmdFunction)
	RegisterCommand("$ANY", cmdAny)
}

// typeCheck reads the data value at the current position (dparent[key])
// and, on a Typify mismatch, appends a diagnostic and reports null so
// the surrounding reconciliation pass treats this field as already
// handled. On success the data value itself replaces the spec command
// reference, which is how a by-example "`$STRING`" placeholder becomes
// the actual validated string in the returned structure.
func typeCheck(inj *Inj, want string) (interface{}, error) {
	data, _ := GetProp(inj.Dparent, inj.Key)
	got := Typify(data)
	if got != want {
		inj.Errs.Add(fmt.Sprintf("Expected field %s to be %s, but found %s: %s.",
			Stringify(inj.Key), want, got, Stringify(data)))
		return nil, nil
	}
	return data, nil
}

func cmdString(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	data, _ := GetProp(inj.Dparent, inj.Key)
	if s, ok := data.(string); ok && s == "" {
		inj.Errs.Add(fmt.Sprintf("Expected field %s to be string, but found an empty string.", Stringify(inj.Key)))
		return nil, nil
	}
	return typeCheck(inj, "string")
}

func cmdNumber(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return typeCheck(inj, "number")
}

func cmdBoolean(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return typeCheck(inj, "boolean")
}

func cmdObject(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return typeCheck(inj, "object")
}

func cmdArray(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return typeCheck(inj, "array")
}

func cmdFunction(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	return typeCheck(inj, "function")
}

// cmdAny accepts anything, passing the current data value through
// unvalidated.
func cmdAny(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	data, _ := GetProp(inj.Dparent, inj.Key)
	return data, nil
}
