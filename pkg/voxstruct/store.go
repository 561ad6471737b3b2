package voxstruct

// registry holds the built-in commands, keyed by their "$NAME" marker.
// Each cmd_*.go file registers itself from an init() function, mirroring
// the teacher's operator self-registration convention.
var registry = map[string]Func{}

// RegisterCommand adds a built-in command to the registry. Called from
// package init() functions; panics on duplicate registration since that
// can only happen from a programming mistake in this package itself.
func RegisterCommand(name string, fn Func) {
	if _, exists := registry[name]; exists {
		panic("voxstruct: command already registered: " + name)
	}
	registry[name] = fn
}

// NewStore builds the store map passed to Inject: a clone of data under
// "$TOP", every registered built-in command, and the caller's extras
// (which may shadow a built-in name, letting callers override command
// behavior, or may simply be named data values). Transform passes only
// its "$"-prefixed extras here; it merges the rest into data first.
func NewStore(data interface{}, extra map[string]interface{}) map[string]interface{} {
	store := make(map[string]interface{}, len(registry)+len(extra)+1)
	for name, fn := range registry {
		store[name] = fn
	}
	for k, v := range extra {
		store[k] = v
	}
	store["$TOP"] = Clone(data)
	return store
}
