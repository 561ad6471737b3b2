package voxstruct

import "strings"

// Mode identifies which phase of the per-child traversal is running.
type Mode int

const (
	ModeKeyPre Mode = iota
	ModeVal
	ModeKeyPost
)

func (m Mode) String() string {
	switch m {
	case ModeKeyPre:
		return "key:pre"
	case ModeVal:
		return "val"
	case ModeKeyPost:
		return "key:post"
	default:
		return "?"
	}
}

// ModifyFunc is the optional post-visit hook; validate uses it to
// reconcile spec defaults against data.
type ModifyFunc func(val interface{}, key interface{}, parent interface{}, inj *Inj)

// box gives a node addressable-by-reference semantics for ancestor
// writes: get reads the current value at this position, set writes a
// (possibly differently-shaped, e.g. resized-list) replacement back
// through every enclosing level up to the store.
type box struct {
	get func() interface{}
	set func(interface{})
}

// Inj carries the mutable recursion context for a single inject run. A
// child Inj is derived per visited node; errs and meta are shared by
// reference with the root so leaf commands can report upward.
type Inj struct {
	Mode    Mode
	Full    bool
	Keys    []interface{}
	KeyI    int
	Key     interface{}
	Val     interface{}
	Parent  interface{}
	Path    []interface{}
	Handler Func
	Errs    *MultiError
	Meta    map[string]interface{}
	Base    string
	Modify  ModifyFunc
	Extra   map[string]interface{}
	Dparent interface{}
	Dpath   []interface{}
	Prior   *Inj

	boxes  []*box
	halted bool
}

// SetAncestor writes val into the slot `level` positions up the ancestor
// chain from the current position: level 1 is the current slot itself,
// level 2 is the slot holding the current node's immediate parent, and so
// on. Levels beyond the root are a no-op.
func (inj *Inj) SetAncestor(level int, val interface{}) {
	idx := len(inj.boxes) - level
	if idx < 0 || idx >= len(inj.boxes) {
		return
	}
	inj.boxes[idx].set(val)
}

// Halt truncates the sibling key list so the driving loop stops after the
// current child, used by commands ($EACH, $PACK, $REF, $MERGE, $ONE,
// $EXACT, the comparators) that replace an ancestor slot wholesale and
// make continued sibling iteration meaningless.
func (inj *Inj) Halt() {
	inj.halted = true
	if inj.KeyI < len(inj.Keys) {
		inj.Keys = inj.Keys[:inj.KeyI+1]
	}
}

func rootBox(store map[string]interface{}) *box {
	return &box{
		get: func() interface{} { return store["$TOP"] },
		set: func(v interface{}) { store["$TOP"] = v },
	}
}

func childBox(parent *box, key interface{}) *box {
	return &box{
		get: func() interface{} {
			v, _ := GetProp(parent.get(), key)
			return v
		},
		set: func(v interface{}) {
			parent.set(SetProp(parent.get(), key, v))
		},
	}
}

// Inject walks val, resolving backtick references and dispatching
// registered commands, rebuilding the structure as it goes. When inj is
// nil a root state is created: val is held in a fresh {$TOP: val}
// wrapper (the arena the injection writes its result into), distinct
// from store["$TOP"] which holds the data being referenced — the two
// must not alias, since injection progressively overwrites the former
// while paths keep reading the latter.
func Inject(val interface{}, store map[string]interface{}, inj *Inj) interface{} {
	if inj == nil {
		root := map[string]interface{}{"$TOP": val}
		inj = &Inj{
			Mode:    ModeVal,
			Key:     "$TOP",
			Base:    "$TOP",
			Dparent: store,
			Dpath:   []interface{}{},
			Errs:    &MultiError{},
			Meta:    map[string]interface{}{},
			Handler: DefaultHandler,
			Path:    []interface{}{"$TOP"},
			boxes:   []*box{rootBox(root)},
		}
	}
	return injectAt(inj, store)
}

func injectAt(inj *Inj, store map[string]interface{}) interface{} {
	self := inj.boxes[len(inj.boxes)-1]
	val := self.get()

	if IsNode(val) {
		visitChildren(inj, store, self)
		val = self.get()
	} else if s, ok := val.(string); ok {
		inj.Mode = ModeVal
		out, err := injectStr(s, store, inj)
		if err != nil {
			inj.Errs.Add(err.Error())
		}
		// A command that halted has already replaced an ancestor slot;
		// writing its return value here would clobber that replacement.
		if !inj.halted {
			self.set(out)
		}
		val = out
	}

	if inj.Modify != nil {
		inj.Modify(val, inj.Key, inj.Parent, inj)
	}
	return val
}

func visitChildren(inj *Inj, store map[string]interface{}, self *box) {
	val := self.get()
	keys := KeysOf(val)

	i := 0
	for i < len(keys) {
		key := keys[i]
		cinj := childInj(inj, self, key, keys, i)

		cinj.Mode = ModeKeyPre
		prekey, skip := runKeyPhase(cinj, store, key)
		keys, i = cinj.Keys, cinj.KeyI
		if skip {
			self.set(SetProp(self.get(), key, nil))
			i++
			continue
		}

		cinj.Mode = ModeVal
		cb := childBox(self, prekey)
		cinj.boxes = append(append([]*box(nil), inj.boxes...), cb)

		// "$KEY" as a literal map key marks its placeholder value for
		// key-substitution rather than ordinary backtick injection: the
		// key name itself is kept, its value replaced by the resolved
		// source key (see cmd_key.go).
		if ks, ok := key.(string); ok && ks == "$KEY" {
			if fn, exists := registry["$KEY"]; exists {
				out, err := fn(cinj, cb.get(), "$KEY", store)
				if err != nil {
					cinj.Errs.Add(err.Error())
				}
				cb.set(out)
			}
		} else if ks, ok := key.(string); ok && ks == "$OPEN" {
			// "$OPEN" is a query-only marker read directly by
			// reconcileMap (see validate.go); it has no data
			// counterpart to inject or reconcile against, so its
			// literal value is left untouched.
		} else {
			injectAt(cinj, store)
		}
		keys, i = cinj.Keys, cinj.KeyI

		cinj.Mode = ModeKeyPost
		runKeyPhase(cinj, store, prekey)
		keys, i = cinj.Keys, cinj.KeyI

		i++
	}
}

// runKeyPhase runs string injection over a command-shaped key (one
// containing "$"), letting key-level commands like $MERGE/$PACK dispatch
// during key:pre / key:post. Plain keys pass through unchanged. A nil
// result signals the command wants this child skipped.
//
// "$KEY" and "$OPEN" are excluded from generic dispatch here even
// though they contain "$": both are handled by their own literal-key
// branch in visitChildren instead, which needs the untouched key name
// and (for "$KEY") the placeholder's own value still in place to
// resolve and overwrite — dispatching them here first would rename or
// delete the key before that branch ever runs.
func runKeyPhase(inj *Inj, store map[string]interface{}, key interface{}) (interface{}, bool) {
	ks, ok := key.(string)
	if !ok || !isCommandKey(ks) || ks == "$KEY" || ks == "$OPEN" {
		return key, false
	}
	out, err := injectStr("`"+ks+"`", store, inj)
	if err != nil {
		inj.Errs.Add(err.Error())
	}
	if out == nil {
		return nil, true
	}
	if s, ok := out.(string); ok {
		return s, false
	}
	return key, false
}

func childInj(parent *Inj, parentBox *box, key interface{}, keys []interface{}, keyI int) *Inj {
	c := &Inj{
		Mode:    ModeKeyPre,
		Keys:    keys,
		KeyI:    keyI,
		Key:     key,
		Val:     nil,
		Parent:  parentBox.get(),
		Path:    append(append([]interface{}(nil), parent.Path...), key),
		Handler: parent.Handler,
		Errs:    parent.Errs,
		Meta:    parent.Meta,
		Base:    parent.Base,
		Modify:  parent.Modify,
		Extra:   parent.Extra,
		Dparent: parent.Dparent,
		Dpath:   parent.Dpath,
		Prior:   parent,
		boxes:   parent.boxes,
	}
	// The data position shared by this child and its siblings is one step
	// into parent's own Dparent, via parent's own Key — not the child's
	// key; every child of a given parent descends the same way.
	if dv, ok := GetProp(parent.Dparent, parent.Key); ok {
		c.Dparent = dv
		c.Dpath = append(append([]interface{}(nil), parent.Dpath...), parent.Key)
	}
	return c
}

// injectStr implements the by-example string injection contract: full
// single-backtick-expression strings resolve to any value kind; strings
// with embedded backtick references are substituted in place as text.
func injectStr(s string, store map[string]interface{}, inj *Inj) (interface{}, error) {
	if s == "" {
		return "", nil
	}

	if ref, ok := fullBacktick(s); ok {
		inj.Full = true
		ref = unescapeLiteral(ref)
		v := GetPath(store, ref, inj)
		return v, nil
	}

	var b strings.Builder
	rest := s
	for {
		start := strings.IndexByte(rest, '`')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		after := rest[start+1:]
		end := strings.IndexByte(after, '`')
		if end < 0 {
			b.WriteByte('`')
			b.WriteString(after)
			break
		}
		ref := unescapeLiteral(after[:end])
		inj.Full = false
		v := GetPath(store, ref, inj)
		b.WriteString(substituteText(v))
		rest = after[end+1:]
	}

	out := b.String()
	inj.Full = true
	if inj.Handler != nil {
		res, err := inj.Handler(inj, out, "", store)
		if err != nil {
			return out, err
		}
		return res, nil
	}
	return out, nil
}

func fullBacktick(s string) (ref string, ok bool) {
	if len(s) < 2 || s[0] != '`' || s[len(s)-1] != '`' {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.Contains(inner, "`") {
		return "", false
	}
	return inner, true
}

func unescapeLiteral(ref string) string {
	ref = strings.ReplaceAll(ref, "$BT", "`")
	ref = strings.ReplaceAll(ref, "$DS", "$")
	return ref
}

func substituteText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case Func:
		return Stringify(t)
	default:
		s, err := Jsonify(v)
		if err != nil {
			return Stringify(v)
		}
		return compactJSON(s)
	}
}

func compactJSON(pretty string) string {
	var b strings.Builder
	inString := false
	escaped := false
	for _, r := range pretty {
		if inString {
			b.WriteRune(r)
			if escaped {
				escaped = false
			} else if r == '\\' {
				escaped = true
			} else if r == '"' {
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
			b.WriteRune(r)
		case ' ', '\n', '\t':
			// skip
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultHandler invokes a resolved command Func (when ref begins with
// "$"), otherwise returns val unchanged; the caller writes the returned
// value into the current position.
func DefaultHandler(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
	if fn, ok := val.(Func); ok && strings.HasPrefix(baseCommandName(ref), "$") {
		return fn(inj, val, ref, store)
	}
	if inj.Mode == ModeVal && inj.Full {
		return val, nil
	}
	return val, nil
}

func baseCommandName(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || ref[0] != '$' {
		return ref
	}
	i := 1
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	return ref[:i]
}
