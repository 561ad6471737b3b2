package voxstruct

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Stringify renders v as a human-readable string: scalars render plainly,
// nil renders as "null", and nodes render as compact JSON. maxlen, if > 0,
// truncates the result and appends "...".
func Stringify(v interface{}, maxlen ...int) string {
	var s string
	switch t := v.(type) {
	case nil:
		s = "null"
	case string:
		s = t
	case bool:
		s = strconv.FormatBool(t)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			s = fmt.Sprintf("%v", v)
		} else {
			s = string(b)
		}
	}
	if len(maxlen) > 0 && maxlen[0] > 0 && len(s) > maxlen[0] {
		s = s[:maxlen[0]] + "..."
	}
	return s
}

// Jsonify renders v as pretty-printed JSON with a two-space indent.
// offset, if given and > 0, left-pads every line after the first by
// that many spaces, for embedding the result inside already-indented
// text.
func Jsonify(v interface{}, offset ...int) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	s := string(b)
	if len(offset) > 0 && offset[0] > 0 {
		pad := strings.Repeat(" ", offset[0])
		lines := strings.Split(s, "\n")
		for i := 1; i < len(lines); i++ {
			lines[i] = pad + lines[i]
		}
		s = strings.Join(lines, "\n")
	}
	return s, nil
}

var escreSpecial = regexp.MustCompile(`[.*+?^${}()|[\]\\]`)

// Escre escapes s for safe embedding inside a regular expression.
func Escre(s string) string {
	return escreSpecial.ReplaceAllStringFunc(s, func(m string) string {
		return "\\" + m
	})
}

// Escurl percent-encodes s for safe embedding inside a URL path segment.
func Escurl(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Joinurl joins path segments into a URL, skipping empty/nil parts and
// collapsing every run of slashes in the joined result to one, without
// disturbing a protocol separator ("://").
func Joinurl(parts ...interface{}) string {
	var segs []string
	for _, p := range parts {
		if p == nil {
			continue
		}
		s := Stringify(p)
		if s == "" {
			continue
		}
		segs = append(segs, s)
	}
	joined := strings.Join(segs, "/")
	joined = strings.ReplaceAll(joined, ":/", ":###")
	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", "/")
	}
	joined = strings.ReplaceAll(joined, ":###", ":/")
	return joined
}

// Size returns the length of v: string length, map/list element count, 0
// for nil and scalars.
func Size(v interface{}) int {
	switch t := v.(type) {
	case string:
		return len(t)
	case map[string]interface{}:
		return len(t)
	case []interface{}:
		return len(t)
	default:
		return 0
	}
}

// Slice returns a sub-range of a string or list: start<0 counts from the
// end (start = len+start), likewise end<0 (end = len+end). Out-of-range
// bounds clamp to [0, len] rather than erroring; a non-positive resulting
// width returns an empty string/list.
func Slice(v interface{}, start, end int) interface{} {
	switch t := v.(type) {
	case string:
		start, end = normalizeSliceBounds(start, end, len(t))
		if start >= end {
			return ""
		}
		return t[start:end]
	case []interface{}:
		start, end = normalizeSliceBounds(start, end, len(t))
		if start >= end {
			return []interface{}{}
		}
		return t[start:end]
	default:
		return v
	}
}

func normalizeSliceBounds(start, end, length int) (int, int) {
	if start < 0 {
		start = length + start
	}
	if end < 0 {
		end = length + end
	}
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	return start, end
}

// Pad left/right-pads s with fill to width characters. A negative width
// pads on the right; positive pads on the left. width == 0 means "not
// specified" and takes the documented default of 44 — a real request to
// pad to width 0 would be a no-op anyway, so no behavior is lost.
func Pad(s string, width int, fill string) string {
	if fill == "" {
		fill = " "
	}
	if width == 0 {
		width = 44
	}
	n := width
	left := true
	if n < 0 {
		n = -n
		left = false
	}
	for len(s) < n {
		if left {
			s = fill + s
		} else {
			s = s + fill
		}
	}
	return s
}

// Pathify renders a path ([]string or []interface{}) as a dotted string
// for error messages, e.g. []interface{}{"a","b",0} -> "a.b.0". from, if given
// and > 0, drops that many leading segments (used to drop the synthetic
// "$TOP" wrapper key before reporting a path to a caller).
func Pathify(path interface{}, from ...int) string {
	segs, pathLike := toStringSlice(path)
	if !pathLike {
		return fmt.Sprintf("<unknown-path:%s>", Stringify(path))
	}
	skip := 0
	if len(from) > 0 {
		skip = from[0]
	}
	if skip > len(segs) {
		skip = len(segs)
	}
	segs = segs[skip:]
	if len(segs) == 0 {
		return "<root>"
	}
	return strings.Join(segs, ".")
}

func toStringSlice(path interface{}) ([]string, bool) {
	switch p := path.(type) {
	case []string:
		return append([]string(nil), p...), true
	case []interface{}:
		out := make([]string, len(p))
		for i, v := range p {
			out[i] = Stringify(v)
		}
		return out, true
	default:
		return nil, false
	}
}
