package eval

import "regexp"

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindFunction
	KindRegex
)

// Value is the tagged-union runtime datum. Values are passed by value and
// cloned on the boundaries that need independence (Context.Get, subscript);
// nothing in the runtime shares mutable state through a Value.
type Value struct {
	kind ValueKind
	data any
}

// Object is the string-keyed mapping payload; insertion order is irrelevant.
type Object map[string]Value

// Regex wraps a compiled pattern. Patterns are immutable once built.
type Regex struct {
	pattern *regexp.Regexp
}

// Find returns the rune offset and text of the first match, or ok == false
// when the pattern does not match the haystack.
func (r *Regex) Find(haystack string) (int, string, bool) {
	loc := r.pattern.FindStringIndex(haystack)
	if loc == nil {
		return 0, "", false
	}
	return len([]rune(haystack[:loc[0]])), haystack[loc[0]:loc[1]], true
}

func (r *Regex) String() string { return r.pattern.String() }
