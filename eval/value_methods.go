package eval

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Typename returns the human-readable type name used in diagnostics.
func (v Value) Typename() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindRegex:
		return "regex"
	default:
		return fmt.Sprintf("kind(%d)", int(v.kind))
	}
}

// String renders the value the way the driver displays results: nil as the
// empty string, booleans as true/false, integral floats with a trailing ".0".
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return ""
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return formatFloat(v.data.(float64))
	case KindString:
		return v.data.(string)
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.Repr()
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case KindObject:
		entries := v.data.(Object)
		if len(entries) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(entries))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, entries[k].Repr()))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
	case KindFunction:
		return "<function>"
	case KindRegex:
		return fmt.Sprintf("/%s/", v.data.(*Regex).String())
	default:
		return fmt.Sprintf("<%s>", v.Typename())
	}
}

// Repr renders the value for diagnostics and nested display; unlike String
// it quotes strings so error messages stay unambiguous.
func (v Value) Repr() string {
	if v.kind == KindString {
		return strconv.Quote(v.data.(string))
	}
	if v.kind == KindNil {
		return "nil"
	}
	return v.String()
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Equal reports deep structural equality. Numeric cross-type pairs compare
// by promoted value; function and regex values never compare equal.
func (v Value) Equal(other Value) bool {
	if v.isNumeric() && other.isNumeric() {
		if v.kind == KindInt && other.kind == KindInt {
			return v.data.(int64) == other.data.(int64)
		}
		return v.Float() == other.Float()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindArray:
		a, b := v.Array(), other.Array()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindObject:
		a, b := v.Object(), other.Object()
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns an independent copy; deep for arrays and objects. Functions
// and compiled patterns are immutable and shared as-is.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := v.Array()
		out := make([]Value, len(elems))
		for i, e := range elems {
			out[i] = e.Clone()
		}
		return NewArray(out)
	case KindObject:
		entries := v.Object()
		out := make(Object, len(entries))
		for k, val := range entries {
			out[k] = val.Clone()
		}
		return NewObject(out)
	default:
		return v
	}
}
