package eval

import (
	"encoding/csv"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// convStr converts scalars to their string rendering.
func convStr(value Value) (Value, error) {
	switch value.kind {
	case KindString:
		return value, nil
	case KindInt, KindFloat, KindBool:
		return NewString(value.String()), nil
	default:
		return Value{}, NewErrorf("cannot convert %s to string", value.Typename())
	}
}

// convInt converts strings (base-10 literals), floats (truncating), and
// booleans to an integer.
func convInt(value Value) (Value, error) {
	switch value.kind {
	case KindString:
		n, err := strconv.ParseInt(value.Str(), 10, 64)
		if err != nil {
			return Value{}, NewErrorf("invalid integer value: %s", value.Str())
		}
		return NewInt(n), nil
	case KindInt:
		return value, nil
	case KindFloat:
		return NewInt(int64(value.Float())), nil
	case KindBool:
		if value.Bool() {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	default:
		return Value{}, NewErrorf("cannot convert %s to int", value.Typename())
	}
}

func convFloat(value Value) (Value, error) {
	switch value.kind {
	case KindString:
		f, err := strconv.ParseFloat(value.Str(), 64)
		if err != nil {
			return Value{}, NewErrorf("invalid float value: %s", value.Str())
		}
		return NewFloat(f), nil
	case KindInt:
		return NewFloat(float64(value.Int())), nil
	case KindFloat:
		return value, nil
	case KindBool:
		if value.Bool() {
			return NewFloat(1), nil
		}
		return NewFloat(0), nil
	default:
		return Value{}, NewErrorf("cannot convert %s to float", value.Typename())
	}
}

// convBool converts a value based on its truthiness. String conversion
// accepts exactly the literals "true" and "false".
func convBool(value Value) (Value, error) {
	switch value.kind {
	case KindString:
		b, err := strconv.ParseBool(value.Str())
		if err != nil || (value.Str() != "true" && value.Str() != "false") {
			return Value{}, NewErrorf("invalid bool value: %s", value.Str())
		}
		return NewBool(b), nil
	case KindInt:
		return NewBool(value.Int() != 0), nil
	case KindFloat:
		return NewBool(value.Float() != 0), nil
	case KindBool:
		return value, nil
	case KindArray:
		return NewBool(len(value.Array()) > 0), nil
	default:
		return Value{}, NewErrorf("cannot convert %s to bool", value.Typename())
	}
}

// convJSON parses a JSON document from a string into the equivalent Value.
// Numbers without a fractional part become integers.
func convJSON(value Value) (Value, error) {
	if value.kind != KindString {
		return Value{}, NewErrorf("json() requires a string, got %s", value.Typename())
	}
	dec := json.NewDecoder(strings.NewReader(value.Str()))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, NewErrorf("invalid JSON: %s", err)
	}
	return valueFromJSON(raw)
}

func valueFromJSON(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return NewNil(), nil
	case bool:
		return NewBool(v), nil
	case string:
		return NewString(v), nil
	case json.Number:
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return NewInt(n), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Value{}, NewErrorf("invalid JSON number: %s", v.String())
		}
		return NewFloat(f), nil
	case []any:
		elems := make([]Value, len(v))
		for i, item := range v {
			elem, err := valueFromJSON(item)
			if err != nil {
				return Value{}, err
			}
			elems[i] = elem
		}
		return NewArray(elems), nil
	case map[string]any:
		entries := make(Object, len(v))
		for k, item := range v {
			entry, err := valueFromJSON(item)
			if err != nil {
				return Value{}, err
			}
			entries[k] = entry
		}
		return NewObject(entries), nil
	default:
		return Value{}, NewErrorf("unsupported JSON value: %v", raw)
	}
}

// convCsv parses a single CSV record from a string into an array of string
// fields.
func convCsv(value Value) (Value, error) {
	if value.kind != KindString {
		return Value{}, NewErrorf("csv() requires a string, got %s", value.Typename())
	}
	record, err := csv.NewReader(strings.NewReader(value.Str())).Read()
	if err != nil {
		return Value{}, NewErrorf("invalid CSV record: %s", err)
	}
	fields := make([]Value, len(record))
	for i, field := range record {
		fields[i] = NewString(field)
	}
	return NewArray(fields), nil
}

// convRegex compiles a string into a regex value; an already-compiled regex
// passes through.
func convRegex(value Value) (Value, error) {
	switch value.kind {
	case KindString:
		re, err := regexp.Compile(value.Str())
		if err != nil {
			return Value{}, NewErrorf("invalid regular expression: %s", err)
		}
		return NewRegex(re), nil
	case KindRegex:
		return value, nil
	default:
		return Value{}, NewErrorf("regex() requires a string, got %s", value.Typename())
	}
}
