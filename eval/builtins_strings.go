package eval

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stringsRev reverses the characters of a string.
func stringsRev(value Value) (Value, error) {
	if value.kind != KindString {
		return Value{}, NewErrorf("rev() requires a string, got %s", value.Typename())
	}
	runes := []rune(value.Str())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return NewString(string(runes)), nil
}

// stringsSplit splits a string by a string or regex delimiter, returning an
// array of strings. Also backs the `string / string` operator.
func stringsSplit(value, delim Value) (Value, error) {
	if value.kind != KindString {
		return Value{}, NewErrorf("split() expects a string and a delimiter, got: %s, %s",
			value.Typename(), delim.Typename())
	}
	var parts []string
	switch delim.kind {
	case KindString:
		parts = strings.Split(value.Str(), delim.Str())
	case KindRegex:
		parts = delim.Regex().pattern.Split(value.Str(), -1)
	default:
		return Value{}, NewErrorf("split() expects a string and a delimiter, got: %s, %s",
			value.Typename(), delim.Typename())
	}
	out := make([]Value, len(parts))
	for i, part := range parts {
		out[i] = NewString(part)
	}
	return NewArray(out), nil
}

// stringsJoin joins an array of values into a single delimited string. Also
// backs the `array * string` operator. Elements that cannot be stringified
// are reported in aggregate.
func stringsJoin(array, delim Value) (Value, error) {
	if array.kind != KindArray || delim.kind != KindString {
		return Value{}, NewErrorf("join() expects an array and a string, got: %s, %s",
			array.Typename(), delim.Typename())
	}
	elems := array.Array()
	parts := make([]string, 0, len(elems))
	errorCount := 0
	for _, elem := range elems {
		s, err := convStr(elem)
		if err != nil {
			errorCount++
			continue
		}
		parts = append(parts, s.Str())
	}
	if errorCount > 0 {
		return Value{}, NewErrorf(
			"join() failed to stringify %d element(s) of the input array", errorCount)
	}
	return NewString(strings.Join(parts, delim.Str())), nil
}

// stringsSub replaces every occurrence of a string or regex needle within
// the haystack. Regex replacements expand $1-style group references.
func stringsSub(needle, replacement, haystack Value) (Value, error) {
	if replacement.kind != KindString || haystack.kind != KindString {
		return subError("sub", needle, replacement, haystack)
	}
	switch needle.kind {
	case KindString:
		return NewString(strings.ReplaceAll(haystack.Str(), needle.Str(), replacement.Str())), nil
	case KindRegex:
		return NewString(needle.Regex().pattern.ReplaceAllString(haystack.Str(), replacement.Str())), nil
	default:
		return subError("sub", needle, replacement, haystack)
	}
}

// stringsSub1 replaces only the first occurrence.
func stringsSub1(needle, replacement, haystack Value) (Value, error) {
	if replacement.kind != KindString || haystack.kind != KindString {
		return subError("sub1", needle, replacement, haystack)
	}
	switch needle.kind {
	case KindString:
		return NewString(strings.Replace(haystack.Str(), needle.Str(), replacement.Str(), 1)), nil
	case KindRegex:
		h := haystack.Str()
		re := needle.Regex().pattern
		m := re.FindStringSubmatchIndex(h)
		if m == nil {
			return haystack, nil
		}
		expanded := re.ExpandString(nil, replacement.Str(), h, m)
		return NewString(h[:m[0]] + string(expanded) + h[m[1]:]), nil
	default:
		return subError("sub1", needle, replacement, haystack)
	}
}

// stringsRsub1 replaces only the last occurrence.
func stringsRsub1(needle, replacement, haystack Value) (Value, error) {
	if replacement.kind != KindString || haystack.kind != KindString {
		return subError("rsub1", needle, replacement, haystack)
	}
	switch needle.kind {
	case KindString:
		h := haystack.Str()
		idx := strings.LastIndex(h, needle.Str())
		if idx < 0 {
			return haystack, nil
		}
		return NewString(h[:idx] + replacement.Str() + h[idx+len(needle.Str()):]), nil
	case KindRegex:
		h := haystack.Str()
		re := needle.Regex().pattern
		matches := re.FindAllStringSubmatchIndex(h, -1)
		if len(matches) == 0 {
			return haystack, nil
		}
		m := matches[len(matches)-1]
		expanded := re.ExpandString(nil, replacement.Str(), h, m)
		return NewString(h[:m[0]] + string(expanded) + h[m[1]:]), nil
	default:
		return subError("rsub1", needle, replacement, haystack)
	}
}

func subError(name string, needle, replacement, haystack Value) (Value, error) {
	return Value{}, NewErrorf("%s() expects three strings, got: %s, %s, %s",
		name, needle.Typename(), replacement.Typename(), haystack.Typename())
}

func stringsTrim(value Value) (Value, error) {
	if value.kind != KindString {
		return Value{}, NewErrorf("trim() requires a string, got %s", value.Typename())
	}
	return NewString(strings.TrimSpace(value.Str())), nil
}

// stringsFormat substitutes %s placeholders in a format string with the
// given argument, or with the elements of the given array. Also backs the
// `string % value` operator.
func stringsFormat(format, arg Value) (Value, error) {
	if format.kind != KindString {
		return Value{}, NewErrorf("format() requires a format string, got %s", format.Typename())
	}
	var args []Value
	if arg.kind == KindArray {
		args = arg.Array()
	} else {
		args = []Value{arg}
	}

	var b strings.Builder
	f := format.Str()
	next := 0
	for i := 0; i < len(f); i++ {
		if f[i] != '%' {
			b.WriteByte(f[i])
			continue
		}
		if i+1 >= len(f) {
			return Value{}, NewError("incomplete format specifier at end of format string")
		}
		i++
		switch f[i] {
		case '%':
			b.WriteByte('%')
		case 's':
			if next >= len(args) {
				return Value{}, NewError("not enough arguments for format string")
			}
			s, err := convStr(args[next])
			if err != nil {
				return Value{}, err
			}
			b.WriteString(s.Str())
			next++
		default:
			return Value{}, NewErrorf("invalid format specifier: %%%c", f[i])
		}
	}
	if next < len(args) {
		return Value{}, NewError("too many arguments for format string")
	}
	return NewString(b.String()), nil
}

// stringsBefore returns the part of the string preceding the first match of
// the separator, or nil when the separator does not occur.
func stringsBefore(value, sep Value) (Value, error) {
	idx, _, err := findSeparator("before", value, sep)
	if err != nil {
		return Value{}, err
	}
	if idx < 0 {
		return NewNil(), nil
	}
	return NewString(value.Str()[:idx]), nil
}

// stringsAfter returns the part of the string following the first match of
// the separator, or nil when the separator does not occur.
func stringsAfter(value, sep Value) (Value, error) {
	idx, width, err := findSeparator("after", value, sep)
	if err != nil {
		return Value{}, err
	}
	if idx < 0 {
		return NewNil(), nil
	}
	return NewString(value.Str()[idx+width:]), nil
}

func findSeparator(name string, value, sep Value) (idx, width int, err error) {
	if value.kind != KindString {
		return 0, 0, NewErrorf("%s() expects a string and a separator, got: %s, %s",
			name, value.Typename(), sep.Typename())
	}
	switch sep.kind {
	case KindString:
		idx := strings.Index(value.Str(), sep.Str())
		return idx, len(sep.Str()), nil
	case KindRegex:
		loc := sep.Regex().pattern.FindStringIndex(value.Str())
		if loc == nil {
			return -1, 0, nil
		}
		return loc[0], loc[1] - loc[0], nil
	default:
		return 0, 0, NewErrorf("%s() expects a string and a separator, got: %s, %s",
			name, value.Typename(), sep.Typename())
	}
}

// stringsChr converts a code point to a one-character string.
func stringsChr(value Value) (Value, error) {
	if value.kind != KindInt {
		return Value{}, NewErrorf("chr() requires an integer, got %s", value.Typename())
	}
	n := value.Int()
	if n < 0 || n > utf8.MaxRune {
		return Value{}, NewErrorf("chr() argument out of range: %d", n)
	}
	return NewString(string(rune(n))), nil
}

// stringsOrd converts a one-character string to its code point.
func stringsOrd(value Value) (Value, error) {
	if value.kind != KindString {
		return Value{}, NewErrorf("ord() requires a string, got %s", value.Typename())
	}
	runes := []rune(value.Str())
	if len(runes) != 1 {
		return Value{}, NewErrorf("ord() requires a single character, got %d of them", len(runes))
	}
	return NewInt(int64(runes[0])), nil
}

func stringsRot13(value Value) (Value, error) {
	if value.kind != KindString {
		return Value{}, NewErrorf("rot13() requires a string, got %s", value.Typename())
	}
	rotated := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r) && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		case unicode.IsLower(r) && r <= 'z':
			return 'a' + (r-'a'+13)%26
		default:
			return r
		}
	}, value.Str())
	return NewString(rotated), nil
}
