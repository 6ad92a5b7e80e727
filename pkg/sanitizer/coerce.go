package sanitizer

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumberRegex matches the numeric prefix the host accepts when turning
// text into a number ("42abc", " 7.9", "1e3").
var leadingNumberRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ToString converts a scalar to text: nil and false become "", true becomes
// "1", numbers use their shortest decimal form. Non-scalar values (maps,
// slices, structs) become "".
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		if t {
			return "1"
		}
		return ""
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return ToString(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return ToString(rv.Elem().Interface())
	}

	return ""
}

// Truthy reports whether v counts as true under the host's boolean rules.
// false, 0, 0.0, "", "0", nil and empty slices, arrays and maps are false;
// everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		return s != "" && s != "0"
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Truthy(rv.Elem().Interface())
	}

	return true
}

// OneZero maps truthy values to 1 and everything else to 0.
func OneZero(v any) int {
	if Truthy(v) {
		return 1
	}
	return 0
}

// ToInt converts v to an integer. Text yields its leading number ("42abc" is
// 42, "7.9" is 7), floats are truncated toward zero and saturate at the int64
// range, bools give 1 or 0, non-empty collections give 1. Anything else is 0.
func ToInt(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		return parseLeadingInt(t)
	case []byte:
		return parseLeadingInt(string(t))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return parseLeadingInt(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u)
		}
		return math.MaxInt64
	case reflect.Float32, reflect.Float64:
		return floatToInt(rv.Float())
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() > 0 {
			return 1
		}
		return 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return ToInt(rv.Elem().Interface())
	}

	return 0
}

// AbsInt converts v with ToInt and clamps negative results to 0.
func AbsInt(v any) int {
	return int(min(max(ToInt(v), 0), math.MaxInt))
}

func parseLeadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	num := leadingNumberRegex.FindString(s)
	if num == "" {
		return 0
	}

	if n, err := strconv.ParseInt(num, 10, 64); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil && f == 0 {
		return 0
	}
	return floatToInt(f)
}

func floatToInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
