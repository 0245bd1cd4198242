package fieldcheck

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the value under test. The zero Value is empty.
//
// Checks dispatch on Kind instead of coercing loosely typed input:
//   - Min/Max compare rune count for strings, the number for numbers,
//     element count for lists and 1/0 for bools.
//   - Equal compares values of the same kind; a numeric string equals the
//     number it parses to.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []Value
}

// Null returns the empty value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List returns a list value holding items converted with [ValueOf].
func List(items ...any) Value {
	l := make([]Value, len(items))
	for i, it := range items {
		l[i] = ValueOf(it)
	}
	return Value{kind: KindList, list: l}
}

// ValueOf converts dynamic input into a Value.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case bool:
		return Bool(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f)
		}
		return String(t.String())
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{kind: KindList}
		}
		l := make([]Value, rv.Len())
		for i := range rv.Len() {
			l[i] = ValueOf(rv.Index(i).Interface())
		}
		return Value{kind: KindList, list: l}
	case reflect.Map:
		l := make([]Value, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			l = append(l, ValueOf(iter.Value().Interface()))
		}
		return Value{kind: KindList, list: l}
	}
	return String(fmt.Sprint(v))
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Len returns the rune count of a string or the element count of a list.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return utf8.RuneCountInString(v.str)
	case KindList:
		return len(v.list)
	}
	return 0
}

// Items returns the elements of a list value.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return append([]Value(nil), v.list...)
}

// IsEmpty reports whether v counts as absent: the empty value, an empty
// string or an empty list.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindString, KindList:
		return v.Len() == 0
	}
	return false
}

// Text returns the canonical string form used for pattern matching.
// Lists have no text form.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindEmpty:
		return "", true
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case KindBool:
		if v.b {
			return "1", true
		}
		return "", true
	}
	return "", false
}

// Float returns the number compared by Min and Max.
func (v Value) Float() float64 {
	switch v.kind {
	case KindString, KindList:
		return float64(v.Len())
	case KindNumber:
		return v.num
	case KindBool:
		if v.b {
			return 1
		}
	}
	return 0
}

// Equal reports whether v and o hold the same value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		if n, ok := v.numeric(); ok {
			if m, ok := o.numeric(); ok {
				return n == m
			}
		}
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// numeric returns the number held by a number, or parsed from a numeric string.
func (v Value) numeric() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(v.str, 64)
		return f, err == nil
	}
	return 0, false
}

func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		return fmt.Sprintf("%#v", v.list)
	}
	return "null"
}

// raw returns a plain Go value, used for ozzo rules and schema enums.
func (v Value) raw() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindList:
		l := make([]any, len(v.list))
		for i := range v.list {
			l[i] = v.list[i].raw()
		}
		return l
	}
	return nil
}
