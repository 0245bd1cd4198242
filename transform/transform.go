package transform

import (
	"html"
	"reflect"
	"strings"
)

// Purify escapes the HTML special characters & < > " and '.
func Purify(s string) string {
	return html.EscapeString(s)
}

// StructPurify runs [Purify] on all string fields in the struct recursively.
func StructPurify(v any) {
	StructStringFunc(v, Purify)
}

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, arrays and map values.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// StructStringFunc applies f to every exported string reachable from the
// struct pointer v. Interface fields are left alone.
func StructStringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return
	}
	apply(rv.Elem(), f)
}

func apply(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			apply(v.Elem(), f)
		}
	case reflect.Struct:
		t := v.Type()
		for i := range v.NumField() {
			if t.Field(i).IsExported() {
				apply(v.Field(i), f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			apply(v.Index(i), f)
		}
	case reflect.Map:
		// Map values aren't addressable; copy, rewrite, put back.
		iter := v.MapRange()
		for iter.Next() {
			cp := reflect.New(iter.Value().Type()).Elem()
			cp.Set(iter.Value())
			apply(cp, f)
			v.SetMapIndex(iter.Key(), cp)
		}
	}
}
