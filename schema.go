package fieldcheck

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema describes the checks applied so far as an OpenAPI object schema,
// one property per field name. The schema is owned by f until Reset.
func (f *Field) Schema() *openapi3.Schema {
	return f.schema
}

func (f *Field) property() *openapi3.Schema {
	name := f.name
	if name == "" {
		name = "value"
	}
	ref, ok := f.schema.Properties[name]
	if !ok || ref == nil || ref.Value == nil {
		ref = openapi3.NewSchemaRef("", openapi3.NewSchema())
		f.schema.Properties[name] = ref
	}
	return ref.Value
}

func describe(s *openapi3.Schema, desc string) {
	if s.Description != "" && !strings.HasSuffix(s.Description, " ") {
		s.Description += " "
	}
	s.Description += desc
}

func (f *Field) describeValue() {
	var t string
	switch f.value.Kind() {
	case KindString:
		t = openapi3.TypeString
	case KindNumber:
		t = openapi3.TypeNumber
	case KindBool:
		t = openapi3.TypeBoolean
	case KindList:
		t = openapi3.TypeArray
	default:
		return
	}
	f.property().Type = &openapi3.Types{t}
}

func (f *Field) describeFile() {
	p := f.property()
	p.Type = &openapi3.Types{openapi3.TypeString}
	p.Format = "binary"
}

func (f *Field) describeArray() {
	f.property().Type = &openapi3.Types{openapi3.TypeArray}
}

func (f *Field) describePattern(name string, re *regexp.Regexp) {
	p := f.property()
	p.Pattern = re.String()
	if name != "" {
		p.Format = name
	}
}

func (f *Field) describeRequired() {
	name := f.name
	if name == "" {
		name = "value"
	}
	f.property()
	if !slices.Contains(f.schema.Required, name) {
		f.schema.Required = append(f.schema.Required, name)
	}
}

func (f *Field) describeBound(n float64, lower bool) {
	p := f.property()
	switch f.value.Kind() {
	case KindString, KindList:
		l := uint64(math.Max(0, math.Ceil(n)))
		if !lower {
			l = uint64(math.Max(0, math.Floor(n)))
		}
		switch {
		case f.value.Kind() == KindString && lower:
			p.MinLength = l
		case f.value.Kind() == KindString:
			p.MaxLength = &l
		case lower:
			p.MinItems = l
		default:
			p.MaxItems = &l
		}
	default:
		if lower {
			p.Min = &n
		} else {
			p.Max = &n
		}
	}
}

func (f *Field) describeEqual(o Value) {
	f.property().Enum = []any{o.raw()}
}

func (f *Field) describeMaxSize(size int64) {
	describe(f.property(), fmt.Sprintf("max %s MB", f.megabytes(size)))
}

func (f *Field) describeExt(ext string) {
	describe(f.property(), "extension "+strings.TrimPrefix(ext, "."))
}
