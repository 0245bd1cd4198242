package fieldcheck

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/message"

	"github.com/Gobd/fieldcheck/transform"
)

const bytesPerMB = 1 << 20

// Field validates one named value or uploaded file at a time. Every check
// either appends a message or does nothing, and returns the same Field so
// calls can be chained:
//
//	f := fieldcheck.New().Name("email").Value(in).Required().Pattern("email")
//	if !f.IsSuccess() {
//	    return f.Result()
//	}
//
// Calling Name again re-targets the builder at another field; messages keep
// accumulating until [Field.Reset]. A Field is mutated in place and must
// not be shared between goroutines.
type Field struct {
	name  string
	value Value
	file  *File

	// fileActive is set by File and cleared by Value; Required checks
	// whichever was set last.
	fileActive bool

	errs Errors
	err  error

	patterns Patterns
	catalog  catalog
	logger   *slog.Logger
	printer  *message.Printer
	schema   *openapi3.Schema
}

// New returns an empty Field.
func New(opts ...Option) *Field {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Field{
		patterns: o.patterns,
		logger:   o.logger,
		printer:  message.NewPrinter(o.numberLang),
		schema:   openapi3.NewObjectSchema(),
	}

	if o.err != nil {
		f.configError(o.err)
	}

	c, err := o.messages.compile()
	if err != nil {
		f.configError(err)
		c, _ = DefaultMessages().compile()
	}
	f.catalog = c
	return f
}

// Reset starts a new session: name, value, file, messages and the schema
// description are cleared. Options are kept.
func (f *Field) Reset() *Field {
	f.name = ""
	f.value = Value{}
	f.file = nil
	f.fileActive = false
	f.errs = nil
	f.err = nil
	f.schema = openapi3.NewObjectSchema()
	return f
}

// Name sets the display name used in messages.
func (f *Field) Name(n string) *Field {
	f.name = n
	return f
}

// Value sets the value under test; see [ValueOf] for the conversion rules.
func (f *Field) Value(v any) *Field {
	f.value = ValueOf(v)
	f.fileActive = false
	f.describeValue()
	return f
}

// File sets the uploaded file under test.
func (f *Field) File(file File) *Field {
	f.file = &file
	f.fileActive = true
	f.describeFile()
	return f
}

// Pattern checks the value against a named entry of the pattern table.
// "array" instead requires a list value. Empty values pass every pattern;
// use Required to demand presence. An unknown name is a configuration
// error, reported by [Field.Err] and [Field.Result], not a validation
// message.
func (f *Field) Pattern(name string) *Field {
	if name == PatternArray {
		f.describeArray()
		if f.value.Kind() != KindList && !f.value.IsEmpty() {
			f.fail(RuleFormat, f.data())
		}
		return f
	}

	re, err := f.patterns.Regexp(name)
	if err != nil {
		f.configError(err, slog.String("pattern", name))
		return f
	}
	f.describePattern(name, re)
	f.match(re)
	return f
}

// CustomPattern is like Pattern with a caller supplied regular expression
// fragment. The fragment is anchored as ^(fragment)$.
func (f *Field) CustomPattern(fragment string) *Field {
	re, err := compileFragment(fragment)
	if err != nil {
		f.configError(err, slog.String("pattern", fragment))
		return f
	}
	f.describePattern("", re)
	f.match(re)
	return f
}

func (f *Field) match(re *regexp.Regexp) {
	if f.value.IsEmpty() {
		return
	}
	text, ok := f.value.Text()
	if !ok {
		f.fail(RuleFormat, f.data())
		return
	}
	if err := validation.Match(re).Validate(text); err != nil {
		f.fail(RuleFormat, f.data())
	}
}

// Required fails when the value is empty, an empty string or an empty
// list. After File, it instead fails when nothing was uploaded. Zero and
// false are present values.
func (f *Field) Required() *Field {
	f.describeRequired()
	if f.fileActive {
		if !f.file.Present() {
			f.fail(RuleRequired, f.data())
		}
		return f
	}
	if f.value.IsEmpty() {
		f.fail(RuleRequired, f.data())
	}
	return f
}

// Min fails when the value is below n. Strings compare their rune count,
// lists their length, numbers their value. The bound is inclusive.
func (f *Field) Min(n float64) *Field {
	f.describeBound(n, true)
	if f.value.Float() < n {
		f.fail(RuleMin, f.data())
	}
	return f
}

// Max fails when the value is above n, measured like Min.
func (f *Field) Max(n float64) *Field {
	f.describeBound(n, false)
	if f.value.Float() > n {
		f.fail(RuleMax, f.data())
	}
	return f
}

// Equal fails unless the value equals other under [Value.Equal].
func (f *Field) Equal(other any) *Field {
	o := ValueOf(other)
	f.describeEqual(o)
	if !f.value.Equal(o) {
		f.fail(RuleEqual, f.data())
	}
	return f
}

// MaxSize fails when the uploaded file is larger than size bytes.
// It does nothing when no file was uploaded.
func (f *Field) MaxSize(size int64) *Field {
	f.describeMaxSize(size)
	if f.file == nil || !f.file.Present() {
		return f
	}
	if f.file.Size > size {
		d := f.data()
		d.Limit = f.megabytes(size)
		d.Size = f.megabytes(f.file.Size)
		f.fail(RuleMaxSize, d)
	}
	return f
}

// Ext fails when the uploaded file's extension is not ext, compared case
// insensitively. It does nothing when no file was uploaded.
func (f *Field) Ext(ext string) *Field {
	f.describeExt(ext)
	if f.file == nil || !f.file.Present() {
		return f
	}
	if !strings.EqualFold(f.file.Ext(), strings.TrimPrefix(ext, ".")) {
		d := f.data()
		d.Extension = ext
		f.fail(RuleExt, d)
	}
	return f
}

// Purify returns text with HTML special characters escaped.
func (f *Field) Purify(text string) string {
	return transform.Purify(text)
}

func (f *Field) data() messageData {
	return messageData{Field: f.name}
}

func (f *Field) megabytes(n int64) string {
	return f.printer.Sprintf("%.2f", float64(n)/bytesPerMB)
}

func (f *Field) fail(rule string, d messageData) {
	f.errs = append(f.errs, Error{
		Field:   f.name,
		Rule:    rule,
		Message: f.catalog.render(rule, d),
	})
}

// configError keeps the first configuration error; later ones are only logged.
func (f *Field) configError(err error, attrs ...any) {
	err = fmt.Errorf("field %q: %w", f.name, err)
	f.logger.Error("fieldcheck: configuration error", append([]any{slog.String("field", f.name), slog.Any("error", err)}, attrs...)...)
	if f.err == nil {
		f.err = err
	}
}
