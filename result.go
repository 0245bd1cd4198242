package fieldcheck

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"slices"
	"strings"
)

// Error is one failed check.
type Error struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

// Errors lists failed checks in the order they ran.
type Errors []Error

func (e Errors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns the rendered messages.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i := range e {
		msgs[i] = e[i].Message
	}
	return msgs
}

// ByField groups messages per field name in the map shape used by
// ozzo-validation, ready to be encoded as a JSON error response.
func (e Errors) ByField() ValidationErrors {
	grouped := map[string][]string{}
	var order []string
	for _, err := range e {
		if _, ok := grouped[err.Field]; !ok {
			order = append(order, err.Field)
		}
		grouped[err.Field] = append(grouped[err.Field], err.Message)
	}
	out := ValidationErrors{}
	for _, name := range order {
		out[name] = errors.New(strings.Join(grouped[name], "; "))
	}
	return out
}

// IsSuccess reports whether every check passed and the chain was configured
// correctly. It is true exactly when Errors is empty, except after a
// configuration error: then Errors may be empty while IsSuccess is false,
// and [Field.Err] holds the cause.
func (f *Field) IsSuccess() bool {
	return len(f.errs) == 0 && f.err == nil
}

// Errors returns the messages recorded so far, never nil.
func (f *Field) Errors() []string {
	return f.errs.Messages()
}

// Failures returns the failed checks with their field and rule.
func (f *Field) Failures() Errors {
	return slices.Clone(f.errs)
}

// Err returns the first configuration error, such as an unknown pattern name.
func (f *Field) Err() error {
	return f.err
}

// Result returns nil when every check passed, the configuration error when
// the chain was misconfigured, and otherwise the recorded [Errors].
func (f *Field) Result() error {
	if f.err != nil {
		return f.err
	}
	if len(f.errs) == 0 {
		return nil
	}
	return slices.Clone(f.errs)
}

var errorList = template.Must(template.New("errors").Parse(`<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>`))

// DisplayErrors renders the messages as an HTML list.
func (f *Field) DisplayErrors() string {
	var buf bytes.Buffer
	if err := errorList.Execute(&buf, f.Errors()); err != nil {
		return "<ul></ul>"
	}
	return buf.String()
}

// Report writes every message to w, one per line, and returns Result.
// Command line hosts can exit on a non-nil error:
//
//	if err := f.Report(os.Stdout); err != nil {
//	    os.Exit(1)
//	}
func (f *Field) Report(w io.Writer) error {
	for _, msg := range f.Errors() {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}
	if f.err != nil {
		if _, err := fmt.Fprintln(w, f.err); err != nil {
			return err
		}
	}
	return f.Result()
}
