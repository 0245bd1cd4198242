package fieldcheck_test

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/fieldcheck"
)

type signup struct {
	Email string           `json:"email"`
	Age   int              `json:"age"`
	CV    *fieldcheck.File `json:"cv"`
}

func (s *signup) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Email, fieldcheck.AsRule("correo", func(f *fieldcheck.Field) {
			f.Required().Pattern("email")
		})),
		validation.Field(&s.Age, fieldcheck.AsRule("edad", func(f *fieldcheck.Field) {
			f.Min(18)
		})),
		validation.Field(&s.CV, fieldcheck.AsRule("cv", func(f *fieldcheck.Field) {
			f.Required().Ext("pdf")
		})),
	)
}

func TestAsRule(t *testing.T) {
	ok := &signup{Email: "a@b.co", Age: 30, CV: &fieldcheck.File{Name: "cv.pdf", Size: 10}}
	require.NoError(t, ok.Validate())

	bad := &signup{Email: "nope", Age: 12}
	err := bad.Validate()
	require.Error(t, err)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.EqualError(t, errs["email"], "Formato de campo correo no valido.")
	assert.EqualError(t, errs["age"], "El valor del campo edad es menor que el valor mínimo")
	assert.EqualError(t, errs["cv"], "El campo cv es obligatorio.")

	var failures fieldcheck.Errors
	require.True(t, errors.As(errs["cv"], &failures))
	assert.Equal(t, fieldcheck.RuleRequired, failures[0].Rule)
}

func TestAsRuleConfigurationError(t *testing.T) {
	rule := fieldcheck.AsRule("campo", func(f *fieldcheck.Field) {
		f.Pattern("nope")
	})
	err := validation.Validate("x", rule)

	var internal validation.InternalError
	require.True(t, errors.As(err, &internal))
	require.ErrorIs(t, internal.InternalError(), fieldcheck.ErrUnknownPattern)
}

func TestAsRuleFile(t *testing.T) {
	rule := fieldcheck.AsRule("cv", func(f *fieldcheck.Field) {
		f.MaxSize(1 << 20)
	})
	assert.NoError(t, validation.Validate(fieldcheck.File{Name: "a.pdf", Size: 1}, rule))
	assert.Error(t, validation.Validate(fieldcheck.File{Name: "a.pdf", Size: 2 << 20}, rule))
}
