package fieldcheck_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/fieldcheck"
)

func TestDefaultMessages(t *testing.T) {
	m := fieldcheck.DefaultMessages()
	assert.Equal(t, "Formato de campo {{.Field}} no valido.", m.Format)
	assert.Equal(t, "El campo {{.Field}} es obligatorio.", m.Required)
	assert.Equal(t, "El archivo {{.Field}} no es {{.Extension}}.", m.Ext)
	assert.NotEmpty(t, m.Min)
	assert.NotEmpty(t, m.Max)
	assert.NotEmpty(t, m.Equal)
	assert.NotEmpty(t, m.MaxSize)
}

func TestLoadMessages(t *testing.T) {
	m, err := fieldcheck.LoadMessages(strings.NewReader(`
required: "{{.Field}} is required"
ext: "{{.Field}} must be a .{{.Extension}} file"
`))
	require.NoError(t, err)
	assert.Equal(t, "{{.Field}} is required", m.Required)
	assert.Equal(t, fieldcheck.DefaultMessages().Format, m.Format)

	f := fieldcheck.New(fieldcheck.WithMessages(m)).
		Name("cv").File(fieldcheck.File{Name: "cv.doc", Size: 1}).Ext("pdf").
		Name("name").Value("").Required()
	assert.Equal(t, []string{"cv must be a .pdf file", "name is required"}, f.Errors())
}

func TestLoadMessagesEmpty(t *testing.T) {
	m, err := fieldcheck.LoadMessages(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, fieldcheck.DefaultMessages(), m)
}

func TestLoadMessagesErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "yaml", in: "required: [unclosed"},
		{name: "template syntax", in: `required: "{{.Field"`},
		{name: "unknown field", in: `required: "{{.Nope}}"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fieldcheck.LoadMessages(strings.NewReader(tt.in))
			require.Error(t, err)
		})
	}
}
