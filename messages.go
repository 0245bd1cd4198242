package fieldcheck

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Rule names recorded on each [Error] and used as message catalog keys.
const (
	RuleFormat   = "format"
	RuleRequired = "required"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleEqual    = "equal"
	RuleMaxSize  = "max_size"
	RuleExt      = "ext"
)

//go:embed locales/es.yaml
var defaultCatalog []byte

// Messages holds the templates used to render validation messages.
// Templates use text/template syntax; every one receives .Field, and the
// file checks also get .Limit, .Size and .Extension.
type Messages struct {
	Format   string `yaml:"format"`
	Required string `yaml:"required"`
	Min      string `yaml:"min"`
	Max      string `yaml:"max"`
	Equal    string `yaml:"equal"`
	MaxSize  string `yaml:"max_size"`
	Ext      string `yaml:"ext"`
}

type messageData struct {
	Field     string
	Limit     string
	Size      string
	Extension string
}

// DefaultMessages returns the bundled Spanish catalog.
func DefaultMessages() Messages {
	var m Messages
	if err := yaml.Unmarshal(defaultCatalog, &m); err != nil {
		panic(fmt.Sprintf("fieldcheck: bundled catalog: %v", err))
	}
	return m
}

// LoadMessages reads a YAML catalog. Keys that are missing or empty keep
// their default template.
func LoadMessages(r io.Reader) (Messages, error) {
	var m Messages
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Messages{}, fmt.Errorf("decode messages: %w", err)
	}
	if err := mergo.Merge(&m, DefaultMessages()); err != nil {
		return Messages{}, err
	}
	if _, err := m.compile(); err != nil {
		return Messages{}, err
	}
	return m, nil
}

type catalog map[string]*template.Template

func (m Messages) templates() map[string]string {
	return map[string]string{
		RuleFormat:   m.Format,
		RuleRequired: m.Required,
		RuleMin:      m.Min,
		RuleMax:      m.Max,
		RuleEqual:    m.Equal,
		RuleMaxSize:  m.MaxSize,
		RuleExt:      m.Ext,
	}
}

// compile parses every template and renders it once with sample data so
// references to unknown fields are caught up front.
func (m Messages) compile() (catalog, error) {
	c := catalog{}
	sample := messageData{Field: "field", Limit: "1.00", Size: "2.00", Extension: "pdf"}
	for rule, text := range m.templates() {
		t, err := template.New(rule).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("message %q: %w", rule, err)
		}
		if err := t.Execute(io.Discard, sample); err != nil {
			return nil, fmt.Errorf("message %q: %w", rule, err)
		}
		c[rule] = t
	}
	return c, nil
}

func (c catalog) render(rule string, data messageData) string {
	t, ok := c[rule]
	if !ok {
		return strings.TrimSpace(rule + " " + data.Field)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return strings.TrimSpace(rule + " " + data.Field)
	}
	return buf.String()
}
