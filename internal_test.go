package fieldcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheSize() int {
	n := 0
	compiled.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func TestCustomPatternIsNotCached(t *testing.T) {
	frag := `custom-[0-9]{3}-only`
	before := cacheSize()

	for range 3 {
		f := New().Name("campo").Value("custom-123-only").CustomPattern(frag)
		assert.True(t, f.IsSuccess())
	}

	_, ok := compiled.Load(frag)
	assert.False(t, ok)
	assert.Equal(t, before, cacheSize())
}

func TestTablePatternIsCached(t *testing.T) {
	p := DefaultPatterns().Merge(Patterns{"cp": `[0-9]{5}-cached`})
	re1, err := p.Regexp("cp")
	require.NoError(t, err)
	re2, err := p.Regexp("cp")
	require.NoError(t, err)
	assert.Same(t, re1, re2)
}

func TestOptionErrorIsConfigurationError(t *testing.T) {
	boom := errors.New("boom")
	f := New(func(o *options) { o.err = boom }).Name("campo").Value("x").Required()

	require.ErrorIs(t, f.Err(), boom)
	assert.False(t, f.IsSuccess())
	assert.Empty(t, f.Errors())
}

func TestWithMessagesKeepsDefaultsOnSuccess(t *testing.T) {
	o := defaultOptions()
	WithMessages(Messages{Ext: "{{.Field}}: {{.Extension}}"})(&o)

	require.NoError(t, o.err)
	assert.Equal(t, "{{.Field}}: {{.Extension}}", o.messages.Ext)
	assert.Equal(t, DefaultMessages().Required, o.messages.Required)
}
