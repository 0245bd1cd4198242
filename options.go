package fieldcheck

import (
	"fmt"
	"log/slog"

	"dario.cat/mergo"
	"golang.org/x/text/language"
)

// Option configures a [Field].
type Option func(*options)

type options struct {
	patterns   Patterns
	messages   Messages
	logger     *slog.Logger
	numberLang language.Tag
	err        error
}

func defaultOptions() options {
	return options{
		patterns:   defaultPatterns,
		messages:   DefaultMessages(),
		logger:     slog.New(slog.DiscardHandler),
		numberLang: language.English,
	}
}

// WithPatterns adds or overrides pattern table entries. The built-in table
// is never modified.
func WithPatterns(p Patterns) Option {
	return func(o *options) {
		o.patterns = o.patterns.Merge(p)
	}
}

// WithMessages replaces the message templates. Empty templates keep the
// bundled default.
func WithMessages(m Messages) Option {
	return func(o *options) {
		if err := mergo.Merge(&m, DefaultMessages()); err != nil {
			o.err = fmt.Errorf("merge messages: %w", err)
			return
		}
		o.messages = m
	}
}

// WithLogger sets the logger used to report configuration errors such as
// unknown pattern names. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNumberLanguage sets the language used to format megabyte figures in
// file size messages. Defaults to English (1,024.00).
func WithNumberLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.numberLang = tag
	}
}
