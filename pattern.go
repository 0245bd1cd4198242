package fieldcheck

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"sort"
	"sync"
)

// PatternArray names the check that requires a list value instead of a regex match.
const PatternArray = "array"

var (
	// ErrUnknownPattern is returned when a pattern name is not in the table.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrInvalidPattern is returned when a pattern fragment does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Patterns maps a pattern name to a regular expression fragment.
// Fragments are matched against the whole value as ^(fragment)$.
type Patterns map[string]string

var defaultPatterns = Patterns{
	"uri":      `[A-Za-z0-9-\/_?&=]+`,
	"url":      `[A-Za-z0-9-:.\/_?&=#]+`,
	"alpha":    `[\p{L}]+`,
	"words":    `[\p{L}\s]+`,
	"alphanum": `[\p{L}0-9]+`,
	"int":      `[0-9]+`,
	"float":    `[0-9\.,]+`,
	"tel":      `[0-9+\s()-]+`,
	"text":     `[\p{L}0-9\s-.,;:!"%&()?+'°#\/@]+`,
	"file":     `[\p{L}\s0-9-_!%&()=\[\]#@,.;+]+\.[A-Za-z0-9]{2,4}`,
	"folder":   `[\p{L}\s0-9-_!%&()=\[\]#@,.;+]+`,
	"address":  `[\p{L}0-9\s.,()°-]+`,
	"date_dmy": `[0-9]{1,2}\-[0-9]{1,2}\-[0-9]{4}`,
	"date_ymd": `[0-9]{4}\-[0-9]{1,2}\-[0-9]{1,2}`,
	"email":    `[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}`,
}

// DefaultPatterns returns a copy of the built-in pattern table.
func DefaultPatterns() Patterns {
	return maps.Clone(defaultPatterns)
}

// Names returns the sorted pattern names, including "array".
func (p Patterns) Names() []string {
	names := make([]string, 0, len(p)+1)
	for k := range p {
		names = append(names, k)
	}
	if _, ok := p[PatternArray]; !ok {
		names = append(names, PatternArray)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new table with the entries of o added to or replacing those of p.
func (p Patterns) Merge(o Patterns) Patterns {
	out := maps.Clone(p)
	if out == nil {
		out = Patterns{}
	}
	maps.Copy(out, o)
	return out
}

// Validate compiles every entry and returns the errors joined.
func (p Patterns) Validate() error {
	var errs []error
	for _, name := range p.Names() {
		if name == PatternArray {
			continue
		}
		if _, err := compileFragment(p[name]); err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Regexp returns the anchored expression for name.
func (p Patterns) Regexp(name string) (*regexp.Regexp, error) {
	frag, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return cachedFragment(frag)
}

// compiled caches anchored table entries by fragment. Fragments passed to
// CustomPattern are compiled on every call and never stored.
var compiled sync.Map

func cachedFragment(frag string) (*regexp.Regexp, error) {
	if re, ok := compiled.Load(frag); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := compileFragment(frag)
	if err != nil {
		return nil, err
	}
	compiled.Store(frag, re)
	return re, nil
}

func compileFragment(frag string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(` + frag + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}
