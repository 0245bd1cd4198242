package is

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
)

var uriRegexp = regexp.MustCompile(`^[A-Za-z0-9\-/_]+$`)

// IsInteger reports whether s is a base-10 integer with an optional sign.
// Leading zeros are rejected.
func IsInteger(s string) bool {
	return s != "" && govalidator.IsInt(s)
}

// IsFloat reports whether s is a decimal number. A comma is accepted as the
// decimal separator when s has no dot. Surrounding spaces are ignored.
func IsFloat(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	if !govalidator.IsFloat(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsAlpha reports whether s only holds ASCII letters.
func IsAlpha(s string) bool {
	return s != "" && govalidator.IsAlpha(s)
}

// IsAlphanumeric reports whether s only holds ASCII letters and digits.
func IsAlphanumeric(s string) bool {
	return s != "" && govalidator.IsAlphanumeric(s)
}

// IsURL reports whether s is an absolute URL with a scheme and a host.
func IsURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return govalidator.IsURL(s)
}

// IsURI reports whether s is a path made of letters, digits, '-', '/' and '_'.
func IsURI(s string) bool {
	return uriRegexp.MatchString(s)
}

// IsBool reports whether s spells a boolean: 1/0, true/false, on/off or
// yes/no, case insensitively.
func IsBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes", "0", "false", "off", "no":
		return true
	}
	return false
}

// IsEmail reports whether s is an email address whose domain has a
// top-level part.
func IsEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at < 1 || !strings.Contains(s[at+1:], ".") {
		return false
	}
	return govalidator.IsEmail(s)
}
