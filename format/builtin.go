package format

import (
	"net"
	"net/mail"
	"net/url"
	"time"

	"github.com/dlclark/regexp2"
)

var (
	dateRe        = regexp2.MustCompile(`^\d{4}-\d{2}-\d{2}$`, regexp2.None)
	timeRe        = regexp2.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`, regexp2.None)
	hostnameRe    = regexp2.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`, regexp2.None)
	uriTemplateRe = regexp2.MustCompile(`^([^{}]|\{[^{}]+\})*$`, regexp2.None)
	jsonPointerRe = regexp2.MustCompile(`^(/([^/~]|~[01])*)*$`, regexp2.None)
)

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// IsDateTime checks RFC 3339 date-time.
func IsDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return true
	}
	_, err = time.Parse(time.RFC3339, s)
	return err == nil
}

// IsDate checks RFC 3339 full-date.
func IsDate(s string) bool {
	if !matches(dateRe, s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsTime checks RFC 3339 full-time (with required offset or "Z").
func IsTime(s string) bool {
	return matches(timeRe, s)
}

// IsEmail checks a bare RFC 5322 address, rejecting display-name forms.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// IsHostname checks an RFC 1123 hostname.
func IsHostname(s string) bool {
	return len(s) <= 253 && matches(hostnameRe, s)
}

// IsIPv4 checks a dotted-decimal IPv4 address.
func IsIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && hasDot(s)
}

// IsIPv6 checks a colon-separated IPv6 address.
func IsIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil && ip.To16() != nil
}

func hasDot(s string) bool {
	for _, c := range s {
		if c == '.' {
			return true
		}
	}
	return false
}

// IsURI checks an absolute RFC 3986 URI.
func IsURI(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.IsAbs()
}

// IsURIReference checks a URI or a relative reference.
func IsURIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

// IsURITemplate checks RFC 6570-shaped brace expressions, structurally: no
// nested or unmatched braces.
func IsURITemplate(s string) bool {
	return matches(uriTemplateRe, s)
}

// IsJSONPointer checks the RFC 6901 pointer grammar.
func IsJSONPointer(s string) bool {
	return matches(jsonPointerRe, s)
}

// IsRegex checks that s compiles as an ECMA-dialect regex, the same dialect
// the validator uses for "pattern"/"patternProperties".
func IsRegex(s string) bool {
	_, err := regexp2.Compile(s, regexp2.ECMAScript)
	return err == nil
}
