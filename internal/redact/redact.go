// Package redact scrubs sensitive material from strings before they reach
// logs or error responses: connection strings, passwords, bearer tokens,
// email addresses, and SQL fragments.
package redact

import "regexp"

var (
	connStringPattern = regexp.MustCompile(`(?i)postgres(?:ql)?://[^@\s]+@`)
	passwordPattern   = regexp.MustCompile(`(?i)(password|passwd|pwd)[=:\s]['"]?[^'"&\s]{3,}`)
	jwtPattern        = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)
	emailPattern      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	sqlPattern        = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,*()='"$.]*(FROM|INTO|SET|WHERE)[\s\w,*()='"$.]*`,
	)
)

type replacement struct {
	pattern     *regexp.Regexp
	placeholder string
}

var replacements = []replacement{
	{connStringPattern, "[REDACTED_DSN]"},
	{passwordPattern, "[REDACTED_CREDENTIAL]"},
	{jwtPattern, "[REDACTED_TOKEN]"},
	{emailPattern, "[REDACTED_EMAIL]"},
	{sqlPattern, "[REDACTED_SQL]"},
}

// String returns s with all recognized sensitive fragments replaced by
// placeholders.
func String(s string) string {
	for _, r := range replacements {
		s = r.pattern.ReplaceAllString(s, r.placeholder)
	}
	return s
}

// Error returns the redacted message of err, or an empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
