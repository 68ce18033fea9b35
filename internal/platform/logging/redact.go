package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the request headers whose values never
// reach the logs. The HTTP middleware filters headers with the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-csrf-token":  true,
}

// PersonalFields are the contact form fields. Attributes with these names
// are masked wherever they are logged.
var PersonalFields = []string{"email", "phone", "message"}

// emailPattern catches addresses that end up inside free-form values such as
// error strings.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// redactor masks by attribute name first and by value pattern second.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldName("csrf_key"),
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(emailPattern),
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range PersonalFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
