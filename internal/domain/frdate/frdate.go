// Package frdate formats content dates the way the site displays them, in
// French.
package frdate

import (
	"fmt"
	"strings"
	"time"
)

// Invalid is shown in place of a date that cannot be parsed.
const Invalid = "Date invalide"

var weekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var months = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var layouts = []string{time.DateOnly, time.RFC3339, "2006-01-02T15:04:05", "2006-01"}

// Parse reads a content date. Accepted forms are YYYY-MM-DD, YYYY-MM and
// RFC 3339 timestamps.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Long formats s as "mercredi 25 décembre 2024".
func Long(s string) string {
	t, ok := Parse(s)
	if !ok {
		return Invalid
	}
	return fmt.Sprintf("%s %d %s %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// Medium formats s as "25 décembre 2024".
func Medium(s string) string {
	t, ok := Parse(s)
	if !ok {
		return Invalid
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}
