package models

import "time"

const notInformed = "not informed"

// FormatBirthDate renders an ISO birth date as DD/MM/YYYY in UTC.
func FormatBirthDate(s *string) string {
	if s == nil || *s == "" {
		return notInformed
	}
	if t, err := time.Parse(time.RFC3339Nano, *s); err == nil {
		return t.UTC().Format("02/01/2006")
	}
	if t, err := time.Parse(time.DateOnly, DateOnly(*s)); err == nil {
		return t.Format("02/01/2006")
	}
	return *s
}

// FormatTimestamp renders a server timestamp as DD/MM/YYYY HH:MM in loc.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return notInformed
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("02/01/2006 15:04")
}

// FormatPhone returns the phone or "" when absent.
func FormatPhone(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
