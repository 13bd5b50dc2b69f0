// Package models holds the customer record as served by the remote API and
// the draft the edit forms work on.
package models

import (
	"strings"
	"time"
)

// Record is one customer as owned by the remote API. Timestamps and ID are
// assigned by the server and only ever displayed by the client.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"telefone"`
	BirthDate *string   `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft is the editable, string-only form of a Record. It is also the
// request body for create and update calls.
type Draft struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	BirthDate string `json:"birth_date"`
}

// DraftFromRecord seeds a draft for the edit form: optional fields default to
// "" and the birth date is cut down to YYYY-MM-DD.
func DraftFromRecord(r Record) Draft {
	d := Draft{Name: r.Name, Email: r.Email}
	if r.Phone != nil {
		d.Phone = *r.Phone
	}
	if r.BirthDate != nil {
		d.BirthDate = DateOnly(*r.BirthDate)
	}
	return d
}

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// DateOnly returns the part of an ISO date/datetime before the "T".
func DateOnly(s string) string {
	date, _, _ := strings.Cut(s, "T")
	return date
}
