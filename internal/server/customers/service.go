package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/common"
	"github.com/google/uuid"
)

// Messages returned to clients.
const (
	MsgNameRequired   = "name should not be empty"
	MsgEmailRequired  = "email should not be empty"
	MsgEmailInvalid   = "email must be an email"
	MsgBirthDateValid = "birth_date must be a valid ISO 8601 date string"
	MsgEmailInUse     = "Email already in use"
	MsgNotFound       = "Customer not found"
)

// ValidationError lists every rule an Input broke.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// normalized is an Input after trimming and parsing.
type normalized struct {
	name      string
	email     string
	phone     *string
	birthDate *time.Time
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func parseBirthDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func normalize(in Input) (*normalized, error) {
	n := &normalized{
		name:  strings.TrimSpace(in.Name),
		email: strings.TrimSpace(in.Email),
	}

	var msgs []string
	if n.name == "" {
		msgs = append(msgs, MsgNameRequired)
	}
	switch {
	case n.email == "":
		msgs = append(msgs, MsgEmailRequired)
	case !strings.Contains(n.email, "@"):
		msgs = append(msgs, MsgEmailInvalid)
	}

	if p := digitsOnly(in.Phone); p != "" {
		n.phone = &p
	}

	if bd := strings.TrimSpace(in.BirthDate); bd != "" {
		t, err := parseBirthDate(bd)
		if err != nil {
			msgs = append(msgs, MsgBirthDateValid)
		} else {
			n.birthDate = &t
		}
	}

	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}
	return n, nil
}

// validID keeps malformed ids away from the uuid column.
func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*Customer, error) {
	n, err := normalize(in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c := &Customer{
		ID:        s.newID(),
		Name:      n.name,
		Email:     n.email,
		Phone:     n.phone,
		BirthDate: n.birthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

// Update replaces every editable field of id with in.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Customer, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	n, err := normalize(in)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	existing.Name = n.name
	existing.Email = n.email
	existing.Phone = n.phone
	existing.BirthDate = n.birthDate
	existing.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
