package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a Saned profile as read from the user directory.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Role         UserRole
	Organization string
	Location     string
	// Tags is nil when the profile never set tags; an empty non-nil slice
	// means tags were set and cleared.
	Tags      []string
	Interests []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompareTags returns the attribute set used for matching: Tags when
// present, Interests otherwise. The two lists are never merged.
func (u *User) CompareTags() []string {
	if u.Tags != nil {
		return u.Tags
	}
	return u.Interests
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Validate checks the fields the directory requires before a profile is
// written by an operator import.
func (u *User) Validate() error {
	var errs []FieldError

	if u.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if u.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	}
	if !u.Role.IsValid() {
		errs = append(errs, FieldError{Field: "role", Message: "must be startup, individual, organization or investor"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
