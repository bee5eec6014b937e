// Package validation schema-checks structured request payloads before any
// business logic runs. Each schema accumulates every violated constraint so
// the caller sees all problems in a single response.
package validation

import (
	"fmt"
	"net/mail"

	"github.com/dmitrijs2005/contactvault/internal/common"
)

// RegisterRequest is the payload for POST /api/user/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the payload for POST /api/user/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the payload for PATCH /api/user/current.
// Name stays required on this schema even though the operation is a PATCH;
// the source system's schema is strict here and is kept as observed.
type UpdateUserRequest struct {
	Name string `json:"name"`
}

// CreateContactRequest is the payload for POST /api/contact.
type CreateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// UpdateContactRequest is the payload for PATCH /api/contact/:id.
// Nil fields were absent from the request and are left unchanged.
type UpdateContactRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// violations collects field errors while a schema is checked.
type violations struct {
	fields []common.FieldError
}

func (v *violations) add(field, message string) {
	v.fields = append(v.fields, common.FieldError{Field: field, Message: message})
}

// length enforces min <= len(value) <= max on a required string field.
func (v *violations) length(field, value string, min, max int) {
	if len(value) < min {
		v.add(field, fmt.Sprintf("String must contain at least %d character(s)", min))
		return
	}
	if len(value) > max {
		v.add(field, fmt.Sprintf("String must contain at most %d character(s)", max))
	}
}

func (v *violations) email(field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Invalid email")
	}
}

// err returns nil when no constraint was violated.
func (v *violations) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &common.ValidationError{Fields: v.fields}
}

// ValidateRegister checks the register schema:
// username 3–255, password 8–255, name 3–255.
func ValidateRegister(r *RegisterRequest) error {
	v := &violations{}
	v.length("username", r.Username, 3, 255)
	v.length("password", r.Password, 8, 255)
	v.length("name", r.Name, 3, 255)
	return v.err()
}

// ValidateLogin checks the login schema: username 3–255, password 8–255.
func ValidateLogin(r *LoginRequest) error {
	v := &violations{}
	v.length("username", r.Username, 3, 255)
	v.length("password", r.Password, 8, 255)
	return v.err()
}

// ValidateUpdateUser checks the update-profile schema: name 3–255, required.
func ValidateUpdateUser(r *UpdateUserRequest) error {
	v := &violations{}
	v.length("name", r.Name, 3, 255)
	return v.err()
}

// ValidateCreateContact checks the create-contact schema: first_name 3–255,
// last_name 3–255, phone 9–14, email valid — all required.
func ValidateCreateContact(r *CreateContactRequest) error {
	v := &violations{}
	v.length("first_name", r.FirstName, 3, 255)
	v.length("last_name", r.LastName, 3, 255)
	v.length("phone", r.Phone, 9, 14)
	v.email("email", r.Email)
	return v.err()
}

// ValidateUpdateContact checks the update-contact schema: the same fields as
// create, each optional. Absent fields are skipped entirely.
func ValidateUpdateContact(r *UpdateContactRequest) error {
	v := &violations{}
	if r.FirstName != nil {
		v.length("first_name", *r.FirstName, 3, 255)
	}
	if r.LastName != nil {
		v.length("last_name", *r.LastName, 3, 255)
	}
	if r.Phone != nil {
		v.length("phone", *r.Phone, 9, 14)
	}
	if r.Email != nil {
		v.email("email", *r.Email)
	}
	return v.err()
}
