// Package api provides the HTTP client used by the ContactVault CLI to talk
// to the backend. It mirrors the server's endpoints and response envelope.
package api

import "context"

// User is the profile as returned by the server. Token is populated only by
// the login response.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// ContactPatch carries a partial contact update. Nil fields are omitted from
// the request and keep their stored values.
type ContactPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Client defines the command surface the CLI needs. The HTTP implementation
// keeps the session token between calls; tests can provide a stub.
type Client interface {
	Register(ctx context.Context, username, password, name string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	CurrentUser(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, name string) (*User, error)
	Logout(ctx context.Context) error
	CreateContact(ctx context.Context, firstName, lastName, phone, email string) (*Contact, error)
	GetContact(ctx context.Context, id string) (*Contact, error)
	UpdateContact(ctx context.Context, id string, patch *ContactPatch) (*Contact, error)
}
