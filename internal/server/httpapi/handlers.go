package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/contactvault/internal/server/validation"
)

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// RegisterUser handles POST /api/user/register.
func (s *HTTPServer) RegisterUser(w http.ResponseWriter, r *http.Request) {

	var req validation.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.users.Register(r.Context(), &req)
	if err != nil {
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		writeDomainError(w, err, "User not found")
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.UserName)
	writeData(w, http.StatusCreated, toUserResponse(user, false))
}

// LoginUser handles POST /api/user/login. The response profile carries the
// freshly issued token.
func (s *HTTPServer) LoginUser(w http.ResponseWriter, r *http.Request) {

	var req validation.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.users.Login(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "User not found")
		return
	}

	writeData(w, http.StatusOK, toUserResponse(user, true))
}

// CurrentUser handles GET /api/user/current. The profile comes straight from
// the identity the middleware resolved; no extra store read.
func (s *HTTPServer) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := IdentityFromContext(r.Context())
	writeData(w, http.StatusOK, toUserResponse(user, false))
}

// UpdateUser handles PATCH /api/user/current.
func (s *HTTPServer) UpdateUser(w http.ResponseWriter, r *http.Request) {

	var req validation.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := IdentityFromContext(r.Context())

	updated, err := s.users.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		writeDomainError(w, err, "User not found")
		return
	}

	writeData(w, http.StatusOK, toUserResponse(updated, false))
}

// LogoutUser handles DELETE /api/user/current: it clears the stored token
// and responds with a success marker.
func (s *HTTPServer) LogoutUser(w http.ResponseWriter, r *http.Request) {

	user := IdentityFromContext(r.Context())

	if _, err := s.users.Logout(r.Context(), user); err != nil {
		writeDomainError(w, err, "User not found")
		return
	}

	writeData(w, http.StatusOK, true)
}

// CreateContact handles POST /api/contact.
func (s *HTTPServer) CreateContact(w http.ResponseWriter, r *http.Request) {

	var req validation.CreateContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := IdentityFromContext(r.Context())

	contact, err := s.contacts.Create(r.Context(), user.UserName, &req)
	if err != nil {
		writeDomainError(w, err, "Contact Not Found")
		return
	}

	writeData(w, http.StatusCreated, toContactResponse(contact))
}

// GetContact handles GET /api/contact/{id}.
func (s *HTTPServer) GetContact(w http.ResponseWriter, r *http.Request) {

	user := IdentityFromContext(r.Context())

	contact, err := s.contacts.Get(r.Context(), user.UserName, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, "Contact Not Found")
		return
	}

	writeData(w, http.StatusOK, toContactResponse(contact))
}

// UpdateContact handles PATCH /api/contact/{id}.
func (s *HTTPServer) UpdateContact(w http.ResponseWriter, r *http.Request) {

	var req validation.UpdateContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := IdentityFromContext(r.Context())

	contact, err := s.contacts.Update(r.Context(), user.UserName, r.PathValue("id"), &req)
	if err != nil {
		writeDomainError(w, err, "Contact Not Found")
		return
	}

	writeData(w, http.StatusOK, toContactResponse(contact))
}
