package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactvault/internal/common"
	"github.com/dmitrijs2005/contactvault/internal/server/models"
)

// webResponse is the uniform envelope: {"data": ...} on success,
// {"errors": ...} on failure. Errors are either a plain string or a list of
// {field, message} pairs for validation failures.
type webResponse struct {
	Data   any `json:"data,omitempty"`
	Errors any `json:"errors,omitempty"`
}

// UserResponse is the public profile. The password hash never leaves the
// server; Token is present only in the login response.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

type ContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func toUserResponse(u *models.User, includeToken bool) *UserResponse {
	resp := &UserResponse{Username: u.UserName, Name: u.Name}
	if includeToken && u.Token.Valid {
		resp.Token = u.Token.String
	}
	return resp
}

func toContactResponse(c *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

func writeData(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(webResponse{Data: payload})
}

func writeError(w http.ResponseWriter, status int, errs any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(webResponse{Errors: errs})
}

// writeDomainError translates a service error into the envelope. Messages
// are chosen by the caller for taxonomy members that read differently per
// endpoint (e.g. login's 404 vs a contact's 404); anything unclassified is a
// 500 that reveals no detail.
func writeDomainError(w http.ResponseWriter, err error, notFoundMsg string) {
	if ve, ok := common.AsValidationError(err); ok {
		writeError(w, http.StatusBadRequest, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, common.ErrorConflict):
		writeError(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, common.ErrorUnauthenticated):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
