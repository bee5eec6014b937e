package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/contactvault/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestLogin_KeepsTokenForSubsequentCalls(t *testing.T) {
	var authHeader string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/login":
			require.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"username":"test","password":"testtest"}`, string(body))
			w.Write([]byte(`{"data":{"username":"test","name":"test","token":"tok-1"}}`))
		case "/api/user/current":
			authHeader = r.Header.Get("Authorization")
			w.Write([]byte(`{"data":{"username":"test","name":"test"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	u, err := c.Login(context.Background(), "test", "testtest")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", u.Token)
	assert.Equal(t, "tok-1", c.Token())

	_, err = c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", authHeader, "token must be sent verbatim in Authorization")
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"username":"test","name":"test"}}`))
	})

	u, err := c.Register(context.Background(), "test", "testtest", "test")
	require.NoError(t, err)
	assert.Equal(t, "test", u.Username)
	assert.Empty(t, u.Token)
}

func TestErrorEnvelope_PlainString(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":"Invalid password"}`))
	})

	_, err := c.Login(context.Background(), "test", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid password", apiErr.Error())
}

func TestErrorEnvelope_FieldList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[` +
			`{"field":"username","message":"String must contain at least 3 character(s)"},` +
			`{"field":"password","message":"String must contain at least 8 character(s)"}]}`))
	})

	_, err := c.Register(context.Background(), "t", "p", "test")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Fields, 2)
	assert.Equal(t, common.FieldError{Field: "username", Message: "String must contain at least 3 character(s)"}, apiErr.Fields[0])
	assert.Contains(t, apiErr.Error(), "username: ")
	assert.Contains(t, apiErr.Error(), "password: ")
}

func TestLogout_ForgetsTokenEvenOnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":"Unauthorized"}`))
	})
	c.token = "stale"

	err := c.Logout(context.Background())
	require.Error(t, err)
	assert.Empty(t, c.Token())
}

func TestDo_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestUpdateContact_SendsOnlyProvidedFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/contact/c-1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"phone": "123456789"}, body)

		w.Write([]byte(`{"data":{"id":"c-1","first_name":"test","last_name":"test","phone":"123456789","email":"t@t.io"}}`))
	})

	phone := "123456789"
	ct, err := c.UpdateContact(context.Background(), "c-1", &ContactPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "123456789", ct.Phone)
}
