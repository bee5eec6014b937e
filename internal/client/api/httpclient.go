package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactvault/internal/common"
)

// envelope mirrors the server's uniform response shape.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// HTTPClient implements Client over the backend's JSON API. It is not safe
// for concurrent use: the REPL drives it from a single goroutine.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the session token held from the last successful login.
func (c *HTTPClient) Token() string {
	return c.token
}

// do sends one request and decodes the envelope. A non-2xx status becomes an
// *APIError; transport failures are wrapped in ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp.StatusCode, env.Errors)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}

	return nil
}

// decodeAPIError parses the errors member, which is either a plain string or
// a list of field violations.
func decodeAPIError(status int, raw json.RawMessage) error {
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return &APIError{Status: status, Message: msg}
	}

	var fields []common.FieldError
	if err := json.Unmarshal(raw, &fields); err == nil {
		return &APIError{Status: status, Fields: fields}
	}

	return &APIError{Status: status, Message: http.StatusText(status)}
}

func (c *HTTPClient) Register(ctx context.Context, username, password, name string) (*User, error) {
	in := map[string]string{"username": username, "password": password, "name": name}
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/user/register", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and keeps the issued token for subsequent calls.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*User, error) {
	in := map[string]string{"username": username, "password": password}
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/user/login", in, &u); err != nil {
		return nil, err
	}
	c.token = u.Token
	return &u, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/user/current", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, name string) (*User, error) {
	in := map[string]string{"name": name}
	var u User
	if err := c.do(ctx, http.MethodPatch, "/api/user/current", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout invalidates the token server-side and forgets it locally either way.
func (c *HTTPClient) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodDelete, "/api/user/current", nil, nil)
	c.token = ""
	return err
}

func (c *HTTPClient) CreateContact(ctx context.Context, firstName, lastName, phone, email string) (*Contact, error) {
	in := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
		"email":      email,
	}
	var ct Contact
	if err := c.do(ctx, http.MethodPost, "/api/contact", in, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

func (c *HTTPClient) GetContact(ctx context.Context, id string) (*Contact, error) {
	var ct Contact
	if err := c.do(ctx, http.MethodGet, "/api/contact/"+id, nil, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

func (c *HTTPClient) UpdateContact(ctx context.Context, id string, patch *ContactPatch) (*Contact, error) {
	var ct Contact
	if err := c.do(ctx, http.MethodPatch, "/api/contact/"+id, patch, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}
