// Package httpapi exposes the REST surface of the server: request decoding,
// the {data}/{errors} response envelope, the auth middleware, and the HTTP
// server lifecycle.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactvault/internal/logging"
	"github.com/dmitrijs2005/contactvault/internal/server/models"
	"github.com/dmitrijs2005/contactvault/internal/server/validation"
)

// userSvc is the slice of UserService the HTTP layer depends on.
type userSvc interface {
	Register(ctx context.Context, req *validation.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *validation.LoginRequest) (*models.User, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User, req *validation.UpdateUserRequest) (*models.User, error)
}

// contactSvc is the slice of ContactService the HTTP layer depends on.
type contactSvc interface {
	Create(ctx context.Context, username string, req *validation.CreateContactRequest) (*models.Contact, error)
	Get(ctx context.Context, username string, id string) (*models.Contact, error)
	Update(ctx context.Context, username string, id string, req *validation.UpdateContactRequest) (*models.Contact, error)
}

type HTTPServer struct {
	address         string
	users           userSvc
	contacts        contactSvc
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us userSvc, cs contactSvc, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		contacts:        cs,
		shutdownTimeout: shutdownTimeout,
	}
}

// Routes builds the request multiplexer. Register and login are public;
// everything else goes through the auth middleware.
func (s *HTTPServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/user/register", s.RegisterUser)
	mux.HandleFunc("POST /api/user/login", s.LoginUser)

	mux.Handle("GET /api/user/current", s.Protect(http.HandlerFunc(s.CurrentUser)))
	mux.Handle("PATCH /api/user/current", s.Protect(http.HandlerFunc(s.UpdateUser)))
	mux.Handle("DELETE /api/user/current", s.Protect(http.HandlerFunc(s.LogoutUser)))

	mux.Handle("POST /api/contact", s.Protect(http.HandlerFunc(s.CreateContact)))
	mux.Handle("GET /api/contact/{id}", s.Protect(http.HandlerFunc(s.GetContact)))
	mux.Handle("PATCH /api/contact/{id}", s.Protect(http.HandlerFunc(s.UpdateContact)))

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
