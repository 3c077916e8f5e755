// Package httpapi exposes the filehost operations over HTTP/JSON.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/filehost/internal/logging"
	"github.com/dmitrijs2005/filehost/internal/server/hostmetrics"
	"github.com/dmitrijs2005/filehost/internal/server/models"
	"github.com/dmitrijs2005/filehost/internal/server/services"
)

type AccountService interface {
	Signup(ctx context.Context, username, password string) (*services.AuthResult, error)
	Signin(ctx context.Context, username, password string) (*services.AuthResult, error)
}

type FileService interface {
	List(ctx context.Context, ownerID int64) ([]*models.File, error)
	Delete(ctx context.Context, fileID, userID int64) error
}

type UploadService interface {
	RequestUpload(ctx context.Context, userID int64, filename, contentType string) (*models.UploadTicket, error)
	ConfirmUpload(ctx context.Context, userID int64, filename string, size int64, key string) (*models.File, error)
}

type MetricsCollector interface {
	Collect(ctx context.Context) (*hostmetrics.Snapshot, error)
}

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Accounts AccountService
	Files    FileService
	Uploads  UploadService
	Metrics  MetricsCollector
	Tokens   TokenVerifier
	Logger   logging.Logger
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration
}

type Server struct {
	accounts AccountService
	files    FileService
	uploads  UploadService
	metrics  MetricsCollector
}

// NewRouter builds the chi mux with every route and middleware mounted.
func NewRouter(d Deps) http.Handler {
	s := &Server{
		accounts: d.Accounts,
		files:    d.Files,
		uploads:  d.Uploads,
		metrics:  d.Metrics,
	}

	log := d.Logger
	if log == nil {
		log = logging.Nop()
	}

	mux := chi.NewMux()

	mux.Use(middleware.RealIP)
	mux.Use(requestLogger(log))
	mux.Use(middleware.Recoverer)
	if d.RequestTimeout > 0 {
		mux.Use(middleware.Timeout(d.RequestTimeout))
	}

	mux.Method(http.MethodPost, "/signup", HandlerWithError(s.handleSignup))
	mux.Method(http.MethodPost, "/signIn", HandlerWithError(s.handleSignin))
	mux.Method(http.MethodGet, "/metrics", HandlerWithError(s.handleMetrics))

	mux.Group(func(r chi.Router) {
		r.Use(RequireAuth(NewGate(d.Tokens)))

		r.Method(http.MethodGet, "/files", HandlerWithError(s.handleListFiles))
		r.Method(http.MethodDelete, "/files/{id}", HandlerWithError(s.handleDeleteFile))
		r.Method(http.MethodGet, "/upload", HandlerWithError(s.handleRequestUpload))
		r.Method(http.MethodPost, "/files/confirm", HandlerWithError(s.handleConfirmUpload))
	})

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, jMap{"error": msgNotFound})
	})

	return mux
}
