package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/filehost/internal/common"
	"github.com/dmitrijs2005/filehost/internal/server/auth"
)

// ErrNoToken means the request carried no bearer credential.
var ErrNoToken = errors.New("no bearer token")

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Gate authenticates a request. It holds no state and does no I/O beyond
// token verification.
//
// Errors: ErrNoToken, common.ErrTokenExpired, common.ErrInvalidToken, or
// anything else for faults on the server side.
type Gate func(r *http.Request) (*Identity, error)

// NewGate builds a Gate that accepts "Authorization: Bearer <token>".
func NewGate(v TokenVerifier) Gate {
	return func(r *http.Request) (*Identity, error) {
		header := r.Header.Get(common.AuthorizationHeader)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			return nil, ErrNoToken
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))

		claims, err := v.Verify(token)
		if err != nil {
			return nil, err
		}

		return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
	}
}

// authError maps a Gate failure to the response sent to the client.
func authError(err error) error {
	switch {
	case errors.Is(err, ErrNoToken):
		return PublicError{http.StatusUnauthorized, msgNoToken}
	case errors.Is(err, common.ErrTokenExpired):
		return PublicError{http.StatusUnauthorized, msgTokenExpired}
	case errors.Is(err, common.ErrInvalidToken):
		return PublicError{http.StatusUnauthorized, msgInvalidToken}
	default:
		return serverError(msgAuthServerError, fmt.Errorf("authenticate: %w", err))
	}
}

// RequireAuth rejects requests the gate does not accept and stores the
// caller's Identity in the request context for the rest.
func RequireAuth(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return HandlerWithError(func(w http.ResponseWriter, r *http.Request) error {
			id, err := gate(r)
			if err != nil {
				return authError(err)
			}

			ctx := WithIdentity(r.Context(), id)
			ctx = withLogger(ctx, loggerFromContext(ctx).With("user_id", id.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
			return nil
		})
	}
}
