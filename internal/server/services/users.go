// Package services holds the server's business operations: account
// signup and signin, file listing and owner-only deletion, and the upload
// coordinator.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/filehost/internal/common"
	"github.com/dmitrijs2005/filehost/internal/server/auth"
	"github.com/dmitrijs2005/filehost/internal/server/models"
	"github.com/dmitrijs2005/filehost/internal/server/repositories/repomanager"
)

// AuthResult is returned by successful signup and signin.
type AuthResult struct {
	User  *models.User
	Token string
}

// TokenIssuer issues bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// Password hashing seams.
var (
	hashPassword  = auth.HashPassword
	checkPassword = auth.CheckPassword
)

// unknownUserHash is compared against when the username does not exist, so
// signin costs one bcrypt comparison either way.
var unknownUserHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("unknown-user")
	return h
})

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	now         func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		now:         time.Now,
	}
}

// Signup creates the account and returns it with a fresh token.
//
// It returns common.ErrorValidation when either field is empty and
// common.ErrUsernameTaken when the username exists. Uniqueness is enforced
// by the store, so concurrent signups for one name yield exactly one
// account.
func (s *UserService) Signup(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: error creating user: %v", common.ErrorInternal, err)
	}

	return s.issue(user)
}

// Signin checks the credentials and returns a fresh token. Unknown users
// and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Signin(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			checkPassword(password, unknownUserHash())
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !checkPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return s.issue(user)
}

func (s *UserService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: issue token: %v", common.ErrorInternal, err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
