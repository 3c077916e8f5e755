// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/filehost/internal/server/models"
)

// Repository stores users. Create returns common.ErrUsernameTaken when the
// username is already present; lookups return common.ErrorNotFound for
// missing rows.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
