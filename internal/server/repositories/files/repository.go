// Package files persists file metadata records.
package files

import (
	"context"

	"github.com/dmitrijs2005/filehost/internal/server/models"
)

// Repository stores file metadata. Lookups and deletes of missing rows
// return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	// ListByOwner returns the owner's files oldest first. The result is
	// never nil.
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.File, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	// GetByIDForUpdate is GetByID that also locks the row until the
	// surrounding transaction ends, where the backend supports it.
	GetByIDForUpdate(ctx context.Context, id int64) (*models.File, error)
	Delete(ctx context.Context, id int64) error
}
