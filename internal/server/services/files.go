package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filehost/internal/common"
	"github.com/dmitrijs2005/filehost/internal/dbx"
	"github.com/dmitrijs2005/filehost/internal/server/models"
	"github.com/dmitrijs2005/filehost/internal/server/repositories/repomanager"
)

type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager) *FileService {
	return &FileService{db: db, repomanager: m}
}

// List returns the owner's files, oldest upload first.
func (s *FileService) List(ctx context.Context, ownerID int64) ([]*models.File, error) {
	files, err := s.repomanager.Files(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return files, nil
}

// Delete removes the file if userID owns it.
//
// The row is read with a lock and deleted in the same transaction, so the
// owner check always applies to the record being removed. It returns
// common.ErrorNotFound for a missing file and common.ErrorForbidden when
// the file belongs to someone else.
func (s *FileService) Delete(ctx context.Context, fileID, userID int64) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)

		file, err := repo.GetByIDForUpdate(ctx, fileID)
		if err != nil {
			return err
		}

		if file.OwnerID != userID {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, file.ID)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorForbidden):
		return err
	default:
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
}
