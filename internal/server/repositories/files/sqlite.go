package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/filehost/internal/common"
	"github.com/dmitrijs2005/filehost/internal/dbx"
	"github.com/dmitrijs2005/filehost/internal/server/models"
)

const sqliteColumns = `id, name, size, storage_key, uploaded_at, user_id`

// SQLiteRepository implements file storage on SQLite. uploaded_at is
// stored as Unix milliseconds. SQLite has no row locks; GetByIDForUpdate
// relies on the single-writer connection pool instead.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	query := `INSERT INTO files (name, size, storage_key, uploaded_at, user_id) VALUES (?, ?, ?, ?, ?) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		file.Name, file.Size, file.Key, file.UploadedAt.UTC().UnixMilli(), file.OwnerID).Scan(&file.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.File, error) {
	query := `SELECT ` + sqliteColumns + ` FROM files WHERE user_id = ? ORDER BY uploaded_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	result := make([]*models.File, 0)
	for rows.Next() {
		item, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM files WHERE id = ?`, id)
	file, err := scanFile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	return file, nil
}

func (r *SQLiteRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.File, error) {
	return r.GetByID(ctx, id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(s scanner) (*models.File, error) {
	var (
		item       models.File
		uploadedAt int64
	)
	if err := s.Scan(&item.ID, &item.Name, &item.Size, &item.Key, &uploadedAt, &item.OwnerID); err != nil {
		return nil, err
	}
	item.UploadedAt = time.UnixMilli(uploadedAt).UTC()
	return &item, nil
}
