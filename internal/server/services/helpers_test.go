package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/filehost/internal/dbx"
	"github.com/dmitrijs2005/filehost/internal/server/auth"
	"github.com/dmitrijs2005/filehost/internal/server/models"
	"github.com/dmitrijs2005/filehost/internal/server/repositories/files"
	"github.com/dmitrijs2005/filehost/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filehost/internal/server/repositories/repotest"
	"github.com/dmitrijs2005/filehost/internal/server/repositories/users"
)

// --- helpers ---

func newSQLiteEnv(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	return repotest.NewSQLiteDB(t), repomanager.NewSQLiteRepositoryManager()
}

func newIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte("test-secret"), 24*time.Hour)
}

type fakeRepoManager struct {
	users users.Repository
	files files.Repository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return f.users }
func (f *fakeRepoManager) Files(dbx.DBTX) files.Repository             { return f.files }

type fakeUsersRepo struct {
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Delete(context.Context, int64) error { return nil }

type fakeFilesRepo struct {
	err error
}

func (f *fakeFilesRepo) Create(context.Context, *models.File) (*models.File, error) { return nil, f.err }
func (f *fakeFilesRepo) ListByOwner(context.Context, int64) ([]*models.File, error) {
	return nil, f.err
}
func (f *fakeFilesRepo) GetByID(context.Context, int64) (*models.File, error) { return nil, f.err }
func (f *fakeFilesRepo) GetByIDForUpdate(context.Context, int64) (*models.File, error) {
	return nil, f.err
}
func (f *fakeFilesRepo) Delete(context.Context, int64) error { return f.err }

type fakeIssuer struct{}

func (fakeIssuer) Issue(int64, string) (string, error) { return "", errors.New("no key") }

type fakePresigner struct {
	url string
	err error

	gotKey         string
	gotContentType string
	gotTTL         time.Duration
}

func (f *fakePresigner) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	f.gotKey, f.gotContentType, f.gotTTL = key, contentType, ttl
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
