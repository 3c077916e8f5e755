package repomanager

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filehost/internal/common"
	"github.com/dmitrijs2005/filehost/internal/dbx"
	"github.com/dmitrijs2005/filehost/internal/server/models"
)

func TestSQLiteRunMigrations_RealDatabase(t *testing.T) {
	ctx := context.Background()

	db, err := dbx.Open(ctx, dbx.DriverSQLite, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))
	// Running again is a no-op.
	require.NoError(t, m.RunMigrations(ctx, db))

	u, err := m.Users(db).Create(ctx, &models.User{Username: "alice", PasswordHash: "h", CreatedAt: time.Now()})
	require.NoError(t, err)

	_, err = m.Files(db).Create(ctx, &models.File{Name: "a.txt", Size: 10, Key: "1/a.txt", UploadedAt: time.Now(), OwnerID: u.ID})
	require.NoError(t, err)

	// Deleting the owner cascades to their files.
	require.NoError(t, m.Users(db).Delete(ctx, u.ID))
	list, err := m.Files(db).ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = m.Users(db).GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
