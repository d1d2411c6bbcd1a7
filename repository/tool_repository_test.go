package repository

import (
	"testing"
	"time"

	"github.com/moneygate/tool-service/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.GeneratedTool{}))
	return db
}

func newTool(ownerID, title string, createdAt time.Time) *models.GeneratedTool {
	id := uuid.New()
	return &models.GeneratedTool{
		Base:        models.Base{ID: id, CreatedAt: createdAt},
		OwnerID:     ownerID,
		Title:       title,
		Description: "desc",
		FileType:    models.FileTypeSpreadsheet,
		FileFormat:  models.FileFormatXLSX,
		SizeBytes:   128,
		DownloadURL: "https://blobs.test/" + id.String(),
		StoragePath: "users/" + ownerID + "/tools/" + id.String() + ".xlsx",
		TemplateID:  "savings-tracker",
	}
}

func TestToolRepository_CreateAndGet(t *testing.T) {
	repo := NewToolRepository(setupDB(t))

	tool := newTool("u1", "My Goals", time.Now().UTC())
	require.NoError(t, repo.Create(tool))

	got, err := repo.GetByOwnerAndID("u1", tool.ID)
	require.NoError(t, err)
	assert.Equal(t, tool.ID, got.ID)
	assert.Equal(t, tool.Title, got.Title)
	assert.Equal(t, tool.StoragePath, got.StoragePath)
	assert.Equal(t, tool.SizeBytes, got.SizeBytes)
}

func TestToolRepository_GetScopedToOwner(t *testing.T) {
	repo := NewToolRepository(setupDB(t))

	tool := newTool("u1", "Mine", time.Now().UTC())
	require.NoError(t, repo.Create(tool))

	_, err := repo.GetByOwnerAndID("u2", tool.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestToolRepository_ListByOwnerNewestFirst(t *testing.T) {
	repo := NewToolRepository(setupDB(t))

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(newTool("u1", title, base.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, repo.Create(newTool("u2", "other owner", base)))

	tools, err := repo.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, tools, 3)
	assert.Equal(t, "third", tools[0].Title)
	assert.Equal(t, "second", tools[1].Title)
	assert.Equal(t, "first", tools[2].Title)

	// Listing again with no writes in between gives the same order.
	again, err := repo.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, again, 3)
	for i := range tools {
		assert.Equal(t, tools[i].ID, again[i].ID)
	}
}

func TestToolRepository_ListByOwnerWithPagination(t *testing.T) {
	repo := NewToolRepository(setupDB(t))

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(newTool("u1", "tool", base.Add(time.Duration(i)*time.Second))))
	}

	page, total, err := repo.ListByOwnerWithPagination("u1", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)

	page, _, err = repo.ListByOwnerWithPagination("u1", 3, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestToolRepository_DeleteByOwnerAndID(t *testing.T) {
	repo := NewToolRepository(setupDB(t))

	tool := newTool("u1", "Disposable", time.Now().UTC())
	require.NoError(t, repo.Create(tool))

	require.NoError(t, repo.DeleteByOwnerAndID("u1", tool.ID))

	_, err := repo.GetByOwnerAndID("u1", tool.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, repo.DeleteByOwnerAndID("u1", tool.ID))
}

func TestToolRepository_CountByOwner(t *testing.T) {
	repo := NewToolRepository(setupDB(t))

	require.NoError(t, repo.Create(newTool("u1", "a", time.Now().UTC())))
	require.NoError(t, repo.Create(newTool("u1", "b", time.Now().UTC())))
	require.NoError(t, repo.Create(newTool("u2", "c", time.Now().UTC())))

	count, err := repo.CountByOwner("u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
