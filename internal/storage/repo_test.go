package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend-suite/internal/apperr"
	"backend-suite/internal/database"
	"backend-suite/internal/storage"
)

type note struct {
	ID   uint   `gorm:"primaryKey"`
	Body string `gorm:"size:64"`
	Tag  string `gorm:"size:16"`
}

func newNoteRepo(t *testing.T) *storage.Repo[note] {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))
	return storage.NewRepo[note](db, "note")
}

func TestRepoCreateAndGet(t *testing.T) {
	repo := newNoteRepo(t)
	ctx := context.Background()

	n := &note{Body: "first"}
	require.NoError(t, repo.Create(ctx, n))
	require.NotZero(t, n.ID)

	got, err := repo.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Body)
}

func TestRepoGetMissing(t *testing.T) {
	repo := newNoteRepo(t)

	_, err := repo.Get(context.Background(), 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRepoDeleteMissing(t *testing.T) {
	repo := newNoteRepo(t)

	err := repo.Delete(context.Background(), 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRepoListAfterCreatesAndDeletes(t *testing.T) {
	repo := newNoteRepo(t)
	ctx := context.Background()

	ids := make([]uint, 0, 5)
	for i := 0; i < 5; i++ {
		n := &note{Body: "n"}
		require.NoError(t, repo.Create(ctx, n))
		ids = append(ids, n.ID)
	}
	require.NoError(t, repo.Delete(ctx, ids[0]))
	require.NoError(t, repo.Delete(ctx, ids[3]))

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestRepoSave(t *testing.T) {
	repo := newNoteRepo(t)
	ctx := context.Background()

	n := &note{Body: "draft"}
	require.NoError(t, repo.Create(ctx, n))
	n.Body = "final"
	require.NoError(t, repo.Save(ctx, n))

	got, err := repo.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Body)
}

func TestRepoFindFirstCount(t *testing.T) {
	repo := newNoteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &note{Body: "a", Tag: "red"}))
	require.NoError(t, repo.Create(ctx, &note{Body: "b", Tag: "red"}))
	require.NoError(t, repo.Create(ctx, &note{Body: "c", Tag: "blue"}))

	recs, err := repo.Find(ctx, "tag = ?", "red")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	first, err := repo.First(ctx, "blue", "tag = ?", "blue")
	require.NoError(t, err)
	assert.Equal(t, "c", first.Body)

	_, err = repo.First(ctx, "green", "tag = ?", "green")
	assert.True(t, apperr.IsNotFound(err))

	n, err := repo.Count(ctx, "tag = ?", "red")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestRepoWithTxRollback(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))
	repo := storage.NewRepo[note](db, "note")
	ctx := context.Background()

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := repo.WithTx(tx).Create(ctx, &note{Body: "doomed"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	n, err := repo.Count(ctx, "body = ?", "doomed")
	require.NoError(t, err)
	assert.Zero(t, n)
}
