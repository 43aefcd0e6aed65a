package database

import (
	"testing"
	"time"

	"github.com/ds124wfegd/catchcraft/internal/editor"
	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Now()

	repo.Save(editor.NewSession("a", editor.Settings{}, now))
	repo.Save(editor.NewSession("b", editor.Settings{}, now.Add(-3*time.Hour)))
	assert.Equal(t, 2, repo.Count())

	session, err := repo.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, "a", session.ID)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	removed := repo.DeleteIdle(now.Add(-2 * time.Hour))
	assert.Equal(t, []string{"b"}, removed)
	assert.Equal(t, 1, repo.Count())

	require.NoError(t, repo.Delete("a"))
	assert.ErrorIs(t, repo.Delete("a"), entity.ErrSessionNotFound)
	assert.Zero(t, repo.Count())
}

func TestExportRepository(t *testing.T) {
	fs := storage.NewFileStorage(t.TempDir())
	repo := NewExportRepository(fs)

	record := &entity.ExportRecord{
		ID:        "e1",
		SessionID: "s1",
		Width:     1000,
		Height:    800,
		Layer:     &entity.TextLayer{ID: "l1", Text: "hi", X: 500, Y: 430, FontSize: 300},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, repo.Save(record, []byte("png")))
	assert.True(t, fs.Exists("exports/e1.png"))

	found, err := repo.FindByID("e1")
	require.NoError(t, err)
	assert.Equal(t, record, found)

	image, err := repo.FindImage("e1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), image)

	require.NoError(t, repo.Delete("e1"))
	_, err = repo.FindByID("e1")
	assert.ErrorIs(t, err, entity.ErrExportNotFound)
	_, err = repo.FindImage("e1")
	assert.ErrorIs(t, err, entity.ErrExportNotFound)
	assert.ErrorIs(t, repo.Delete("e1"), entity.ErrExportNotFound)
}
