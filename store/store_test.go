package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelaskoding/blog-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Category{}))
	return db
}

func newPost(t *testing.T, s *Store[models.Post]) models.Post {
	t.Helper()
	post := models.Post{
		Title:   "First post",
		Content: "Hello world",
		Gambar:  "posts/first.png",
		Author:  "Dina",
		Tahun:   2024,
	}
	require.NoError(t, s.Create(context.Background(), &post))
	require.NotZero(t, post.ID)
	return post
}

func TestCreateAssignsID(t *testing.T) {
	s := New[models.Post](setupTestDB(t))

	first := newPost(t, s)
	second := newPost(t, s)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFind(t *testing.T) {
	s := New[models.Post](setupTestDB(t))
	created := newPost(t, s)

	found, err := s.Find(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, found.Title)

	_, err = s.Find(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindBy(t *testing.T) {
	s := New[models.Post](setupTestDB(t))
	created := newPost(t, s)

	found, err := s.FindBy(context.Background(), "author = ?", "Dina")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.FindBy(context.Background(), "author = ?", "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExists(t *testing.T) {
	s := New[models.Post](setupTestDB(t))
	newPost(t, s)

	ok, err := s.Exists(context.Background(), "author = ?", "Dina")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(context.Background(), "author = ?", "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	s := New[models.Post](setupTestDB(t))

	posts, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)

	newPost(t, s)
	newPost(t, s)

	posts, err = s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestUpdateMergesSubset(t *testing.T) {
	s := New[models.Post](setupTestDB(t))
	created := newPost(t, s)

	updated, err := s.Update(context.Background(), created.ID, map[string]interface{}{
		"title": "New",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.Tahun, updated.Tahun)
}

func TestUpdateEmptyFieldSetIsNoop(t *testing.T) {
	s := New[models.Post](setupTestDB(t))
	created := newPost(t, s)

	updated, err := s.Update(context.Background(), created.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdateMissingRow(t *testing.T) {
	s := New[models.Post](setupTestDB(t))

	_, err := s.Update(context.Background(), 999, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := New[models.Post](setupTestDB(t))
	created := newPost(t, s)

	require.NoError(t, s.Delete(context.Background(), created.ID))

	_, err := s.Find(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingRow(t *testing.T) {
	s := New[models.Post](setupTestDB(t))
	assert.ErrorIs(t, s.Delete(context.Background(), 999), ErrNotFound)
}

func TestStoreIsGenericAcrossEntities(t *testing.T) {
	db := setupTestDB(t)
	categories := New[models.Category](db)

	category := models.Category{Title: "Tutorial"}
	require.NoError(t, categories.Create(context.Background(), &category))

	found, err := categories.Find(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tutorial", found.Title)
}
