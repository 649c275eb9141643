package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelaskoding/blog-api/models"
)

func createCategory(t *testing.T, r *gin.Engine, title string) uint {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"title": title,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	require.NoError(t, json.Unmarshal(env.Data, &category))
	require.NotZero(t, category.ID)
	return category.ID
}

func TestCreateCategory(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"title": "Tutorial",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Category created successfully", env.Status)

	var category models.Category
	require.NoError(t, json.Unmarshal(env.Data, &category))
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Tutorial", category.Title)
}

func TestCreateCategoryRequiresTitle(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, env.Errors, "title")
}

func TestCreateCategoryTitleTooLong(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"title": strings.Repeat("x", 256),
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, env.Errors, "title")
}

func TestListCategories(t *testing.T) {
	r, _ := newTestRouter(t)
	createCategory(t, r, "News")
	createCategory(t, r, "Review")

	w, env := doJSON(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success gets all categories", env.Status)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 2)
}

func TestGetCategoryNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/categories/999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "null", string(env.Data))
}

func TestUpdateCategory(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createCategory(t, r, "Old name")

	w, env := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/categories/%d", id), map[string]interface{}{
		"title": "New name",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Success update category", env.Status)

	var category models.Category
	require.NoError(t, json.Unmarshal(env.Data, &category))
	assert.Equal(t, "New name", category.Title)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPut, "/api/categories/999", map[string]interface{}{
		"title": "New name",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createCategory(t, r, "Disposable")

	w, env := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Success delete category", env.Status)
	assert.Equal(t, "null", string(env.Data))

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
