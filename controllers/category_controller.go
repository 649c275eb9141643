package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelaskoding/blog-api/models"
	"github.com/kelaskoding/blog-api/store"
	"github.com/kelaskoding/blog-api/utils"
	"github.com/kelaskoding/blog-api/validation"
)

// CategoryController manages CRUD operations for categories. It follows the
// same request flow as PostController with a single-field rule set.
type CategoryController struct {
	categories *store.Store[models.Category]
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{categories: store.New[models.Category](db)}
}

// Index returns the full category collection.
func (c *CategoryController) Index(ctx *gin.Context) {
	const cacheKey = "cache:categories:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	categories, err := c.categories.List(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed gets all categories")
		return
	}

	utils.CacheSetJSON(cacheKey, utils.JSONResponse{
		Status: "success gets all categories",
		Code:   http.StatusOK,
		Data:   categories,
	}, time.Hour)
	utils.Success(ctx, "success gets all categories", categories)
}

// Store validates and persists a new category.
func (c *CategoryController) Store(ctx *gin.Context) {
	var in validation.CategoryCreate
	if errs := validation.DecodeJSON(ctx.Request.Body, &in); errs != nil {
		utils.ValidationFailed(ctx, "Failed create category", errs)
		return
	}
	if errs := validation.Struct(in); errs != nil {
		utils.ValidationFailed(ctx, "Failed create category", errs)
		return
	}

	category := models.Category{Title: utils.Sanitize(in.Title)}
	if err := c.categories.Create(ctx.Request.Context(), &category); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed create category")
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.Created(ctx, "Category created successfully", category)
}

// Show looks up a category by identifier.
func (c *CategoryController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.NotFound(ctx, "Failed get by id")
		return
	}

	cacheKey := "cache:categories:detail:" + strconv.FormatUint(uint64(id), 10)
	if b, cached := utils.CacheGetBytes(cacheKey); cached {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	category, err := c.categories.Find(ctx.Request.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(ctx, "Failed get by id")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "Failed get by id")
		return
	}

	utils.CacheSetJSON(cacheKey, utils.JSONResponse{
		Status: "Success get by id",
		Code:   http.StatusOK,
		Data:   category,
	}, time.Hour)
	utils.Success(ctx, "Success get by id", category)
}

// Update merges the supplied fields into an existing category. The lookup
// happens before validation, matching the post flow.
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.NotFound(ctx, "Failed get by id")
		return
	}
	if _, err := c.categories.Find(ctx.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(ctx, "Failed get by id")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "Failed get by id")
		return
	}

	var in validation.CategoryUpdate
	if errs := validation.DecodeJSON(ctx.Request.Body, &in); errs != nil {
		utils.ValidationFailed(ctx, "Failed update category", errs)
		return
	}
	if errs := validation.Struct(in); errs != nil {
		utils.ValidationFailed(ctx, "Failed update category", errs)
		return
	}

	fields := in.Fields()
	if title, ok := fields["title"].(string); ok {
		fields["title"] = utils.Sanitize(title)
	}

	category, err := c.categories.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed update category")
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.Success(ctx, "Success update category", category)
}

// Destroy deletes a category by identifier.
func (c *CategoryController) Destroy(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.NotFound(ctx, "Failed get by id")
		return
	}

	if err := c.categories.Delete(ctx.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(ctx, "Failed get by id")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "Failed delete category")
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.Success(ctx, "Success delete category", nil)
}
