package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelaskoding/blog-api/config"
	"github.com/kelaskoding/blog-api/models"
	"github.com/kelaskoding/blog-api/store"
	"github.com/kelaskoding/blog-api/utils"
	"github.com/kelaskoding/blog-api/validation"
)

// PostController manages CRUD operations for blog posts.
type PostController struct {
	posts      *store.Store[models.Post]
	uploadsDir string
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		posts:      store.New[models.Post](db),
		uploadsDir: config.Get().UploadsDir,
	}
}

// Index returns the full post collection.
func (p *PostController) Index(ctx *gin.Context) {
	const cacheKey = "cache:posts:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, err := p.posts.List(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed gets all data")
		return
	}

	utils.CacheSetJSON(cacheKey, utils.JSONResponse{
		Status: "success gets all data",
		Code:   http.StatusOK,
		Data:   posts,
	}, time.Hour)
	utils.Success(ctx, "success gets all data", posts)
}

// Store validates the full required rule set and persists a new post.
// The gambar field arrives either as a plain string (JSON body) or as an
// uploaded image file (multipart body); the file is only written to storage
// after every rule passes.
func (p *PostController) Store(ctx *gin.Context) {
	var in validation.PostCreate
	var file *multipart.FileHeader
	errs := validation.Errors{}

	if isMultipart(ctx) {
		file = bindPostCreateForm(ctx, &in, errs)
	} else {
		if derrs := validation.DecodeJSON(ctx.Request.Body, &in); derrs != nil {
			utils.ValidationFailed(ctx, "Failed post data", derrs)
			return
		}
	}

	if serrs := validation.Struct(in); serrs != nil {
		errs.Merge(serrs)
	}
	if file != nil {
		if ferrs := validation.Image("gambar", file); ferrs != nil {
			errs.Merge(ferrs)
		}
	}
	if len(errs) > 0 {
		utils.ValidationFailed(ctx, "Failed post data", errs)
		return
	}

	if file != nil {
		path, err := utils.SaveImage(file, p.uploadsDir)
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "Failed to store image")
			return
		}
		in.Gambar = path
	}

	post := models.Post{
		Title:   utils.Sanitize(in.Title),
		Content: utils.Sanitize(in.Content),
		Gambar:  in.Gambar,
		Author:  in.Author,
		Tahun:   *in.Tahun,
	}
	if err := p.posts.Create(ctx.Request.Context(), &post); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed post data")
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.Created(ctx, "success", post)
}

// Show looks up a post by identifier.
func (p *PostController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.NotFound(ctx, "Failed get by id")
		return
	}

	cacheKey := "cache:posts:detail:" + strconv.FormatUint(uint64(id), 10)
	if b, cached := utils.CacheGetBytes(cacheKey); cached {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	post, err := p.posts.Find(ctx.Request.Context(), id)
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
		Data:   post,
	}, time.Hour)
	utils.Success(ctx, "Success get by id", post)
}

// Update merges the supplied subset of fields into an existing post. The
// identifier lookup happens before validation, so a request for a missing
// post answers 404 without evaluating any rule.
func (p *PostController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.NotFound(ctx, "Failed update by id")
		return
	}
	if _, err := p.posts.Find(ctx.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(ctx, "Failed update by id")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "Failed update by id")
		return
	}

	var in validation.PostUpdate
	var file *multipart.FileHeader
	errs := validation.Errors{}

	if isMultipart(ctx) {
		file = bindPostUpdateForm(ctx, &in, errs)
	} else {
		if derrs := validation.DecodeJSON(ctx.Request.Body, &in); derrs != nil {
			utils.ValidationFailed(ctx, "Failed update post", derrs)
			return
		}
	}

	if serrs := validation.Struct(in); serrs != nil {
		errs.Merge(serrs)
	}
	if file != nil {
		if ferrs := validation.Image("gambar", file); ferrs != nil {
			errs.Merge(ferrs)
		}
	}
	if len(errs) > 0 {
		utils.ValidationFailed(ctx, "Failed update post", errs)
		return
	}

	if file != nil {
		path, err := utils.SaveImage(file, p.uploadsDir)
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "Failed to store image")
			return
		}
		in.Gambar = &path
	}

	fields := in.Fields()
	if title, ok := fields["title"].(string); ok {
		fields["title"] = utils.Sanitize(title)
	}
	if content, ok := fields["content"].(string); ok {
		fields["content"] = utils.Sanitize(content)
	}

	post, err := p.posts.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed update post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.Success(ctx, "Success update post", post)
}

// Destroy deletes a post by identifier.
func (p *PostController) Destroy(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.NotFound(ctx, "Failed get by id")
		return
	}

	if err := p.posts.Delete(ctx.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(ctx, "Failed get by id")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "Failed delete post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.Success(ctx, "Success delete post", nil)
}

func bindPostCreateForm(ctx *gin.Context, in *validation.PostCreate, errs validation.Errors) *multipart.FileHeader {
	in.Title = ctx.PostForm("title")
	in.Content = ctx.PostForm("content")
	in.Author = ctx.PostForm("author")
	if v := ctx.PostForm("tahun"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.Tahun = &n
		} else {
			errs.Add("tahun", "the tahun must be an integer")
		}
	}
	if file, err := ctx.FormFile("gambar"); err == nil {
		// Stand-in value so the required rule passes; replaced by the
		// storage path once the file is validated and saved.
		in.Gambar = file.Filename
		return file
	}
	in.Gambar = ctx.PostForm("gambar")
	return nil
}

func bindPostUpdateForm(ctx *gin.Context, in *validation.PostUpdate, errs validation.Errors) *multipart.FileHeader {
	if v, ok := ctx.GetPostForm("title"); ok {
		in.Title = &v
	}
	if v, ok := ctx.GetPostForm("content"); ok {
		in.Content = &v
	}
	if v, ok := ctx.GetPostForm("author"); ok {
		in.Author = &v
	}
	if v, ok := ctx.GetPostForm("tahun"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			in.Tahun = &n
		} else {
			errs.Add("tahun", "the tahun must be an integer")
		}
	}
	if file, err := ctx.FormFile("gambar"); err == nil {
		name := file.Filename
		in.Gambar = &name
		return file
	}
	if v, ok := ctx.GetPostForm("gambar"); ok {
		in.Gambar = &v
	}
	return nil
}

func isMultipart(ctx *gin.Context) bool {
	return ctx.ContentType() == "multipart/form-data"
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
