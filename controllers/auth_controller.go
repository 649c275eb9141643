package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelaskoding/blog-api/config"
	"github.com/kelaskoding/blog-api/middleware"
	"github.com/kelaskoding/blog-api/models"
	"github.com/kelaskoding/blog-api/store"
	"github.com/kelaskoding/blog-api/utils"
	"github.com/kelaskoding/blog-api/validation"
)

// AuthController handles registration, login and logout with bcrypt hashing
// and bearer token issuance.
type AuthController struct {
	users    *store.Store[models.User]
	tokenTTL time.Duration
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		users:    store.New[models.User](db),
		tokenTTL: time.Duration(config.Get().TokenTTLHours) * time.Hour,
	}
}

// Register creates a new account. Structural rules are validated first; the
// password/confirmation match is a business rule checked separately, and
// email uniqueness is checked against the user store and reported as a
// validation error. Nothing is persisted until every check passes.
func (a *AuthController) Register(ctx *gin.Context) {
	var in validation.Register
	if errs := validation.DecodeJSON(ctx.Request.Body, &in); errs != nil {
		utils.ValidationFailed(ctx, "Failed register", errs)
		return
	}

	errs := validation.Struct(in)
	if errs == nil {
		errs = validation.Errors{}
	}

	if _, hasEmailErr := errs["email"]; !hasEmailErr && in.Email != "" {
		taken, err := a.users.Exists(ctx.Request.Context(), "email = ?", strings.ToLower(in.Email))
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "Failed register")
			return
		}
		if taken {
			errs.Add("email", "the email has already been taken")
		}
	}

	if len(errs) > 0 {
		utils.ValidationFailed(ctx, "Failed register", errs)
		return
	}

	if in.Password != in.PasswordConfirm {
		utils.Error(ctx, http.StatusUnprocessableEntity, "Confirmasi password salah!")
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed register")
		return
	}

	user := models.User{
		Name:     in.Name,
		Email:    strings.ToLower(in.Email),
		Password: hash,
	}
	if err := a.users.Create(ctx.Request.Context(), &user); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed register")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, a.tokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed register")
		return
	}

	utils.Created(ctx, "Register successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// Login exchanges email and password for a bearer token.
func (a *AuthController) Login(ctx *gin.Context) {
	var in validation.Login
	if errs := validation.DecodeJSON(ctx.Request.Body, &in); errs != nil {
		utils.ValidationFailed(ctx, "Failed login", errs)
		return
	}
	if errs := validation.Struct(in); errs != nil {
		utils.ValidationFailed(ctx, "Failed login", errs)
		return
	}

	user, err := a.users.FindBy(ctx.Request.Context(), "email = ?", strings.ToLower(in.Email))
	if err != nil {
		if err == store.ErrNotFound {
			utils.Error(ctx, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "Failed login")
		return
	}

	if !utils.CheckPassword(user.Password, in.Password) {
		utils.Error(ctx, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, a.tokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Failed login")
		return
	}

	utils.Success(ctx, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the presented bearer token until its natural expiry.
func (a *AuthController) Logout(ctx *gin.Context) {
	token, _ := ctx.Get(middleware.ContextTokenKey)
	tokenStr, _ := token.(string)
	expiry := time.Now().Add(a.tokenTTL)
	if v, ok := ctx.Get(middleware.ContextTokenExpiryKey); ok {
		if t, ok := v.(time.Time); ok {
			expiry = t
		}
	}
	if tokenStr != "" {
		utils.BlacklistToken(tokenStr, expiry)
	}
	utils.Success(ctx, "Logout successful", nil)
}

// Me returns the authenticated user.
func (a *AuthController) Me(ctx *gin.Context) {
	v, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}
	userID, ok := v.(uint)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := a.users.Find(ctx.Request.Context(), userID)
	if err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(ctx, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	utils.Success(ctx, "success", user)
}
