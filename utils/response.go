package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the uniform envelope for every API response. Code mirrors
// the transport status so clients can check it without reading headers. Data
// is always present, null when there is nothing to return.
type JSONResponse struct {
	Status string      `json:"status"`
	Code   int         `json:"code"`
	Data   interface{} `json:"data"`
	Errors interface{} `json:"errors,omitempty"`
}

// Respond writes the envelope with the given status code.
func Respond(ctx *gin.Context, code int, status string, data interface{}) {
	ctx.JSON(code, JSONResponse{Status: status, Code: code, Data: data})
}

// Success returns a 200 envelope.
func Success(ctx *gin.Context, status string, data interface{}) {
	Respond(ctx, http.StatusOK, status, data)
}

// Created returns a 201 envelope.
func Created(ctx *gin.Context, status string, data interface{}) {
	Respond(ctx, http.StatusCreated, status, data)
}

// NotFound returns a 404 envelope with null data.
func NotFound(ctx *gin.Context, status string) {
	Respond(ctx, http.StatusNotFound, status, nil)
}

// Error returns an error envelope with null data.
func Error(ctx *gin.Context, code int, status string) {
	Respond(ctx, code, status, nil)
}

// ValidationFailed returns a 422 envelope carrying per-field messages.
func ValidationFailed(ctx *gin.Context, status string, errs interface{}) {
	ctx.JSON(http.StatusUnprocessableEntity, JSONResponse{
		Status: status,
		Code:   http.StatusUnprocessableEntity,
		Errors: errs,
	})
}
