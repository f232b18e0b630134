package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks the envelope the MinasLê frontend expects:
// success responses carry {"sucesso": true, ...} with the payload fields at
// the top level, failures carry {"erro": "<mensagem>"}.

// OK writes a 200 success envelope. Extra payload fields go in data.
func OK(c *gin.Context, data gin.H) {
	write(c, http.StatusOK, data)
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data gin.H) {
	write(c, http.StatusCreated, data)
}

func write(c *gin.Context, status int, data gin.H) {
	body := gin.H{"sucesso": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes an error envelope with the given status.
func Fail(c *gin.Context, status int, mensagem string) {
	c.JSON(status, gin.H{"erro": mensagem})
}

// BadRequest writes a 400 error.
func BadRequest(c *gin.Context, mensagem string) {
	Fail(c, http.StatusBadRequest, mensagem)
}

// Unauthorized writes a 401 error.
func Unauthorized(c *gin.Context, mensagem string) {
	Fail(c, http.StatusUnauthorized, mensagem)
}

// Forbidden writes a 403 error.
func Forbidden(c *gin.Context, mensagem string) {
	Fail(c, http.StatusForbidden, mensagem)
}

// NotFound writes a 404 error.
func NotFound(c *gin.Context, mensagem string) {
	Fail(c, http.StatusNotFound, mensagem)
}

// InternalError writes a 500 error with a fixed message. Internal error text
// never reaches the client; the cause is logged server-side.
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "Erro interno do servidor")
}
