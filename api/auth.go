package api

import (
	"net/http"

	"github.com/Domenick1991/stadiumbooking/internal/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth auth.Authenticator
}

type signInRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

func NewAuthHandler(authenticator auth.Authenticator) *AuthHandler {
	return &AuthHandler{auth: authenticator}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/sign-in", h.signIn)
}

func (h *AuthHandler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.auth.SignIn(c.Request.Context(), req.Email, role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
