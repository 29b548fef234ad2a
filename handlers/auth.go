package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gatherspace/services/user"
	"gatherspace/utils"
)

// AuthHandler exposes login.
type AuthHandler struct {
	Service user.AuthService
}

func NewAuthHandler(svc user.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, u, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}
