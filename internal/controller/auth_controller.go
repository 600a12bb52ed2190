package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yourscinema-backend/utilities"
)

type AuthController struct {
	Tokens *utilities.TokenManager
}

func NewAuthController(tokens *utilities.TokenManager) *AuthController {
	return &AuthController{Tokens: tokens}
}

// Guest handles POST /auth/guest and issues a token for a fresh guest id.
func (ac *AuthController) Guest(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"omitempty,max=64"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = utilities.DefaultName
	}

	userID := uuid.New().String()
	token, expiresAt, err := ac.Tokens.Generate(userID, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user_id":      userID,
		"name":         name,
		"access_token": token,
		"expires_at":   expiresAt,
	})
}
