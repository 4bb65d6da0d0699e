package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"catalog/internal/models"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login and answers with a signed bearer token.
//
// Failures use 404 and distinguish "Invalid user" from "Invalid password".
// Both choices are wrong by modern taste (401 and a unified message would
// leak less) but are kept for compatibility with existing clients.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationError(c, err)
		return
	}

	var seller models.Seller
	err := h.db.Where("username = ?", input.Username).First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid user"})
		return
	}
	if err != nil {
		storageError(c, err)
		return
	}

	if !models.CheckPassword(seller.PasswordHash, input.Password) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid password"})
		return
	}

	token, err := h.tokens.Issue(seller.Username)
	if err != nil {
		log.Printf("token issue failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
