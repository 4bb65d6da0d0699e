package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog/internal/models"
)

type SellerInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterSeller handles POST /seller.
//
// The 200 response is the full stored row, password hash included. That
// shape predates this implementation and existing clients rely on it; the
// display form is what hides the hash everywhere else.
func (h *Handler) RegisterSeller(c *gin.Context) {
	var input SellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationError(c, err)
		return
	}

	var count int64
	if err := h.db.Model(&models.Seller{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		storageError(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already taken"})
		return
	}

	hash, err := models.HashPassword(input.Password)
	if err != nil {
		storageError(c, err)
		return
	}

	seller := models.Seller{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := h.db.Create(&seller).Error; err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, seller)
}
