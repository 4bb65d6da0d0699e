package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"catalog/internal/models"
)

// ProductInput is the create/update payload. Price is a pointer so a
// missing price is rejected while an explicit 0 is accepted.
type ProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int   `json:"price" binding:"required"`
	SellerID    uint   `json:"seller_id"`
}

// ListProducts handles GET /products: every product in insertion order,
// shaped to the display form.
func (h *Handler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := h.db.Preload("Seller").Order("id").Find(&products).Error; err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewDisplayProducts(products))
}

// GetProduct handles GET /product/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var product models.Product
	err := h.db.Preload("Seller").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product with id %d not found", id)})
		return
	}
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewDisplayProduct(product))
}

// CreateProduct handles POST /product. An omitted seller_id associates the
// product with seller 1, the catalog owner account.
func (h *Handler) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationError(c, err)
		return
	}

	sellerID := input.SellerID
	if sellerID == 0 {
		sellerID = 1
	}
	var count int64
	if err := h.db.Model(&models.Seller{}).Where("id = ?", sellerID).Count(&count).Error; err != nil {
		storageError(c, err)
		return
	}
	if count == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": map[string]string{"seller_id": "The seller_id field must reference an existing seller."},
		})
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		SellerID:    sellerID,
	}
	if err := h.db.Create(&product).Error; err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /product/:id: full replace of name,
// description and price.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationError(c, err)
		return
	}

	var product models.Product
	err := h.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product with id %d not found", id)})
		return
	}
	if err != nil {
		storageError(c, err)
		return
	}

	updates := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"price":       *input.Price,
	}
	if err := h.db.Model(&product).Updates(updates).Error; err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Product %d is successfully updated", id)})
}

// DeleteProduct handles DELETE /product/:id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		storageError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product with id %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "id": id})
}
