package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"catalog/internal/auth"
)

// Handler carries the shared gorm handle and the token service. gorm pools
// connections per request under the hood, so handlers never share a
// transaction or session across requests.
type Handler struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

func New(db *gorm.DB, tokens *auth.TokenService) *Handler {
	return &Handler{db: db, tokens: tokens}
}

// Routes registers every endpoint on the router. No route requires a
// bearer token yet; RequireToken exists for routes that will.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/products", h.ListProducts)
	r.GET("/product/:id", h.GetProduct)
	r.POST("/product", h.CreateProduct)
	r.PUT("/product/:id", h.UpdateProduct)
	r.DELETE("/product/:id", h.DeleteProduct)

	r.POST("/seller", h.RegisterSeller)
	r.POST("/login", h.Login)
}

func (h *Handler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
