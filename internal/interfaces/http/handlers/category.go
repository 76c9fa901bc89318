// internal/interfaces/http/handlers/category.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	productService *product.Service
	log            logrus.FieldLogger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(productService *product.Service, log logrus.FieldLogger) *CategoryHandler {
	return &CategoryHandler{
		productService: productService,
		log:            log,
	}
}

// GetCategories handles GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		serverError(c, h.log, err, "Error fetching categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(categories),
		"data":    categories,
	})
}

// GetCategoryBySlug handles GET /categories/:slug
func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	detail, err := h.productService.CategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, product.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		serverError(c, h.log, err, "Error fetching category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}
