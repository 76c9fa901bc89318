// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
)

// ProductHandler handles catalog product endpoints
type ProductHandler struct {
	productService *product.Service
	log            logrus.FieldLogger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		log:            log,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var req product.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "Invalid query parameters", nil)
		return
	}

	response, err := h.productService.List(c.Request.Context(), &req)
	if err != nil {
		serverError(c, h.log, err, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		serverError(c, h.log, err, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}
