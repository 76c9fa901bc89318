// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/metrics"
)

// CartHandler handles cart endpoints. Every route requires authentication;
// guest carts never reach the server except through Merge.
type CartHandler struct {
	cartService *cart.Service
	log         logrus.FieldLogger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, log logrus.FieldLogger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// ItemsRequest is the body of POST /cart and POST /cart/merge
type ItemsRequest struct {
	Items []cart.Line `json:"items"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	doc, err := h.cartService.Get(c.Request.Context(), userID)
	if err != nil {
		serverError(c, h.log, err, "Failed to fetch cart")
		return
	}

	// no document stored yet
	if doc.CreatedAt.IsZero() {
		c.JSON(http.StatusOK, gin.H{"items": doc.Items})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ReplaceCart handles POST /cart
func (h *CartHandler) ReplaceCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	req, ok := bindItems(c)
	if !ok {
		return
	}

	doc, err := h.cartService.Replace(c.Request.Context(), userID, req.Items)
	if err != nil {
		if respondValidation(c, err, "Invalid cart data") {
			return
		}
		serverError(c, h.log, err, "Failed to update cart")
		return
	}

	metrics.RecordCollectionWrite("cart", "replace")
	c.JSON(http.StatusOK, doc)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		serverError(c, h.log, err, "Failed to clear cart")
		return
	}

	metrics.RecordCollectionWrite("cart", "clear")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MergeCart handles POST /cart/merge: the guest lines in the body are folded
// into the stored cart with the max-quantity rule.
func (h *CartHandler) MergeCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	req, ok := bindItems(c)
	if !ok {
		return
	}

	doc, outcome, err := h.cartService.Merge(c.Request.Context(), userID, req.Items)
	if err != nil {
		if respondValidation(c, err, "Invalid cart data") {
			return
		}
		metrics.RecordCartMerge("error")
		serverError(c, h.log, err, "Failed to merge cart")
		return
	}

	metrics.RecordCartMerge(string(outcome))
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"cart":    doc,
	})
}

func bindItems(c *gin.Context) (*ItemsRequest, bool) {
	var req ItemsRequest
	if !bindJSON(c, &req, "Invalid cart data") {
		return nil, false
	}
	if req.Items == nil {
		badRequest(c, "Invalid cart data", nil)
		return nil, false
	}
	return &req, true
}
