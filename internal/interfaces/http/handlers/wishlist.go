// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/metrics"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
	log             logrus.FieldLogger
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlist.Service, log logrus.FieldLogger) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		log:             log,
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	doc, err := h.wishlistService.Get(c.Request.Context(), userID)
	if err != nil {
		serverError(c, h.log, err, "Failed to fetch wishlist")
		return
	}

	if doc.CreatedAt.IsZero() {
		c.JSON(http.StatusOK, gin.H{"items": doc.Items})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ReplaceWishlist handles POST /wishlist {items}
func (h *WishlistHandler) ReplaceWishlist(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req struct {
		Items []wishlist.Line `json:"items"`
	}
	if !bindJSON(c, &req, "Invalid wishlist data") {
		return
	}
	if req.Items == nil {
		badRequest(c, "Invalid wishlist data", nil)
		return
	}

	doc, err := h.wishlistService.Replace(c.Request.Context(), userID, req.Items)
	if err != nil {
		if respondValidation(c, err, "Invalid wishlist data") {
			return
		}
		serverError(c, h.log, err, "Failed to update wishlist")
		return
	}

	metrics.RecordCollectionWrite("wishlist", "replace")
	c.JSON(http.StatusOK, doc)
}

// AddItem handles POST /wishlist/items with a product snapshot
func (h *WishlistHandler) AddItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req wishlist.AddRequest
	if !bindJSON(c, &req, "Invalid product data") {
		return
	}

	doc, added, err := h.wishlistService.Add(c.Request.Context(), userID, req)
	if err != nil {
		if respondValidation(c, err, "Invalid product data") {
			return
		}
		serverError(c, h.log, err, "Failed to add to wishlist")
		return
	}

	message := wishlist.MessageAlreadySaved
	if added {
		message = wishlist.MessageAdded
		metrics.RecordCollectionWrite("wishlist", "add")
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"wishlist": doc,
	})
}

// DeleteWishlist handles DELETE /wishlist. With ?productId= it removes that
// product; without it the whole wishlist is cleared.
func (h *WishlistHandler) DeleteWishlist(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	productID := c.Query("productId")
	if productID == "" {
		if err := h.wishlistService.Clear(c.Request.Context(), userID); err != nil {
			serverError(c, h.log, err, "Failed to clear wishlist")
			return
		}
		metrics.RecordCollectionWrite("wishlist", "clear")
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	doc, err := h.wishlistService.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		serverError(c, h.log, err, "Failed to remove from wishlist")
		return
	}

	metrics.RecordCollectionWrite("wishlist", "remove")
	c.JSON(http.StatusOK, gin.H{
		"message":  wishlist.MessageRemoved,
		"wishlist": doc,
	})
}
