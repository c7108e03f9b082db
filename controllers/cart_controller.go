package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/catalog"
	"storefront-service/database"
	"storefront-service/logger"
	"storefront-service/models"
	"storefront-service/pricing"
)

const sessionHeader = "X-Session-ID"

type CartController struct {
	Store database.CartStore
}

func NewCartController(store database.CartStore) *CartController {
	return &CartController{Store: store}
}

// sessionID resolves the client's cart session, minting a fresh one for
// first-time callers. The ID is always echoed back so the client can
// persist it.
func (cc *CartController) sessionID(c *gin.Context) string {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(sessionHeader, id)
	return id
}

func (cc *CartController) loadCart(c *gin.Context, sessionID string) (*pricing.Cart, bool) {
	lines, err := cc.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(c, "Failed to load cart", err, zap.String("session_id", sessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return nil, false
	}
	return pricing.NewCart(lines...), true
}

func (cc *CartController) saveCart(c *gin.Context, sessionID string, cart *pricing.Cart) bool {
	if err := cc.Store.Save(c.Request.Context(), sessionID, cart.Lines()); err != nil {
		logger.Error(c, "Failed to save cart", err, zap.String("session_id", sessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return false
	}
	return true
}

func cartResponse(sessionID string, cart *pricing.Cart) gin.H {
	return gin.H{
		"session_id": sessionID,
		"items":      cart.Lines(),
		"summary":    cart.Summary(),
	}
}

// GetCart returns the session cart with its derived totals
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID := cc.sessionID(c)

	cart, ok := cc.loadCart(c, sessionID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, cartResponse(sessionID, cart))
}

// AddItem puts a catalog product into the cart, merging quantities when
// the product is already present so duplicate IDs never reach the engine
func (cc *CartController) AddItem(c *gin.Context) {
	sessionID := cc.sessionID(c)

	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, found := catalog.Get(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cart, ok := cc.loadCart(c, sessionID)
	if !ok {
		return
	}

	if existing, present := cart.Line(req.ProductID); present {
		cart.UpdateQuantity(req.ProductID, existing.Quantity+req.Quantity)
	} else {
		cart.AddLine(models.CartLine{
			ProductID:       product.ID,
			Name:            product.Name,
			Image:           product.Image,
			UnitPrice:       product.Price,
			OriginalPrice:   product.OriginalPrice,
			Quantity:        req.Quantity,
			DiscountPercent: product.Discount,
		})
	}

	if !cc.saveCart(c, sessionID, cart) {
		return
	}

	c.JSON(http.StatusOK, cartResponse(sessionID, cart))
}

// UpdateQuantity replaces a line's quantity
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	sessionID := cc.sessionID(c)

	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	cart, ok := cc.loadCart(c, sessionID)
	if !ok {
		return
	}

	if _, present := cart.Line(id); !present {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart"})
		return
	}

	cart.UpdateQuantity(id, req.Quantity)

	if !cc.saveCart(c, sessionID, cart) {
		return
	}

	c.JSON(http.StatusOK, cartResponse(sessionID, cart))
}

// RemoveItem deletes a line; removing an absent line is a no-op
func (cc *CartController) RemoveItem(c *gin.Context) {
	sessionID := cc.sessionID(c)

	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	cart, ok := cc.loadCart(c, sessionID)
	if !ok {
		return
	}

	cart.RemoveLine(id)

	if !cc.saveCart(c, sessionID, cart) {
		return
	}

	c.JSON(http.StatusOK, cartResponse(sessionID, cart))
}

// ClearCart drops the whole session cart
func (cc *CartController) ClearCart(c *gin.Context) {
	sessionID := cc.sessionID(c)

	if err := cc.Store.Delete(c.Request.Context(), sessionID); err != nil {
		logger.Error(c, "Failed to clear cart", err, zap.String("session_id", sessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// Checkout is a stub: it returns the final totals and clears the cart.
// Payment and order placement live with the external provider.
func (cc *CartController) Checkout(c *gin.Context) {
	sessionID := cc.sessionID(c)

	cart, ok := cc.loadCart(c, sessionID)
	if !ok {
		return
	}
	if cart.Len() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	summary := cart.Summary()

	if err := cc.Store.Delete(c.Request.Context(), sessionID); err != nil {
		logger.Error(c, "Failed to clear cart after checkout", err, zap.String("session_id", sessionID))
	}

	logger.Info(c, "Checkout initiated",
		zap.String("session_id", sessionID),
		zap.Int("items", cart.Len()),
		zap.String("total", summary.Total),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "checkout initiated",
		"summary": summary,
	})
}
