package api

import (
	"math"                        // Rejecting infinite prices
	"net/http"                    // HTTP status codes
	"storefront/internal/session" // View paths
	"strconv"                     // Index parsing
	"time"                        // Notice lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AddToCartRequest carries the three attributes of an add-to-cart control
type AddToCartRequest struct {
	Name       string   `form:"name" binding:"required"`        // Item name, identity key
	Price      *float64 `form:"price" binding:"required,gte=0"` // Unit price
	ImageSrc   string   `form:"src"`                            // Image reference
	RedirectTo string   `form:"redirect_to"`                    // Page to return to
}

// AddToCartHandler adds one unit of the submitted item and returns to the
// page the control was on with the notification armed
func AddToCartHandler(noticeFor time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest // Bind form to struct
		// Validate request
		if err := c.ShouldBind(&req); err != nil || math.IsInf(*req.Price, 0) {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		m, ok := loadCart(c)
		if !ok {
			return
		}
		if err := m.AddItem(c.Request.Context(), req.Name, *req.Price, req.ImageSrc); err != nil {
			storeError(c, "add item", err)
			return
		}
		// Log successful add
		logger(c).WithFields(logrus.Fields{
			"name":  req.Name,   // Item name
			"price": *req.Price, // Unit price
			"type":  "add_item", // Event type
		}).Info("Cart item added")
		setNotice(c, noticeFor)
		c.Redirect(http.StatusSeeOther, localRedirect(req.RedirectTo, session.ViewHome.Path()))
	}
}

// RemoveFromCartHandler deletes the item at the :index position. An index
// that is not a number or out of range leaves the cart unchanged.
func RemoveFromCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := loadCart(c)
		if !ok {
			return
		}
		index := positionParam(c)
		if err := m.RemoveItem(c.Request.Context(), index); err != nil {
			storeError(c, "remove item", err)
			return
		}
		logger(c).WithFields(logrus.Fields{
			"index": index,         // Position removed
			"type":  "remove_item", // Event type
		}).Info("Cart item removed")
		c.Redirect(http.StatusSeeOther, session.ViewCart.Path())
	}
}

// UpdateQuantityHandler sets the quantity at :index from the raw "quantity"
// field; unparsable or non-positive input becomes 1
func UpdateQuantityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := loadCart(c)
		if !ok {
			return
		}
		index := positionParam(c)
		raw := c.PostForm("quantity")
		if err := m.UpdateQuantity(c.Request.Context(), index, raw); err != nil {
			storeError(c, "update quantity", err)
			return
		}
		logger(c).WithFields(logrus.Fields{
			"index": index,             // Position updated
			"raw":   raw,               // Submitted value
			"type":  "update_quantity", // Event type
		}).Info("Cart quantity updated")
		c.Redirect(http.StatusSeeOther, session.ViewCart.Path())
	}
}

// CartJSONHandler returns the rendered cart view model
func CartJSONHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := loadCart(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, m.Render())
	}
}

// positionParam reads :index, mapping anything unparsable to -1 (out of range)
func positionParam(c *gin.Context) int {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return -1
	}
	return index
}
