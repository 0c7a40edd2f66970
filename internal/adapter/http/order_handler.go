package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartcafe/kiosk-client/internal/adapter/http/middleware"
	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/store"
	"github.com/smartcafe/kiosk-client/internal/usecase"
)

// Placement may wait out the gateway's own timeout plus local work.
const placeOrderTimeout = 15 * time.Second

type OrderHandler struct {
	place  *usecase.PlaceOrder
	track  *usecase.TrackOrder
	update *usecase.UpdateOrderStatus
	cart   *store.CartStore
	ledger *store.OrderLedger
}

func NewOrderHandler(place *usecase.PlaceOrder, track *usecase.TrackOrder,
	update *usecase.UpdateOrderStatus, cart *store.CartStore, ledger *store.OrderLedger) *OrderHandler {
	return &OrderHandler{place: place, track: track, update: update, cart: cart, ledger: ledger}
}

// PlaceOrder submits the current cart. Once the cart is non-empty this
// cannot fail: the response always carries a navigable order id.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	if h.cart.TotalItems() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_cart"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), placeOrderTimeout)
	defer cancel()

	out := h.place.Execute(ctx)
	middleware.OrdersPlaced.WithLabelValues(placementSource(out.Local)).Inc()

	c.JSON(http.StatusCreated, gin.H{
		"orderId": out.OrderID,
		"status":  entity.StatusPreparing,
		"local":   out.Local,
	})
}

func placementSource(local bool) string {
	if local {
		return "local"
	}
	return "server"
}

// ListOrders serves the order history straight from the ledger.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.ledger.StoredOrders()
	if orders == nil {
		orders = []entity.StoredOrder{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) TrackOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.track.Execute(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": c.Param("id"), "status": req.Status, "updated": updated})
}

// ClearOrders wipes the ledger. Support/reset flows only.
func (h *OrderHandler) ClearOrders(c *gin.Context) {
	h.ledger.ClearAll()
	c.Status(http.StatusNoContent)
}
