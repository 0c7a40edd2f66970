package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/store"
)

type CartHandler struct {
	cart *store.CartStore
}

func NewCartHandler(cart *store.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

type addCartItemReq struct {
	MenuID   int     `json:"menuid" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Img      string  `json:"img"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Note     string  `json:"note"`
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	h.cart.AddItem(entity.CartLine{
		MenuID:    req.MenuID,
		Name:      req.Name,
		UnitPrice: req.Price,
		ImageRef:  req.Img,
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	c.JSON(http.StatusCreated, h.snapshot())
}

type updateQuantityReq struct {
	// Pointer so zero is distinguishable from absent; zero removes the line.
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Param("menuId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	var req updateQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	h.cart.UpdateQuantity(menuID, *req.Quantity)
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Param("menuId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	h.cart.RemoveItem(menuID)
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHandler) snapshot() gin.H {
	items := h.cart.Items()
	if items == nil {
		items = []entity.CartLine{}
	}
	return gin.H{
		"items":      items,
		"totalItems": h.cart.TotalItems(),
		"totalPrice": h.cart.TotalPrice(),
	}
}
