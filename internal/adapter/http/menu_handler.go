package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/usecase"
)

// MenuHandler proxies menu reads to the gateway, normalized through the
// shape extractors. The kiosk keeps no menu state of its own.
type MenuHandler struct {
	gateway usecase.OrderGateway
}

func NewMenuHandler(gateway usecase.OrderGateway) *MenuHandler {
	return &MenuHandler{gateway: gateway}
}

func (h *MenuHandler) ListMenu(c *gin.Context) {
	menus, err := h.gateway.Menus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu_unavailable"})
		return
	}
	if menus == nil {
		menus = []entity.MenuItem{}
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	menu, err := h.gateway.MenuByID(c.Request.Context(), menuID)
	if err != nil {
		if errors.Is(err, usecase.ErrMenuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu_unavailable"})
		return
	}
	c.JSON(http.StatusOK, menu)
}
