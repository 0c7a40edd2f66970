package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartcafe/kiosk-client/internal/adapter/http/middleware"
	"github.com/smartcafe/kiosk-client/internal/logging"
)

func NewRouter(mh *MenuHandler, ch *CartHandler, oh *OrderHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/menu", mh.ListMenu)
		v1.GET("/menu/:id", mh.GetMenu)

		v1.GET("/cart", ch.GetCart)
		v1.POST("/cart/items", ch.AddItem)
		v1.PATCH("/cart/items/:menuId", ch.UpdateQuantity)
		v1.DELETE("/cart/items/:menuId", ch.RemoveItem)
		v1.DELETE("/cart", ch.ClearCart)

		v1.POST("/orders", oh.PlaceOrder)
		v1.GET("/orders", oh.ListOrders)
		v1.GET("/orders/:id", oh.TrackOrder)
		v1.PATCH("/orders/:id", oh.UpdateStatus)
		v1.DELETE("/orders", oh.ClearOrders)
	}

	return r
}
