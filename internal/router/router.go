package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListPackages(c *ginext.Context)
	Book(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
}

// Webhook mounts the settlement callback at Path behind Auth.
type Webhook struct {
	Path string
	Auth ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, webhook Webhook, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Events
	router.GET("/events", h.ListEvents)
	router.POST("/events", h.CreateEvent)

	// Packages
	router.GET("/packages", h.ListPackages)

	// Bookings
	router.POST("/book", h.Book)

	// Payments
	if webhook.Auth != nil {
		router.POST(webhook.Path, webhook.Auth, h.PaymentWebhook)
	} else {
		router.POST(webhook.Path, h.PaymentWebhook)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
