package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/eventpulse/eventpulse/internal/pkg/metrics"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListCategories(c *ginext.Context)
	ListEventsGrouped(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Events, public catalog reads
		api.GET("/events", h.ListEvents)
		api.GET("/events/categories", h.ListCategories)
		api.GET("/events/grouped", h.ListEventsGrouped)
		api.GET("/events/:id", h.GetEvent)

		authed := api.Group("")
		authed.Use(authMW)
		{
			authed.POST("/events", h.CreateEvent)

			// Bookings
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings", h.ListMyBookings)
			authed.POST("/bookings/:id/cancel", h.CancelBooking)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", metrics.Handler())

	return router
}
