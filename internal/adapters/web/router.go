package web

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the gin engine with every route and middleware.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), Tracing(), Metrics(), Locale(h.tr), Authenticate(h.opts.JWTSecret), SameOriginCookie())

	r.GET("/", h.VenueList)
	r.GET("/api/venues/", h.VenueListAPI)
	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pages := r.Group("")
	pages.Use(RequireUser(h.opts.LoginURL))
	{
		pages.GET("/home/", h.Home)
		pages.GET("/book/:venue_id/", h.BookForm)
		pages.POST("/book/:venue_id/", h.BookSubmit)
		pages.GET("/booking-success/", h.BookingSuccess)
		pages.GET("/my-bookings/", h.MyBookings)
		pages.GET("/cancel/:booking_id/", h.CancelBooking)
		pages.POST("/cancel/:booking_id/", h.CancelBooking)
		pages.GET("/livechat/", h.ChatIndex)
	}

	api := r.Group("/livechat")
	api.Use(h.RequireUserJSON())
	{
		api.GET("/chat/:group_id/", h.Messages)
		api.POST("/chat/:group_id/", h.PostMessage)
		api.GET("/group/", h.Groups)
		api.POST("/group/", h.CreateGroup)
		api.GET("/group/:group_id/", h.Group)
		api.POST("/group/:group_id/", h.UpdateGroup)
		api.DELETE("/group/:group_id/", h.DeleteGroup)
	}

	return r
}
