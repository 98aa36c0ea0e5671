package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
)

type bookPage struct {
	Venue  *entities.Venue
	Form   domain.BookingForm
	Errors map[string]string
}

type successPage struct {
	Booking *entities.Booking
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// BookForm renders the booking form of a venue.
func (h *Handler) BookForm(c *gin.Context) {
	venueID, ok := parseID(c.Param("venue_id"))
	if !ok {
		h.renderError(c, domain.ErrVenueNotFound)
		return
	}
	venue, err := h.venues.GetVenue(c.Request.Context(), venueID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderBookForm(c, http.StatusOK, bookPage{Venue: venue})
}

// BookSubmit creates a pending booking and redirects to the success page.
// Invalid input and storage failures re-render the form with a message.
func (h *Handler) BookSubmit(c *gin.Context) {
	venueID, ok := parseID(c.Param("venue_id"))
	if !ok {
		h.renderError(c, domain.ErrVenueNotFound)
		return
	}
	user, _ := currentUser(c)

	var form domain.BookingForm
	_ = c.ShouldBind(&form)

	booking, err := h.bookings.CreateBooking(c.Request.Context(), *user, venueID, form)
	if err == nil {
		var venueName string
		if booking.Venue != nil {
			venueName = booking.Venue.Name
		}
		setFlash(c, h.t(c, "flash.booking_created", map[string]any{"Venue": venueName}))
		c.Redirect(http.StatusFound, "/booking-success/?booking="+strconv.FormatUint(uint64(booking.ID), 10))
		return
	}

	if domain.IsNotFound(err) {
		h.renderError(c, err)
		return
	}
	venue, verr := h.venues.GetVenue(c.Request.Context(), venueID)
	if verr != nil {
		h.renderError(c, verr)
		return
	}
	data := bookPage{Venue: venue, Form: form}

	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		data.Errors = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			data.Errors[fe.Field] = h.t(c, "form."+fe.Field+"."+fe.Code, nil)
		}
		flashNow(c, h.errorMessage(c, err))
		h.renderBookForm(c, http.StatusBadRequest, data)
	case errors.Is(err, domain.ErrSlotTaken):
		flashNow(c, h.errorMessage(c, err))
		h.renderBookForm(c, http.StatusConflict, data)
	default:
		logError(c, err)
		flashNow(c, h.t(c, "errors.booking_save_failed", nil))
		h.renderBookForm(c, http.StatusOK, data)
	}
}

func (h *Handler) renderBookForm(c *gin.Context, status int, data bookPage) {
	title := h.t(c, "ui.book_venue", map[string]any{"Venue": data.Venue.Name})
	h.render(c, status, "book", title, data)
}

// BookingSuccess confirms a booking. The booking is shown only to its owner.
func (h *Handler) BookingSuccess(c *gin.Context) {
	user, _ := currentUser(c)
	var data successPage
	if id, ok := parseID(c.Query("booking")); ok {
		booking, err := h.bookings.GetBooking(c.Request.Context(), id)
		switch {
		case err == nil && booking.IsOwnedBy(user.ID):
			data.Booking = booking
		case err != nil && !domain.IsNotFound(err):
			logError(c, err)
		}
	}
	h.render(c, http.StatusOK, "booking_success", h.t(c, "ui.booking_success", nil), data)
}

// MyBookings lists the current user's bookings, newest slot first.
func (h *Handler) MyBookings(c *gin.Context) {
	user, _ := currentUser(c)
	bookings, err := h.bookings.ListUserBookings(c.Request.Context(), user.ID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "my_bookings", h.t(c, "ui.my_bookings", nil), bookings)
}

// CancelBooking deletes the booking when the current user owns it. Any other
// case, including GET, just returns to the booking list.
func (h *Handler) CancelBooking(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusFound, "/my-bookings/")
		return
	}
	user, _ := currentUser(c)
	if id, ok := parseID(c.Param("booking_id")); ok {
		cancelled, err := h.bookings.CancelBooking(c.Request.Context(), id, user.ID)
		switch {
		case err != nil:
			logError(c, err)
			setFlash(c, h.t(c, "errors.generic", nil))
		case cancelled:
			setFlash(c, h.t(c, "flash.booking_cancelled", nil))
		}
	}
	c.Redirect(http.StatusFound, "/my-bookings/")
}
