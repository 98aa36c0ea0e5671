package web

import (
	"fmt"

	"venuehub/internal/ports/input"
	"venuehub/internal/ports/output"
)

// Localizer translates messages and negotiates the request locale.
type Localizer interface {
	output.T
	Match(acceptLanguage string) string
}

// Options configures the web adapter.
type Options struct {
	JWTSecret []byte
	// LoginURL receives unauthenticated page requests, with ?next=<path>.
	LoginURL string
}

// Handler serves HTTP requests using the use cases.
type Handler struct {
	venues    input.VenueUseCase
	bookings  input.BookingUseCase
	dashboard input.DashboardUseCase
	chat      input.ChatUseCase
	tr        Localizer
	views     views
	opts      Options
}

// NewHandler creates a Handler and parses the embedded page templates.
func NewHandler(
	venues input.VenueUseCase,
	bookings input.BookingUseCase,
	dashboard input.DashboardUseCase,
	chat input.ChatUseCase,
	tr Localizer,
	opts Options,
) (*Handler, error) {
	v, err := parseViews()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if opts.LoginURL == "" {
		opts.LoginURL = "/login/"
	}
	return &Handler{
		venues:    venues,
		bookings:  bookings,
		dashboard: dashboard,
		chat:      chat,
		tr:        tr,
		views:     v,
		opts:      opts,
	}, nil
}
