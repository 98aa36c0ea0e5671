package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuehub/internal/domain/entities"
)

type venueJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	SportType    string  `json:"sport_type"`
	Capacity     int     `json:"capacity"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"price_per_hour"`
}

func toVenueJSON(v entities.Venue) venueJSON {
	return venueJSON{
		ID:           strconv.FormatUint(uint64(v.ID), 10),
		Name:         v.Name,
		Location:     v.Location,
		SportType:    v.SportType,
		Capacity:     v.Capacity,
		Description:  v.Description,
		PricePerHour: v.PricePerHour,
	}
}

// VenueList renders the venue list page.
func (h *Handler) VenueList(c *gin.Context) {
	venues, err := h.venues.ListVenues(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "venues", h.t(c, "ui.venues", nil), venues)
}

// VenueListAPI returns every venue as JSON.
func (h *Handler) VenueListAPI(c *gin.Context) {
	venues, err := h.venues.ListVenues(c.Request.Context())
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	out := make([]venueJSON, 0, len(venues))
	for _, v := range venues {
		out = append(out, toVenueJSON(v))
	}
	c.JSON(http.StatusOK, gin.H{"venues": out})
}
