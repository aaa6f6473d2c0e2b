package api

import (
	"net/http"

	"github.com/Domenick1991/stadiumbooking/internal/service/booking"
	"github.com/Domenick1991/stadiumbooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	catalog  catalog.CatalogUseCase
	bookings booking.BookingUseCase
}

func NewVenueHandler(catalog catalog.CatalogUseCase, bookings booking.BookingUseCase) *VenueHandler {
	return &VenueHandler{catalog: catalog, bookings: bookings}
}

func (h *VenueHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/availability", h.availability)
	router.GET("/:id/quote", h.quote)
}

func (h *VenueHandler) list(c *gin.Context) {
	venues, err := h.catalog.ListVenues(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) get(c *gin.Context) {
	venue, err := h.catalog.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	av, err := h.catalog.Availability(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, av)
}

func (h *VenueHandler) quote(c *gin.Context) {
	quote, err := h.bookings.QuoteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote.Rounded())
}
