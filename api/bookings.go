package api

import (
	"net/http"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/Domenick1991/stadiumbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	StadiumID     string `json:"stadiumId" binding:"required"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	PaymentMethod string `json:"paymentMethod"`
}

type confirmBookingRequest struct {
	createBookingRequest
	AcceptTerms bool `json:"acceptTerms"`
}

func (r createBookingRequest) input(c *gin.Context) booking.CreateBookingInput {
	in := booking.CreateBookingInput{
		VenueID:       r.StadiumID,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		PaymentMethod: r.PaymentMethod,
	}
	if p, ok := principalFrom(c); ok {
		in.UserID = p.ID
	}
	return in
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.POST("/confirm", h.confirm)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), domain.BookingFilter(c.Query("filter")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req.input(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) confirm(c *gin.Context) {
	var req confirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmed, err := h.service.ConfirmBooking(c.Request.Context(), booking.ConfirmBookingInput{
		CreateBookingInput: req.input(c),
		AcceptTerms:        req.AcceptTerms,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmed)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
