package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/Domenick1991/flightsearch/internal/kafka"
	"github.com/Domenick1991/flightsearch/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	codeNotFound     = "flight_not_found"
	codeInvalidPrice = "invalid_max_price"
)

type EventPublisher interface {
	Publish(ctx context.Context, event kafka.QueryEvent) error
}

type FlightHandler struct {
	service   flights.FlightUseCase
	publisher EventPublisher
	logger    zerolog.Logger
}

type HandlerOption func(*FlightHandler)

// WithPublisher makes the handler emit a query event after each answered request.
func WithPublisher(publisher EventPublisher) HandlerOption {
	return func(h *FlightHandler) {
		h.publisher = publisher
	}
}

func WithLogger(logger zerolog.Logger) HandlerOption {
	return func(h *FlightHandler) {
		h.logger = logger
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type availabilityResponse struct {
	FlightID  string `json:"flight_id"`
	Available bool   `json:"available"`
}

type airlinesResponse struct {
	Airlines []string `json:"airlines"`
}

func NewFlightHandler(service flights.FlightUseCase, opts ...HandlerOption) *FlightHandler {
	h := &FlightHandler{service: service, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.search)
	router.GET("/flights/:id", h.get)
	router.GET("/flights/:id/availability", h.availability)
	router.GET("/airlines", h.airlines)
}

func (h *FlightHandler) search(c *gin.Context) {
	criteria, err := domain.ParseCriteria(c.Query("origin"), c.Query("destination"), c.Query("max_price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeInvalidPrice})
		return
	}

	result := h.service.Search(criteria)
	c.JSON(http.StatusOK, result)

	event := kafka.NewQueryEvent(kafka.EventFlightsSearched)
	if criteria.Origin != nil {
		event.Origin = *criteria.Origin
	}
	if criteria.Destination != nil {
		event.Destination = *criteria.Destination
	}
	event.MaxPrice = criteria.MaxPrice
	event.ResultCount = len(result)
	h.publish(c.Request.Context(), event)
}

func (h *FlightHandler) get(c *gin.Context) {
	id := c.Param("id")
	flight, ok := h.service.GetByID(id)

	event := kafka.NewQueryEvent(kafka.EventFlightViewed)
	event.FlightID = id
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrFlightNotFound.Error(), Code: codeNotFound})
		h.publish(c.Request.Context(), event)
		return
	}
	c.JSON(http.StatusOK, flight)

	event.ResultCount = 1
	h.publish(c.Request.Context(), event)
}

func (h *FlightHandler) availability(c *gin.Context) {
	id := c.Param("id")
	available := h.service.CheckAvailability(id)
	c.JSON(http.StatusOK, availabilityResponse{FlightID: id, Available: available})

	event := kafka.NewQueryEvent(kafka.EventAvailabilityChecked)
	event.FlightID = id
	event.Available = &available
	h.publish(c.Request.Context(), event)
}

func (h *FlightHandler) airlines(c *gin.Context) {
	airlines := h.service.ListAirlines()
	c.JSON(http.StatusOK, airlinesResponse{Airlines: airlines})

	event := kafka.NewQueryEvent(kafka.EventAirlinesListed)
	event.ResultCount = len(airlines)
	h.publish(c.Request.Context(), event)
}

func (h *FlightHandler) publish(ctx context.Context, event kafka.QueryEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn().Err(err).Str("type", event.Type).Msg("failed to publish query event")
	}
}
