package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/Domenick1991/flightsearch/internal/kafka"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) All() []domain.Flight {
	args := m.Called()
	return args.Get(0).([]domain.Flight)
}

func (m *MockFlightUseCase) Search(criteria domain.SearchCriteria) []domain.Flight {
	args := m.Called(criteria)
	return args.Get(0).([]domain.Flight)
}

func (m *MockFlightUseCase) GetByID(id string) (domain.Flight, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Flight), args.Bool(1)
}

func (m *MockFlightUseCase) CheckAvailability(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockFlightUseCase) ListAirlines() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event kafka.QueryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var fl001 = domain.Flight{
	ID: "FL001", Origin: "NYC", Destination: "LAX", DepartureTime: "08:00", ArrivalTime: "11:30",
	Price: 350, AvailableSeats: 45, Airline: "SkyWings",
}

func newRouter(handler *FlightHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.Register(router.Group("/api"))
	return router
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/flights?origin=NYC&destination=LAX", nil)

	criteria := domain.SearchCriteria{Origin: domain.String("NYC"), Destination: domain.String("LAX")}
	mockService.On("Search", criteria).Return([]domain.Flight{fl001}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []domain.Flight{fl001}, body)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_NoFilters(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newRouter(NewFlightHandler(mockService))

	mockService.On("Search", domain.SearchCriteria{}).Return([]domain.Flight{}).Once()

	w := serve(router, "/api/flights")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_MaxPrice(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newRouter(NewFlightHandler(mockService))

	mockService.On("Search", domain.SearchCriteria{MaxPrice: domain.Float(300)}).Return([]domain.Flight{}).Once()

	w := serve(router, "/api/flights?max_price=300.00")

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_InvalidMaxPrice(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newRouter(NewFlightHandler(mockService))

	for _, price := range []string{"cheap", "-1", "NaN", "Inf"} {
		w := serve(router, "/api/flights?max_price="+price)

		assert.Equal(t, http.StatusBadRequest, w.Code, price)
		var body errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, codeInvalidPrice, body.Code)
	}
	mockService.AssertNotCalled(t, "Search", mock.Anything)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "FL001"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/flights/FL001", nil)

	mockService.On("GetByID", "FL001").Return(fl001, true)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, fl001, body)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newRouter(NewFlightHandler(mockService))

	mockService.On("GetByID", "NOPE").Return(domain.Flight{}, false).Once()

	w := serve(router, "/api/flights/NOPE")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"flight not found","code":"flight_not_found"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestFlightHandler_availability(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newRouter(NewFlightHandler(mockService))

	mockService.On("CheckAvailability", "FL001").Return(true).Once()
	mockService.On("CheckAvailability", "FL005").Return(false).Once()

	w := serve(router, "/api/flights/FL001/availability")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flight_id":"FL001","available":true}`, w.Body.String())

	w = serve(router, "/api/flights/FL005/availability")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flight_id":"FL005","available":false}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestFlightHandler_airlines(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newRouter(NewFlightHandler(mockService))

	mockService.On("ListAirlines").Return([]string{"SkyWings", "AirGlobe"}).Once()

	w := serve(router, "/api/airlines")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"airlines":["SkyWings","AirGlobe"]}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestFlightHandler_PublishesQueryEvents(t *testing.T) {
	mockService := &MockFlightUseCase{}
	mockPublisher := &MockPublisher{}
	router := newRouter(NewFlightHandler(mockService, WithPublisher(mockPublisher)))

	mockService.On("Search", domain.SearchCriteria{Origin: domain.String("NYC")}).Return([]domain.Flight{fl001}).Once()
	mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(e kafka.QueryEvent) bool {
		return e.Type == kafka.EventFlightsSearched && e.Origin == "NYC" && e.ResultCount == 1 && e.ID != ""
	})).Return(nil).Once()

	w := serve(router, "/api/flights?origin=NYC")

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFlightHandler_PublishFailureKeepsResponse(t *testing.T) {
	mockService := &MockFlightUseCase{}
	mockPublisher := &MockPublisher{}
	router := newRouter(NewFlightHandler(mockService, WithPublisher(mockPublisher)))

	mockService.On("CheckAvailability", "FL005").Return(false).Once()
	mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(e kafka.QueryEvent) bool {
		return e.Type == kafka.EventAvailabilityChecked && e.FlightID == "FL005" && e.Available != nil && !*e.Available
	})).Return(errors.New("broker unavailable")).Once()

	w := serve(router, "/api/flights/FL005/availability")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flight_id":"FL005","available":false}`, w.Body.String())
	mockPublisher.AssertExpectations(t)
}
