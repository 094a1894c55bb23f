package flights

import (
	"testing"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/Domenick1991/flightsearch/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedService(t *testing.T) *FlightService {
	t.Helper()
	service, err := NewFlightService(seed.Flights())
	require.NoError(t, err)
	return service
}

func ids(flights []domain.Flight) []string {
	out := make([]string, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.ID)
	}
	return out
}

func TestNewFlightService_RejectsDuplicateID(t *testing.T) {
	records := seed.Flights()
	records = append(records, records[0])

	service, err := NewFlightService(records)

	assert.Nil(t, service)
	assert.ErrorIs(t, err, domain.ErrDuplicateFlightID)
	assert.Contains(t, err.Error(), "FL001")
}

func TestNewFlightService_RejectsInvalidRecords(t *testing.T) {
	negativeSeats := seed.Flights()
	negativeSeats[2].AvailableSeats = -1
	_, err := NewFlightService(negativeSeats)
	assert.ErrorIs(t, err, domain.ErrInvalidFlight)

	negativePrice := seed.Flights()
	negativePrice[3].Price = -0.01
	_, err = NewFlightService(negativePrice)
	assert.ErrorIs(t, err, domain.ErrInvalidFlight)
}

func TestNewFlightService_CopiesInput(t *testing.T) {
	records := seed.Flights()
	service, err := NewFlightService(records)
	require.NoError(t, err)

	records[0].AvailableSeats = 0

	assert.True(t, service.CheckAvailability("FL001"))
}

func TestNewFlightService_Empty(t *testing.T) {
	service, err := NewFlightService(nil)
	require.NoError(t, err)

	assert.Empty(t, service.Search(domain.SearchCriteria{}))
	assert.NotNil(t, service.Search(domain.SearchCriteria{Origin: domain.String("NYC")}))
	assert.Empty(t, service.ListAirlines())
	assert.False(t, service.CheckAvailability("FL001"))
}

func TestFlightService_Search_NoFilters(t *testing.T) {
	service := newSeedService(t)

	result := service.Search(domain.SearchCriteria{})

	assert.Equal(t, seed.Flights(), result)
}

func TestFlightService_Search_OriginAndDestination(t *testing.T) {
	service := newSeedService(t)

	result := service.Search(domain.SearchCriteria{Origin: domain.String("NYC"), Destination: domain.String("LAX")})

	// FL005 has no seats but search does not look at availability
	assert.Equal(t, []string{"FL001", "FL005"}, ids(result))
}

func TestFlightService_Search_DestinationOnly(t *testing.T) {
	service := newSeedService(t)

	result := service.Search(domain.SearchCriteria{Destination: domain.String("NYC")})

	assert.Equal(t, []string{"FL002"}, ids(result))
}

func TestFlightService_Search_MaxPrice(t *testing.T) {
	service := newSeedService(t)

	assert.Equal(t, []string{"FL003"}, ids(service.Search(domain.SearchCriteria{MaxPrice: domain.Float(300)})))
	assert.Equal(t, []string{"FL001", "FL003"}, ids(service.Search(domain.SearchCriteria{MaxPrice: domain.Float(350)})))
	assert.Empty(t, service.Search(domain.SearchCriteria{MaxPrice: domain.Float(0)}))
}

func TestFlightService_Search_AllFilters(t *testing.T) {
	service := newSeedService(t)

	result := service.Search(domain.SearchCriteria{
		Origin:      domain.String("NYC"),
		Destination: domain.String("LAX"),
		MaxPrice:    domain.Float(400),
	})

	assert.Equal(t, []string{"FL001"}, ids(result))
}

func TestFlightService_Search_NoMatch(t *testing.T) {
	service := newSeedService(t)

	result := service.Search(domain.SearchCriteria{Origin: domain.String("SFO")})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFlightService_Search_ReturnsCopy(t *testing.T) {
	service := newSeedService(t)

	result := service.Search(domain.SearchCriteria{})
	result[0].Price = 1

	f, ok := service.GetByID("FL001")
	require.True(t, ok)
	assert.Equal(t, 350.00, f.Price)
}

func TestFlightService_GetByID(t *testing.T) {
	service := newSeedService(t)

	f, ok := service.GetByID("FL001")
	require.True(t, ok)
	assert.Equal(t, "NYC", f.Origin)
	assert.Equal(t, "LAX", f.Destination)
	assert.Equal(t, 350.00, f.Price)
	assert.Equal(t, "SkyWings", f.Airline)

	missing, ok := service.GetByID("NOPE")
	assert.False(t, ok)
	assert.Equal(t, domain.Flight{}, missing)
}

func TestFlightService_CheckAvailability(t *testing.T) {
	service := newSeedService(t)

	assert.True(t, service.CheckAvailability("FL001"))
	assert.False(t, service.CheckAvailability("FL005"))
	assert.False(t, service.CheckAvailability("NOPE"))
}

func TestFlightService_ListAirlines(t *testing.T) {
	service := newSeedService(t)

	airlines := service.ListAirlines()

	assert.ElementsMatch(t, []string{"SkyWings", "AirGlobe", "TransAtlantic"}, airlines)
}

func TestFlightService_ReadsAreIdempotent(t *testing.T) {
	service := newSeedService(t)
	criteria := domain.SearchCriteria{Origin: domain.String("NYC")}

	assert.Equal(t, service.Search(criteria), service.Search(criteria))
	assert.Equal(t, service.ListAirlines(), service.ListAirlines())
	assert.Equal(t, service.CheckAvailability("FL002"), service.CheckAvailability("FL002"))

	first, _ := service.GetByID("FL004")
	second, _ := service.GetByID("FL004")
	assert.Equal(t, first, second)
}
