package flights_service_api

import (
	"fmt"
	"math"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldOrigin      = "origin"
	fieldDestination = "destination"
	fieldMaxPrice    = "max_price"
	fieldFlights     = "flights"
)

func toPBFlight(f domain.Flight) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":              structpb.NewStringValue(f.ID),
		"origin":          structpb.NewStringValue(f.Origin),
		"destination":     structpb.NewStringValue(f.Destination),
		"departure_time":  structpb.NewStringValue(f.DepartureTime),
		"arrival_time":    structpb.NewStringValue(f.ArrivalTime),
		"price":           structpb.NewNumberValue(f.Price),
		"available_seats": structpb.NewNumberValue(float64(f.AvailableSeats)),
		"airline":         structpb.NewStringValue(f.Airline),
	}}
}

// FromPBFlight decodes a flight produced by the server.
func FromPBFlight(s *structpb.Struct) domain.Flight {
	fields := s.GetFields()
	return domain.Flight{
		ID:             fields["id"].GetStringValue(),
		Origin:         fields["origin"].GetStringValue(),
		Destination:    fields["destination"].GetStringValue(),
		DepartureTime:  fields["departure_time"].GetStringValue(),
		ArrivalTime:    fields["arrival_time"].GetStringValue(),
		Price:          fields["price"].GetNumberValue(),
		AvailableSeats: int(fields["available_seats"].GetNumberValue()),
		Airline:        fields["airline"].GetStringValue(),
	}
}

func toPBFlightList(flights []domain.Flight) *structpb.Struct {
	values := make([]*structpb.Value, 0, len(flights))
	for _, f := range flights {
		values = append(values, structpb.NewStructValue(toPBFlight(f)))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldFlights: structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
}

// FromPBFlightList decodes a SearchFlights response.
func FromPBFlightList(s *structpb.Struct) []domain.Flight {
	values := s.GetFields()[fieldFlights].GetListValue().GetValues()
	flights := make([]domain.Flight, 0, len(values))
	for _, v := range values {
		flights = append(flights, FromPBFlight(v.GetStructValue()))
	}
	return flights
}

// ToPBCriteria encodes search criteria, leaving out absent filters.
func ToPBCriteria(c domain.SearchCriteria) *structpb.Struct {
	fields := make(map[string]*structpb.Value)
	if c.Origin != nil {
		fields[fieldOrigin] = structpb.NewStringValue(*c.Origin)
	}
	if c.Destination != nil {
		fields[fieldDestination] = structpb.NewStringValue(*c.Destination)
	}
	if c.MaxPrice != nil {
		fields[fieldMaxPrice] = structpb.NewNumberValue(*c.MaxPrice)
	}
	return &structpb.Struct{Fields: fields}
}

func fromPBCriteria(s *structpb.Struct) (domain.SearchCriteria, error) {
	var c domain.SearchCriteria
	for key, v := range s.GetFields() {
		switch key {
		case fieldOrigin, fieldDestination:
			sv, ok := v.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return domain.SearchCriteria{}, fmt.Errorf("%s must be a string", key)
			}
			if key == fieldOrigin {
				c.Origin = domain.String(sv.StringValue)
			} else {
				c.Destination = domain.String(sv.StringValue)
			}
		case fieldMaxPrice:
			nv, ok := v.GetKind().(*structpb.Value_NumberValue)
			if !ok || nv.NumberValue < 0 || math.IsNaN(nv.NumberValue) || math.IsInf(nv.NumberValue, 0) {
				return domain.SearchCriteria{}, fmt.Errorf("%w: max_price must be a non-negative number", domain.ErrInvalidPrice)
			}
			c.MaxPrice = domain.Float(nv.NumberValue)
		default:
			return domain.SearchCriteria{}, fmt.Errorf("unknown search field %q", key)
		}
	}
	return c, nil
}
