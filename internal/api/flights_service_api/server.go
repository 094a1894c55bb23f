package flights_service_api

import (
	"context"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/Domenick1991/flightsearch/internal/service/flights"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements FlightsServiceServer on top of the flight query engine.
type Server struct {
	flights flights.FlightUseCase
	UnimplementedFlightsServiceServer
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

func (s *Server) SearchFlights(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	criteria, err := fromPBCriteria(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return toPBFlightList(s.flights.Search(criteria)), nil
}

func (s *Server) GetFlight(_ context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	flight, ok := s.flights.GetByID(req.GetValue())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "%s: %s", domain.ErrFlightNotFound, req.GetValue())
	}
	return toPBFlight(flight), nil
}

func (s *Server) CheckAvailability(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(s.flights.CheckAvailability(req.GetValue())), nil
}

func (s *Server) ListAirlines(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	airlines := s.flights.ListAirlines()
	values := make([]*structpb.Value, 0, len(airlines))
	for _, a := range airlines {
		values = append(values, structpb.NewStringValue(a))
	}
	return &structpb.ListValue{Values: values}, nil
}

var _ FlightsServiceServer = (*Server)(nil)
