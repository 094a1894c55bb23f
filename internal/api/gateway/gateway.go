// Package gateway exposes the flights gRPC API as JSON over HTTP.
package gateway

import (
	"fmt"
	"net/http"

	flightsapi "github.com/Domenick1991/flightsearch/internal/api/flights_service_api"
	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type gateway struct {
	client    *flightsapi.Client
	mux       *runtime.ServeMux
	marshaler runtime.Marshaler
}

// NewMux registers the /v1 routes on a grpc-gateway mux backed by client.
func NewMux(client *flightsapi.Client) (*runtime.ServeMux, error) {
	g := &gateway{
		client:    client,
		mux:       runtime.NewServeMux(),
		marshaler: &runtime.JSONPb{},
	}

	routes := []struct {
		path    string
		handler runtime.HandlerFunc
	}{
		{"/v1/flights", g.searchFlights},
		{"/v1/flights/{id}", g.getFlight},
		{"/v1/flights/{id}/availability", g.checkAvailability},
		{"/v1/airlines", g.listAirlines},
	}
	for _, r := range routes {
		if err := g.mux.HandlePath(http.MethodGet, r.path, r.handler); err != nil {
			return nil, fmt.Errorf("register gateway route %s: %w", r.path, err)
		}
	}
	return g.mux, nil
}

func (g *gateway) searchFlights(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q := r.URL.Query()
	criteria, err := domain.ParseCriteria(q.Get("origin"), q.Get("destination"), q.Get("max_price"))
	if err != nil {
		g.writeError(w, r, status.Error(codes.InvalidArgument, err.Error()))
		return
	}

	resp, err := g.client.SearchFlights(r.Context(), flightsapi.ToPBCriteria(criteria))
	g.write(w, r, resp, err)
}

func (g *gateway) getFlight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	resp, err := g.client.GetFlight(r.Context(), wrapperspb.String(params["id"]))
	g.write(w, r, resp, err)
}

func (g *gateway) checkAvailability(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id := params["id"]
	resp, err := g.client.CheckAvailability(r.Context(), wrapperspb.String(id))
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	g.write(w, r, &structpb.Struct{Fields: map[string]*structpb.Value{
		"flight_id": structpb.NewStringValue(id),
		"available": structpb.NewBoolValue(resp.GetValue()),
	}}, nil)
}

func (g *gateway) listAirlines(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	resp, err := g.client.ListAirlines(r.Context(), &emptypb.Empty{})
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	g.write(w, r, &structpb.Struct{Fields: map[string]*structpb.Value{
		"airlines": structpb.NewListValue(resp),
	}}, nil)
}

func (g *gateway) write(w http.ResponseWriter, r *http.Request, msg proto.Message, err error) {
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	body, err := g.marshaler.Marshal(msg)
	if err != nil {
		g.writeError(w, r, status.Error(codes.Internal, err.Error()))
		return
	}
	w.Header().Set("Content-Type", g.marshaler.ContentType(msg))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (g *gateway) writeError(w http.ResponseWriter, r *http.Request, err error) {
	runtime.HTTPError(r.Context(), g.mux, g.marshaler, w, r, err)
}
