package flights_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "flightsearch.v1.FlightsService"

	SearchFlightsFullMethod     = "/" + ServiceName + "/SearchFlights"
	GetFlightFullMethod         = "/" + ServiceName + "/GetFlight"
	CheckAvailabilityFullMethod = "/" + ServiceName + "/CheckAvailability"
	ListAirlinesFullMethod      = "/" + ServiceName + "/ListAirlines"
)

// FlightsServiceServer is the server side of the flights gRPC API. Messages
// are protobuf well-known types: flights and search criteria travel as
// structpb.Struct, ids as wrapperspb.StringValue.
type FlightsServiceServer interface {
	SearchFlights(ctx context.Context, criteria *structpb.Struct) (*structpb.Struct, error)
	GetFlight(ctx context.Context, id *wrapperspb.StringValue) (*structpb.Struct, error)
	CheckAvailability(ctx context.Context, id *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	ListAirlines(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error)
}

// UnimplementedFlightsServiceServer can be embedded to keep forward compatibility.
type UnimplementedFlightsServiceServer struct{}

func (UnimplementedFlightsServiceServer) SearchFlights(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchFlights not implemented")
}

func (UnimplementedFlightsServiceServer) GetFlight(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFlight not implemented")
}

func (UnimplementedFlightsServiceServer) CheckAvailability(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckAvailability not implemented")
}

func (UnimplementedFlightsServiceServer) ListAirlines(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAirlines not implemented")
}

func RegisterFlightsServiceServer(s grpc.ServiceRegistrar, srv FlightsServiceServer) {
	s.RegisterService(&flightsServiceDesc, srv)
}

var flightsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchFlights", Handler: searchFlightsHandler},
		{MethodName: "GetFlight", Handler: getFlightHandler},
		{MethodName: "CheckAvailability", Handler: checkAvailabilityHandler},
		{MethodName: "ListAirlines", Handler: listAirlinesHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func searchFlightsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).SearchFlights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SearchFlightsFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlightsServiceServer).SearchFlights(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getFlightHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).GetFlight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetFlightFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlightsServiceServer).GetFlight(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func checkAvailabilityHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).CheckAvailability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CheckAvailabilityFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlightsServiceServer).CheckAvailability(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listAirlinesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).ListAirlines(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListAirlinesFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlightsServiceServer).ListAirlines(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Client calls FlightsService over a client connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) SearchFlights(ctx context.Context, criteria *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SearchFlightsFullMethod, criteria, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlight(ctx context.Context, id *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetFlightFullMethod, id, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CheckAvailability(ctx context.Context, id *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, CheckAvailabilityFullMethod, id, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAirlines(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListAirlinesFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
