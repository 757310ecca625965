package grpc

// proto.go defines the gRPC server interface derived from
// cdbsim/simulation/v1/simulation.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/bibbank/cdbsim/api/gen/go/cdbsim/simulation/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SimulationServiceServer is the server API for SimulationService.
type SimulationServiceServer interface {
	RunSimulation(context.Context, *RunSimulationRequest) (*RunSimulationResponse, error)
	mustEmbedUnimplementedSimulationServiceServer()
}

// UnimplementedSimulationServiceServer provides forward-compatible default implementations.
type UnimplementedSimulationServiceServer struct{}

func (UnimplementedSimulationServiceServer) RunSimulation(context.Context, *RunSimulationRequest) (*RunSimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunSimulation not implemented")
}
func (UnimplementedSimulationServiceServer) mustEmbedUnimplementedSimulationServiceServer() {}

// RegisterSimulationServiceServer registers the SimulationServiceServer with the gRPC server.
func RegisterSimulationServiceServer(s *grpclib.Server, srv SimulationServiceServer) {
	s.RegisterService(&_SimulationService_serviceDesc, srv)
}

var _SimulationService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive // gRPC handler registration
	ServiceName: "cdbsim.simulation.v1.SimulationService",
	HandlerType: (*SimulationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RunSimulation", Handler: _SimulationService_RunSimulation_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _SimulationService_RunSimulation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RunSimulationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulationServiceServer).RunSimulation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cdbsim.simulation.v1.SimulationService/RunSimulation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimulationServiceServer).RunSimulation(ctx, req.(*RunSimulationRequest))
	}
	return interceptor(ctx, in, info, handler)
}
