// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wire

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "planbridge.PlanService"

// Full method names, usable with grpc.ClientConn.Invoke/NewStream.
const (
	MethodExecutePlan  = "/" + ServiceName + "/ExecutePlan"
	MethodAnalyzePlan  = "/" + ServiceName + "/AnalyzePlan"
	MethodConfig       = "/" + ServiceName + "/Config"
	MethodAddArtifacts = "/" + ServiceName + "/AddArtifacts"
)

// PlanServiceServer is the server API for the Planbridge protocol.
type PlanServiceServer interface {
	// ExecutePlan runs a plan and streams result chunks.
	ExecutePlan(*ExecutePlanRequest, PlanService_ExecutePlanServer) error
	// AnalyzePlan answers one of the nine analyze operations.
	AnalyzePlan(context.Context, *AnalyzePlanRequest) (*AnalyzePlanResponse, error)
	// Config applies one config operation to a session.
	Config(context.Context, *ConfigRequest) (*ConfigResponse, error)
	// AddArtifacts ingests an artifact upload stream and reports per-name
	// verification outcomes.
	AddArtifacts(PlanService_AddArtifactsServer) error
}

// PlanService_ExecutePlanServer is the send side of an execute stream.
type PlanService_ExecutePlanServer interface {
	Send(*ExecutePlanResponse) error
	grpc.ServerStream
}

type planServiceExecutePlanServer struct {
	grpc.ServerStream
}

func (x *planServiceExecutePlanServer) Send(m *ExecutePlanResponse) error {
	return x.ServerStream.SendMsg(m)
}

// PlanService_AddArtifactsServer is the receive side of an artifact upload
// stream.
type PlanService_AddArtifactsServer interface {
	SendAndClose(*AddArtifactsResponse) error
	Recv() (*AddArtifactsRequest, error)
	grpc.ServerStream
}

type planServiceAddArtifactsServer struct {
	grpc.ServerStream
}

func (x *planServiceAddArtifactsServer) SendAndClose(m *AddArtifactsResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *planServiceAddArtifactsServer) Recv() (*AddArtifactsRequest, error) {
	m := new(AddArtifactsRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterPlanServiceServer registers srv on a gRPC server.
func RegisterPlanServiceServer(s grpc.ServiceRegistrar, srv PlanServiceServer) {
	s.RegisterService(&PlanService_ServiceDesc, srv)
}

func _PlanService_AnalyzePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).AnalyzePlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodAnalyzePlan,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).AnalyzePlan(ctx, req.(*AnalyzePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_Config_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).Config(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodConfig,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).Config(ctx, req.(*ConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_ExecutePlan_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ExecutePlanRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PlanServiceServer).ExecutePlan(m, &planServiceExecutePlanServer{stream})
}

func _PlanService_AddArtifacts_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(PlanServiceServer).AddArtifacts(&planServiceAddArtifactsServer{stream})
}

// PlanService_ServiceDesc is the grpc.ServiceDesc for the Planbridge service.
// Maintained by hand alongside the message definitions.
var PlanService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzePlan",
			Handler:    _PlanService_AnalyzePlan_Handler,
		},
		{
			MethodName: "Config",
			Handler:    _PlanService_Config_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ExecutePlan",
			Handler:       _PlanService_ExecutePlan_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "AddArtifacts",
			Handler:       _PlanService_AddArtifacts_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "planbridge.proto",
}
