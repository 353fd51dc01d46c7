// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: research/v1/research.proto

package v1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ResearchService_SubmitResearch_FullMethodName = "/research.v1.ResearchService/SubmitResearch"
	ResearchService_GetStatus_FullMethodName      = "/research.v1.ResearchService/GetStatus"
	ResearchService_Resume_FullMethodName         = "/research.v1.ResearchService/Resume"
	ResearchService_GetResult_FullMethodName      = "/research.v1.ResearchService/GetResult"
	ResearchService_DeleteResearch_FullMethodName = "/research.v1.ResearchService/DeleteResearch"
	ResearchService_Subscribe_FullMethodName      = "/research.v1.ResearchService/Subscribe"
)

// ResearchServiceClient is the client API for ResearchService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ResearchService drives research jobs end to end: submit, observe, resume
// at the human checkpoint, and collect the published article.
type ResearchServiceClient interface {
	SubmitResearch(ctx context.Context, in *SubmitResearchRequest, opts ...grpc.CallOption) (*SubmitResearchResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error)
	// Resume feeds the human decision into a job parked at the review
	// checkpoint. Fails with FAILED_PRECONDITION unless the job status is
	// hitl_review.
	Resume(ctx context.Context, in *ResumeRequest, opts ...grpc.CallOption) (*ResumeResponse, error)
	// GetResult fails with FAILED_PRECONDITION unless the job is completed.
	GetResult(ctx context.Context, in *GetResultRequest, opts ...grpc.CallOption) (*GetResultResponse, error)
	DeleteResearch(ctx context.Context, in *DeleteResearchRequest, opts ...grpc.CallOption) (*DeleteResearchResponse, error)
	// Subscribe streams job lifecycle events, starting with a connected event
	// replaying the current status and stage.
	Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[JobEvent], error)
}

type researchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewResearchServiceClient(cc grpc.ClientConnInterface) ResearchServiceClient {
	return &researchServiceClient{cc}
}

func (c *researchServiceClient) SubmitResearch(ctx context.Context, in *SubmitResearchRequest, opts ...grpc.CallOption) (*SubmitResearchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResearchResponse)
	err := c.cc.Invoke(ctx, ResearchService_SubmitResearch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *researchServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStatusResponse)
	err := c.cc.Invoke(ctx, ResearchService_GetStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *researchServiceClient) Resume(ctx context.Context, in *ResumeRequest, opts ...grpc.CallOption) (*ResumeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeResponse)
	err := c.cc.Invoke(ctx, ResearchService_Resume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *researchServiceClient) GetResult(ctx context.Context, in *GetResultRequest, opts ...grpc.CallOption) (*GetResultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetResultResponse)
	err := c.cc.Invoke(ctx, ResearchService_GetResult_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *researchServiceClient) DeleteResearch(ctx context.Context, in *DeleteResearchRequest, opts ...grpc.CallOption) (*DeleteResearchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteResearchResponse)
	err := c.cc.Invoke(ctx, ResearchService_DeleteResearch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *researchServiceClient) Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[JobEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ResearchService_ServiceDesc.Streams[0], ResearchService_Subscribe_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeRequest, JobEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ResearchService_SubscribeClient = grpc.ServerStreamingClient[JobEvent]

// ResearchServiceServer is the server API for ResearchService service.
// All implementations must embed UnimplementedResearchServiceServer
// for forward compatibility.
//
// ResearchService drives research jobs end to end: submit, observe, resume
// at the human checkpoint, and collect the published article.
type ResearchServiceServer interface {
	SubmitResearch(context.Context, *SubmitResearchRequest) (*SubmitResearchResponse, error)
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	// Resume feeds the human decision into a job parked at the review
	// checkpoint. Fails with FAILED_PRECONDITION unless the job status is
	// hitl_review.
	Resume(context.Context, *ResumeRequest) (*ResumeResponse, error)
	// GetResult fails with FAILED_PRECONDITION unless the job is completed.
	GetResult(context.Context, *GetResultRequest) (*GetResultResponse, error)
	DeleteResearch(context.Context, *DeleteResearchRequest) (*DeleteResearchResponse, error)
	// Subscribe streams job lifecycle events, starting with a connected event
	// replaying the current status and stage.
	Subscribe(*SubscribeRequest, grpc.ServerStreamingServer[JobEvent]) error
	mustEmbedUnimplementedResearchServiceServer()
}

// UnimplementedResearchServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedResearchServiceServer struct{}

func (UnimplementedResearchServiceServer) SubmitResearch(context.Context, *SubmitResearchRequest) (*SubmitResearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitResearch not implemented")
}
func (UnimplementedResearchServiceServer) GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedResearchServiceServer) Resume(context.Context, *ResumeRequest) (*ResumeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Resume not implemented")
}
func (UnimplementedResearchServiceServer) GetResult(context.Context, *GetResultRequest) (*GetResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetResult not implemented")
}
func (UnimplementedResearchServiceServer) DeleteResearch(context.Context, *DeleteResearchRequest) (*DeleteResearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteResearch not implemented")
}
func (UnimplementedResearchServiceServer) Subscribe(*SubscribeRequest, grpc.ServerStreamingServer[JobEvent]) error {
	return status.Error(codes.Unimplemented, "method Subscribe not implemented")
}
func (UnimplementedResearchServiceServer) mustEmbedUnimplementedResearchServiceServer() {}
func (UnimplementedResearchServiceServer) testEmbeddedByValue()                         {}

// UnsafeResearchServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ResearchServiceServer will
// result in compilation errors.
type UnsafeResearchServiceServer interface {
	mustEmbedUnimplementedResearchServiceServer()
}

func RegisterResearchServiceServer(s grpc.ServiceRegistrar, srv ResearchServiceServer) {
	// If the following call panics, it indicates UnimplementedResearchServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ResearchService_ServiceDesc, srv)
}

func _ResearchService_SubmitResearch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitResearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResearchServiceServer).SubmitResearch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResearchService_SubmitResearch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResearchServiceServer).SubmitResearch(ctx, req.(*SubmitResearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResearchService_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResearchServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResearchService_GetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResearchServiceServer).GetStatus(ctx, req.(*GetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResearchService_Resume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResearchServiceServer).Resume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResearchService_Resume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResearchServiceServer).Resume(ctx, req.(*ResumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResearchService_GetResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetResultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResearchServiceServer).GetResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResearchService_GetResult_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResearchServiceServer).GetResult(ctx, req.(*GetResultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResearchService_DeleteResearch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteResearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResearchServiceServer).DeleteResearch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResearchService_DeleteResearch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResearchServiceServer).DeleteResearch(ctx, req.(*DeleteResearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResearchService_Subscribe_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ResearchServiceServer).Subscribe(m, &grpc.GenericServerStream[SubscribeRequest, JobEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ResearchService_SubscribeServer = grpc.ServerStreamingServer[JobEvent]

// ResearchService_ServiceDesc is the grpc.ServiceDesc for ResearchService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ResearchService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "research.v1.ResearchService",
	HandlerType: (*ResearchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitResearch",
			Handler:    _ResearchService_SubmitResearch_Handler,
		},
		{
			MethodName: "GetStatus",
			Handler:    _ResearchService_GetStatus_Handler,
		},
		{
			MethodName: "Resume",
			Handler:    _ResearchService_Resume_Handler,
		},
		{
			MethodName: "GetResult",
			Handler:    _ResearchService_GetResult_Handler,
		},
		{
			MethodName: "DeleteResearch",
			Handler:    _ResearchService_DeleteResearch_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       _ResearchService_Subscribe_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "research/v1/research.proto",
}
