// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: leases/v1/leases.proto

package leasesv1

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
	LeasesService_CreatePortfolio_FullMethodName = "/leases.v1.LeasesService/CreatePortfolio"
	LeasesService_ListPortfolios_FullMethodName  = "/leases.v1.LeasesService/ListPortfolios"
	LeasesService_IngestFile_FullMethodName      = "/leases.v1.LeasesService/IngestFile"
	LeasesService_IngestDirectory_FullMethodName = "/leases.v1.LeasesService/IngestDirectory"
	LeasesService_ProcessFile_FullMethodName     = "/leases.v1.LeasesService/ProcessFile"
	LeasesService_ListLeases_FullMethodName      = "/leases.v1.LeasesService/ListLeases"
	LeasesService_ExportLeases_FullMethodName    = "/leases.v1.LeasesService/ExportLeases"
)

// LeasesServiceClient is the client API for LeasesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type LeasesServiceClient interface {
	CreatePortfolio(ctx context.Context, in *CreatePortfolioRequest, opts ...grpc.CallOption) (*CreatePortfolioResponse, error)
	ListPortfolios(ctx context.Context, in *ListPortfoliosRequest, opts ...grpc.CallOption) (*ListPortfoliosResponse, error)
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
	ProcessFile(ctx context.Context, in *ProcessFileRequest, opts ...grpc.CallOption) (*ProcessFileResponse, error)
	ListLeases(ctx context.Context, in *ListLeasesRequest, opts ...grpc.CallOption) (*ListLeasesResponse, error)
	ExportLeases(ctx context.Context, in *ExportLeasesRequest, opts ...grpc.CallOption) (*ExportLeasesResponse, error)
}

type leasesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLeasesServiceClient(cc grpc.ClientConnInterface) LeasesServiceClient {
	return &leasesServiceClient{cc}
}

func (c *leasesServiceClient) CreatePortfolio(ctx context.Context, in *CreatePortfolioRequest, opts ...grpc.CallOption) (*CreatePortfolioResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePortfolioResponse)
	err := c.cc.Invoke(ctx, LeasesService_CreatePortfolio_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leasesServiceClient) ListPortfolios(ctx context.Context, in *ListPortfoliosRequest, opts ...grpc.CallOption) (*ListPortfoliosResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPortfoliosResponse)
	err := c.cc.Invoke(ctx, LeasesService_ListPortfolios_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leasesServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, LeasesService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leasesServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, LeasesService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leasesServiceClient) ProcessFile(ctx context.Context, in *ProcessFileRequest, opts ...grpc.CallOption) (*ProcessFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessFileResponse)
	err := c.cc.Invoke(ctx, LeasesService_ProcessFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leasesServiceClient) ListLeases(ctx context.Context, in *ListLeasesRequest, opts ...grpc.CallOption) (*ListLeasesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLeasesResponse)
	err := c.cc.Invoke(ctx, LeasesService_ListLeases_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leasesServiceClient) ExportLeases(ctx context.Context, in *ExportLeasesRequest, opts ...grpc.CallOption) (*ExportLeasesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportLeasesResponse)
	err := c.cc.Invoke(ctx, LeasesService_ExportLeases_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LeasesServiceServer is the server API for LeasesService service.
// All implementations must embed UnimplementedLeasesServiceServer
// for forward compatibility.
type LeasesServiceServer interface {
	CreatePortfolio(context.Context, *CreatePortfolioRequest) (*CreatePortfolioResponse, error)
	ListPortfolios(context.Context, *ListPortfoliosRequest) (*ListPortfoliosResponse, error)
	IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	ProcessFile(context.Context, *ProcessFileRequest) (*ProcessFileResponse, error)
	ListLeases(context.Context, *ListLeasesRequest) (*ListLeasesResponse, error)
	ExportLeases(context.Context, *ExportLeasesRequest) (*ExportLeasesResponse, error)
	mustEmbedUnimplementedLeasesServiceServer()
}

// UnimplementedLeasesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLeasesServiceServer struct{}

func (UnimplementedLeasesServiceServer) CreatePortfolio(context.Context, *CreatePortfolioRequest) (*CreatePortfolioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePortfolio not implemented")
}
func (UnimplementedLeasesServiceServer) ListPortfolios(context.Context, *ListPortfoliosRequest) (*ListPortfoliosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPortfolios not implemented")
}
func (UnimplementedLeasesServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedLeasesServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedLeasesServiceServer) ProcessFile(context.Context, *ProcessFileRequest) (*ProcessFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessFile not implemented")
}
func (UnimplementedLeasesServiceServer) ListLeases(context.Context, *ListLeasesRequest) (*ListLeasesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLeases not implemented")
}
func (UnimplementedLeasesServiceServer) ExportLeases(context.Context, *ExportLeasesRequest) (*ExportLeasesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportLeases not implemented")
}
func (UnimplementedLeasesServiceServer) mustEmbedUnimplementedLeasesServiceServer() {}
func (UnimplementedLeasesServiceServer) testEmbeddedByValue()                       {}

// UnsafeLeasesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LeasesServiceServer will
// result in compilation errors.
type UnsafeLeasesServiceServer interface {
	mustEmbedUnimplementedLeasesServiceServer()
}

func RegisterLeasesServiceServer(s grpc.ServiceRegistrar, srv LeasesServiceServer) {
	// If the following call pancis, it indicates UnimplementedLeasesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LeasesService_ServiceDesc, srv)
}

func _LeasesService_CreatePortfolio_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePortfolioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeasesServiceServer).CreatePortfolio(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeasesService_CreatePortfolio_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeasesServiceServer).CreatePortfolio(ctx, req.(*CreatePortfolioRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeasesService_ListPortfolios_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPortfoliosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeasesServiceServer).ListPortfolios(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeasesService_ListPortfolios_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeasesServiceServer).ListPortfolios(ctx, req.(*ListPortfoliosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeasesService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeasesServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeasesService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeasesServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeasesService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeasesServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeasesService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeasesServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeasesService_ProcessFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeasesServiceServer).ProcessFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeasesService_ProcessFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeasesServiceServer).ProcessFile(ctx, req.(*ProcessFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeasesService_ListLeases_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLeasesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeasesServiceServer).ListLeases(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeasesService_ListLeases_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeasesServiceServer).ListLeases(ctx, req.(*ListLeasesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeasesService_ExportLeases_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportLeasesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeasesServiceServer).ExportLeases(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeasesService_ExportLeases_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeasesServiceServer).ExportLeases(ctx, req.(*ExportLeasesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LeasesService_ServiceDesc is the grpc.ServiceDesc for LeasesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LeasesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "leases.v1.LeasesService",
	HandlerType: (*LeasesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePortfolio",
			Handler:    _LeasesService_CreatePortfolio_Handler,
		},
		{
			MethodName: "ListPortfolios",
			Handler:    _LeasesService_ListPortfolios_Handler,
		},
		{
			MethodName: "IngestFile",
			Handler:    _LeasesService_IngestFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _LeasesService_IngestDirectory_Handler,
		},
		{
			MethodName: "ProcessFile",
			Handler:    _LeasesService_ProcessFile_Handler,
		},
		{
			MethodName: "ListLeases",
			Handler:    _LeasesService_ListLeases_Handler,
		},
		{
			MethodName: "ExportLeases",
			Handler:    _LeasesService_ExportLeases_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "leases/v1/leases.proto",
}
