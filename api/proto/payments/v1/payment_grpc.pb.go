// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: api/proto/payments/v1/payment.proto

package paymentv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	PaymentService_PaymentAuthorize_FullMethodName = "/payments.v1.PaymentService/PaymentAuthorize"
	PaymentService_PaymentSync_FullMethodName      = "/payments.v1.PaymentService/PaymentSync"
)

// PaymentServiceClient is the client API for PaymentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PaymentServiceClient interface {
	PaymentAuthorize(ctx context.Context, in *PaymentsAuthorizeRequest, opts ...grpc.CallOption) (*PaymentsAuthorizeResponse, error)
	PaymentSync(ctx context.Context, in *PaymentsSyncRequest, opts ...grpc.CallOption) (*PaymentsSyncResponse, error)
}

type paymentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPaymentServiceClient(cc grpc.ClientConnInterface) PaymentServiceClient {
	return &paymentServiceClient{cc}
}

func (c *paymentServiceClient) PaymentAuthorize(ctx context.Context, in *PaymentsAuthorizeRequest, opts ...grpc.CallOption) (*PaymentsAuthorizeResponse, error) {
	out := new(PaymentsAuthorizeResponse)
	err := c.cc.Invoke(ctx, PaymentService_PaymentAuthorize_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paymentServiceClient) PaymentSync(ctx context.Context, in *PaymentsSyncRequest, opts ...grpc.CallOption) (*PaymentsSyncResponse, error) {
	out := new(PaymentsSyncResponse)
	err := c.cc.Invoke(ctx, PaymentService_PaymentSync_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentServiceServer is the server API for PaymentService service.
// All implementations must embed UnimplementedPaymentServiceServer
// for forward compatibility
type PaymentServiceServer interface {
	PaymentAuthorize(context.Context, *PaymentsAuthorizeRequest) (*PaymentsAuthorizeResponse, error)
	PaymentSync(context.Context, *PaymentsSyncRequest) (*PaymentsSyncResponse, error)
	mustEmbedUnimplementedPaymentServiceServer()
}

// UnimplementedPaymentServiceServer must be embedded to have forward compatible implementations.
type UnimplementedPaymentServiceServer struct {
}

func (UnimplementedPaymentServiceServer) PaymentAuthorize(context.Context, *PaymentsAuthorizeRequest) (*PaymentsAuthorizeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PaymentAuthorize not implemented")
}
func (UnimplementedPaymentServiceServer) PaymentSync(context.Context, *PaymentsSyncRequest) (*PaymentsSyncResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PaymentSync not implemented")
}
func (UnimplementedPaymentServiceServer) mustEmbedUnimplementedPaymentServiceServer() {}

// UnsafePaymentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PaymentServiceServer will
// result in compilation errors.
type UnsafePaymentServiceServer interface {
	mustEmbedUnimplementedPaymentServiceServer()
}

func RegisterPaymentServiceServer(s grpc.ServiceRegistrar, srv PaymentServiceServer) {
	s.RegisterService(&PaymentService_ServiceDesc, srv)
}

func _PaymentService_PaymentAuthorize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PaymentsAuthorizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).PaymentAuthorize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaymentService_PaymentAuthorize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentServiceServer).PaymentAuthorize(ctx, req.(*PaymentsAuthorizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PaymentService_PaymentSync_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PaymentsSyncRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).PaymentSync(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaymentService_PaymentSync_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentServiceServer).PaymentSync(ctx, req.(*PaymentsSyncRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PaymentService_ServiceDesc is the grpc.ServiceDesc for PaymentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PaymentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "payments.v1.PaymentService",
	HandlerType: (*PaymentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PaymentAuthorize",
			Handler:    _PaymentService_PaymentAuthorize_Handler,
		},
		{
			MethodName: "PaymentSync",
			Handler:    _PaymentService_PaymentSync_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/payments/v1/payment.proto",
}
