package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Описание сервиса собрано вручную: запросы и ответы — well-known типы
// protobuf, поэтому отдельный .proto и кодогенерация не нужны.

const (
	ReservationServiceName = "lunchly.reservation.v1.ReservationService"

	ListCustomerReservationsFullMethod = "/" + ReservationServiceName + "/ListCustomerReservations"
	SaveReservationFullMethod          = "/" + ReservationServiceName + "/SaveReservation"
)

type ReservationServiceServer interface {
	// Брони клиента (Int64Value — id клиента), самые поздние первыми.
	ListCustomerReservations(context.Context, *wrapperspb.Int64Value) (*structpb.ListValue, error)
	// Создать бронь (нет id) или обновить существующую.
	SaveReservation(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var ReservationServiceDesc = grpc.ServiceDesc{
	ServiceName: ReservationServiceName,
	HandlerType: (*ReservationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListCustomerReservations",
			Handler:    listCustomerReservationsHandler,
		},
		{
			MethodName: "SaveReservation",
			Handler:    saveReservationHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterReservationServiceServer(s grpc.ServiceRegistrar, srv ReservationServiceServer) {
	s.RegisterService(&ReservationServiceDesc, srv)
}

func listCustomerReservationsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).ListCustomerReservations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListCustomerReservationsFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).ListCustomerReservations(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func saveReservationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationServiceServer).SaveReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SaveReservationFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationServiceServer).SaveReservation(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ReservationClient — клиент к ReservationService.
type ReservationClient struct {
	cc grpc.ClientConnInterface
}

func NewReservationClient(cc grpc.ClientConnInterface) *ReservationClient {
	return &ReservationClient{cc: cc}
}

func (c *ReservationClient) ListCustomerReservations(ctx context.Context, customerID int64, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListCustomerReservationsFullMethod, wrapperspb.Int64(customerID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReservationClient) SaveReservation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SaveReservationFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
