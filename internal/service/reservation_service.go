package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gorm.io/gorm"

	"github.com/lunchly/core/internal/apperr"
	"github.com/lunchly/core/internal/repository"
	"github.com/lunchly/core/internal/reservation"
)

// ReservationStore — хранилище броней с чтением по id.
// GetByID нужен только транспорту: узнать клиента брони при обновлении.
type ReservationStore interface {
	reservation.Store
	GetByID(ctx context.Context, id int64) (reservation.Fields, error)
}

type ReservationService struct {
	reservations ReservationStore
	customerRepo repository.CustomerRepository
}

func NewReservationService(
	reservations ReservationStore,
	customerRepo repository.CustomerRepository,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		customerRepo: customerRepo,
	}
}

var _ ReservationServiceServer = (*ReservationService)(nil)

// ListCustomerReservations возвращает все брони клиента, самые поздние первыми.
// Для клиента без броней — пустой список.
func (s *ReservationService) ListCustomerReservations(
	ctx context.Context,
	req *wrapperspb.Int64Value,
) (*structpb.ListValue, error) {
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	list, err := reservation.ForCustomer(ctx, s.reservations, req.GetValue())
	if err != nil {
		return nil, toStatus("list reservations", err)
	}

	items := make([]any, 0, len(list))
	for _, r := range list {
		items = append(items, mapReservation(r))
	}
	out, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode reservations: %v", err)
	}
	return out, nil
}

// SaveReservation создаёт бронь, если id не передан (или 0), иначе обновляет
// num_guests, start_at и notes существующей. Клиент брони при обновлении не меняется.
func (s *ReservationService) SaveReservation(
	ctx context.Context,
	req *structpb.Struct,
) (*structpb.Struct, error) {
	fields := req.GetFields()

	id, err := int64Field(fields, "id")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	customerID, err := int64Field(fields, "customer_id")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	numGuests, err := reservation.ParseNumGuests(fields["num_guests"].AsInterface())
	if err != nil {
		return nil, toStatus("save reservation", err)
	}
	startAt, err := timeField(fields, "start_at")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if id == 0 {
		if customerID <= 0 {
			return nil, status.Error(codes.InvalidArgument, "customer_id is required")
		}
		if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
			return nil, toStatus("customer", err)
		}
	} else {
		existing, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			return nil, toStatus("reservation", err)
		}
		customerID = existing.CustomerID
	}

	r, err := reservation.New(reservation.Fields{
		ID:         id,
		CustomerID: customerID,
		NumGuests:  numGuests,
		StartAt:    startAt,
		Notes:      fields["notes"].GetStringValue(),
	})
	if err != nil {
		return nil, toStatus("save reservation", err)
	}
	if err := r.Save(ctx, s.reservations); err != nil {
		return nil, toStatus("save reservation", err)
	}

	out, err := structpb.NewStruct(mapReservation(r))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode reservation: %v", err)
	}
	return out, nil
}

func mapReservation(r *reservation.Reservation) map[string]any {
	return map[string]any{
		"id":                 r.ID(),
		"customer_id":        r.CustomerID(),
		"num_guests":         r.NumGuests(),
		"start_at":           r.StartAt.UTC().Format(time.RFC3339),
		"notes":              r.Notes,
		"formatted_start_at": r.FormattedStartAt(),
		"upcoming":           r.IsAfterToday(),
	}
}

func toStatus(op string, err error) error {
	switch {
	case apperr.IsBadRequest(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Errorf(codes.NotFound, "%s not found", op)
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// int64Field читает целое число из поля Struct. Отсутствующее поле — 0.
func int64Field(fields map[string]*structpb.Value, key string) (int64, error) {
	v, ok := fields[key]
	if !ok {
		return 0, nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n < 0 || n != math.Trunc(n) || n >= math.MaxInt64 {
			return 0, fmt.Errorf("%s must be a non-negative integer", key)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

// timeField читает обязательное поле с временем в формате RFC 3339
// и приводит его к UTC.
func timeField(fields map[string]*structpb.Value, key string) (time.Time, error) {
	raw := fields[key].GetStringValue()
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", key)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp", key)
	}
	return t.UTC(), nil
}
