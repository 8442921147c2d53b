package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lunchly/core/internal/model"
	"github.com/lunchly/core/internal/reservation"
)

// Реализация reservation.Store на GORM.
type GormReservationRepository struct {
	db *gorm.DB
}

var _ reservation.Store = (*GormReservationRepository)(nil)

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]reservation.Fields, error) {
	var rows []model.Reservation
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]reservation.Fields, 0, len(rows))
	for _, row := range rows {
		out = append(out, toFields(row))
	}
	return out, nil
}

// GetByID возвращает бронь по id или gorm.ErrRecordNotFound.
func (r *GormReservationRepository) GetByID(ctx context.Context, id int64) (reservation.Fields, error) {
	var row model.Reservation
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return reservation.Fields{}, err
	}
	return toFields(row), nil
}

// Insert выполняет INSERT ... RETURNING id.
// start_at всегда пишем в UTC: sqlite хранит время строкой и сортирует её как текст.
func (r *GormReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) (int64, error) {
	row := model.Reservation{
		CustomerID: res.CustomerID(),
		NumGuests:  res.NumGuests(),
		StartAt:    res.StartAt.UTC(),
		Notes:      res.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

// Update переписывает только изменяемые колонки; customer_id не трогаем.
// Отсутствие строки с таким id ошибкой не считается.
func (r *GormReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	return r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id = ?", res.ID()).
		Updates(map[string]any{
			"num_guests": res.NumGuests(),
			"start_at":   res.StartAt.UTC(),
			"notes":      res.Notes,
		}).
		Error
}

func toFields(row model.Reservation) reservation.Fields {
	return reservation.Fields{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		NumGuests:  row.NumGuests,
		StartAt:    row.StartAt.UTC(),
		Notes:      row.Notes,
	}
}
