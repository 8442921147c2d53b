package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lunchly/core/internal/model"
)

// Сервису броней нужен только поиск клиента; создание клиентов
// этим сервисом не выставляется.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}
