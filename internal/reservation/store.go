package reservation

import "context"

// Store — хранилище броней.
// В проде это репозиторий на GORM, в тестах — фейк в памяти.
type Store interface {
	// Брони клиента, отсортированные по start_at по убыванию.
	ListByCustomer(ctx context.Context, customerID int64) ([]Fields, error)
	// Вставить новую бронь и вернуть выданный хранилищем id.
	Insert(ctx context.Context, r *Reservation) (int64, error)
	// Обновить num_guests, start_at и notes брони с id r.ID().
	Update(ctx context.Context, r *Reservation) error
}

// ForCustomer возвращает все брони клиента, самые поздние первыми.
// Если броней нет, возвращается пустой срез, а не ошибка.
func ForCustomer(ctx context.Context, s Store, customerID int64) ([]*Reservation, error) {
	rows, err := s.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]*Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := New(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Save сохраняет бронь: новую вставляет и запоминает её id,
// уже сохранённую обновляет. Клиент брони при обновлении не меняется.
// Ошибки хранилища возвращаются без изменений.
func (r *Reservation) Save(ctx context.Context, s Store) error {
	if r.Persisted() {
		return s.Update(ctx, r)
	}

	id, err := s.Insert(ctx, r)
	if err != nil {
		return err
	}
	r.id = id
	return nil
}
