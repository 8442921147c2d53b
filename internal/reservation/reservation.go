package reservation

import (
	"fmt"
	"time"

	"github.com/lunchly/core/internal/apperr"
)

// ErrInvalidGuestCount — количество гостей не является числом больше нуля.
var ErrInvalidGuestCount = apperr.BadRequest("Reservations must be a number greater than 0.")

// Fields — исходные данные для построения брони:
// пользовательский ввод или строка из хранилища.
// ID == 0 означает, что бронь ещё не сохранена.
type Fields struct {
	ID         int64
	CustomerID int64
	NumGuests  int
	StartAt    time.Time
	Notes      string
}

// Reservation — бронь столика для одного клиента.
//
// Идентификатор и клиент задаются при создании и дальше не меняются,
// количество гостей меняется только через SetNumGuests.
type Reservation struct {
	id         int64
	customerID int64
	numGuests  int

	StartAt time.Time
	Notes   string
}

// New собирает бронь из полей. Количество гостей проходит ту же
// проверку, что и в SetNumGuests.
func New(f Fields) (*Reservation, error) {
	r := &Reservation{
		id:         f.ID,
		customerID: f.CustomerID,
		StartAt:    f.StartAt,
		Notes:      f.Notes,
	}
	if err := r.SetNumGuests(f.NumGuests); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reservation) ID() int64 { return r.id }
func (r *Reservation) CustomerID() int64 { return r.customerID }
func (r *Reservation) NumGuests() int { return r.numGuests }

// Persisted сообщает, получила ли бронь идентификатор от хранилища.
func (r *Reservation) Persisted() bool {
	return r.id != 0
}

// SetNumGuests задаёт количество гостей. При ошибке старое значение сохраняется.
func (r *Reservation) SetNumGuests(n int) error {
	if n < 1 {
		return ErrInvalidGuestCount
	}
	r.numGuests = n
	return nil
}

// FormattedStartAt возвращает время брони в виде "March 3rd 2024, 6:30 pm".
// Время выводится в том часовом поясе, который несёт StartAt.
func (r *Reservation) FormattedStartAt() string {
	t := r.StartAt
	return fmt.Sprintf("%s %d%s %d, %s",
		t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year(), t.Format("3:04 pm"))
}

// IsAfterToday сообщает, что бронь ещё не началась (StartAt >= now).
func (r *Reservation) IsAfterToday() bool {
	return r.isAfter(time.Now())
}

func (r *Reservation) isAfter(now time.Time) bool {
	return !r.StartAt.Before(now)
}

func ordinalSuffix(day int) string {
	if n := day % 100; n >= 11 && n <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
