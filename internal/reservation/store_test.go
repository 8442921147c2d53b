package reservation

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps rows in memory and records every statement issued.
type fakeStore struct {
	rows    map[int64]Fields
	nextID  int64
	inserts int
	updates int
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[int64]Fields{}, nextID: 100}
}

func (s *fakeStore) ListByCustomer(_ context.Context, customerID int64) ([]Fields, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []Fields
	for _, row := range s.rows {
		if row.CustomerID == customerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.After(out[j].StartAt) })
	return out, nil
}

func (s *fakeStore) Insert(_ context.Context, r *Reservation) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.inserts++
	s.nextID++
	s.rows[s.nextID] = Fields{
		ID:         s.nextID,
		CustomerID: r.CustomerID(),
		NumGuests:  r.NumGuests(),
		StartAt:    r.StartAt,
		Notes:      r.Notes,
	}
	return s.nextID, nil
}

func (s *fakeStore) Update(_ context.Context, r *Reservation) error {
	if s.err != nil {
		return s.err
	}
	s.updates++
	row, ok := s.rows[r.ID()]
	if !ok {
		return nil
	}
	row.NumGuests = r.NumGuests()
	row.StartAt = r.StartAt
	row.Notes = r.Notes
	s.rows[r.ID()] = row
	return nil
}

func TestSave_InsertThenUpdate(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	at := time.Date(2025, 5, 1, 19, 0, 0, 0, time.UTC)

	r, err := New(Fields{CustomerID: 9, NumGuests: 2, StartAt: at, Notes: "birthday"})
	require.NoError(t, err)

	require.NoError(t, r.Save(ctx, store))
	assert.True(t, r.Persisted())
	assert.Equal(t, int64(101), r.ID())
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, 0, store.updates)

	require.NoError(t, r.SetNumGuests(5))
	r.Notes = "birthday, cake"
	require.NoError(t, r.Save(ctx, store))

	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, int64(101), r.ID())

	row := store.rows[101]
	assert.Equal(t, int64(9), row.CustomerID)
	assert.Equal(t, 5, row.NumGuests)
	assert.Equal(t, "birthday, cake", row.Notes)
	assert.Len(t, store.rows, 1)
}

func TestSave_InsertErrorKeepsUnpersisted(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := newFakeStore()
	store.err = storeErr

	r, err := New(Fields{CustomerID: 1, NumGuests: 2})
	require.NoError(t, err)

	err = r.Save(context.Background(), store)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate unchanged, got %v", err)
	}
	if r.Persisted() {
		t.Fatalf("reservation must stay unpersisted after failed insert")
	}
}

func TestForCustomer_Empty(t *testing.T) {
	list, err := ForCustomer(context.Background(), newFakeStore(), 1)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestForCustomer_OrderedLatestFirst(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	t1 := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	for _, f := range []Fields{
		{CustomerID: 1, NumGuests: 2, StartAt: t1},
		{CustomerID: 1, NumGuests: 3, StartAt: t2},
		{CustomerID: 2, NumGuests: 4, StartAt: t2},
	} {
		r, err := New(f)
		require.NoError(t, err)
		require.NoError(t, r.Save(ctx, store))
	}

	list, err := ForCustomer(ctx, store, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].StartAt.Equal(t2))
	assert.True(t, list[1].StartAt.Equal(t1))
	for _, r := range list {
		assert.True(t, r.Persisted())
		assert.Equal(t, int64(1), r.CustomerID())
	}
}

func TestForCustomer_InvalidStoredRow(t *testing.T) {
	store := newFakeStore()
	store.rows[1] = Fields{ID: 1, CustomerID: 5, NumGuests: 0}

	_, err := ForCustomer(context.Background(), store, 5)
	require.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestForCustomer_StoreError(t *testing.T) {
	storeErr := errors.New("timeout")
	store := newFakeStore()
	store.err = storeErr

	_, err := ForCustomer(context.Background(), store, 5)
	require.ErrorIs(t, err, storeErr)
}
