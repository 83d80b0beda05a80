package create_reservation

import (
	"context"
	"sync"
	"time"

	"github.com/rovart/BookingService/internal/domain"
)

type passThroughTx struct {
	calls int
}

func (p *passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fakeCustomers struct {
	mu     sync.Mutex
	byMail map[string]*domain.Customer
	nextID int64
	calls  int
	err    error
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{byMail: map[string]*domain.Customer{}}
}

func (f *fakeCustomers) UpsertByEmail(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.byMail[c.Email]; ok {
		existing.Name = c.Name
		existing.Phone = c.Phone
		copied := *existing
		return &copied, nil
	}
	f.nextID++
	c.ID = f.nextID
	stored := *c
	f.byMail[c.Email] = &stored
	return c, nil
}

type fakeServices struct {
	mu    sync.Mutex
	byKey map[string]*domain.Service
	calls int
}

func newFakeServices() *fakeServices {
	return &fakeServices{byKey: map[string]*domain.Service{}}
}

func (f *fakeServices) UpsertByKey(_ context.Context, s *domain.Service) (*domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	stored := *s
	f.byKey[s.ID] = &stored
	return s, nil
}

type fakeReservations struct {
	mu        sync.Mutex
	items     []*domain.Reservation
	createErr error
	takenErr  error
}

func (f *fakeReservations) IsSlotTaken(_ context.Context, date time.Time, slot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.takenErr != nil {
		return false, f.takenErr
	}
	for _, r := range f.items {
		if r.Date.Equal(date) && r.Time == slot && r.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservations) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	r.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	f.items = append(f.items, r)
	return r, nil
}

type fakeMetrics struct {
	created   int
	conflicts int
}

func (f *fakeMetrics) ReservationCreated()  { f.created++ }
func (f *fakeMetrics) ReservationConflict() { f.conflicts++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
