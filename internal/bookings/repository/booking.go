package repository

import (
	"context"
	"fmt"
	"sync"

	bookingserrors "matchpoint/internal/bookings/errors"
	"matchpoint/pkg/model"
)

// BookingRepository is the authoritative collection of bookings. State is
// held in process memory only and lives for the process lifetime.
type BookingRepository interface {
	Insert(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	// Snapshot returns copies of all bookings in insertion order.
	Snapshot(ctx context.Context) []*model.Booking
	// Update applies mutate to the booking under the store lock. The
	// mutation runs against a copy; the store is only touched when mutate
	// returns nil, so a failed transition leaves prior state visible.
	Update(ctx context.Context, id string, mutate func(*model.Booking) error) (*model.Booking, error)
	// Remove deletes the booking after guard approves it, atomically.
	Remove(ctx context.Context, id string, guard func(*model.Booking) error) error
	Count(ctx context.Context) int
}

type memoryBookingRepository struct {
	mu    sync.Mutex
	order []string
	byID  map[string]*model.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		byID: make(map[string]*model.Booking),
	}
}

func (r *memoryBookingRepository) Insert(_ context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return fmt.Errorf("duplicate booking id %q", booking.ID)
	}

	r.byID[booking.ID] = booking.Clone()
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *memoryBookingRepository) FindByID(_ context.Context, id string) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}
	return booking.Clone(), nil
}

func (r *memoryBookingRepository) Snapshot(_ context.Context) []*model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*model.Booking, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.byID[id].Clone())
	}
	return snapshot
}

func (r *memoryBookingRepository) Update(_ context.Context, id string, mutate func(*model.Booking) error) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}

	r.byID[id] = next
	return next.Clone(), nil
}

func (r *memoryBookingRepository) Remove(_ context.Context, id string, guard func(*model.Booking) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return bookingserrors.ErrNotFound
	}

	if guard != nil {
		if err := guard(booking.Clone()); err != nil {
			return err
		}
	}

	delete(r.byID, id)
	for i, candidate := range r.order {
		if candidate == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryBookingRepository) Count(_ context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}
