package booking

import (
	"context"
	"sync"

	"github.com/labcentral/facility-service/internal/domain"
)

// Repository is the in-memory booking store: single owner of the
// booking collection, mutex-guarded, handing out copies only.
// Insertion order is preserved so listings read as request history.
type Repository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*domain.Booking
}

// NewRepository creates an empty booking store
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]*domain.Booking),
	}
}

// Create appends a new booking
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[b.ID]; exists {
		return nil, ErrDuplicateID
	}

	cp := *b
	r.order = append(r.order, cp.ID)
	r.items[cp.ID] = &cp

	out := cp
	return &out, nil
}

// GetByID returns one booking
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

// List returns bookings in insertion order, optionally filtered by status
func (r *Repository) List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(r.order))
	for _, id := range r.order {
		b := r.items[id]
		if status != nil && b.Status != *status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

// Decide transitions one PENDING booking to the given status and
// returns the updated copy. The check and the write happen under one
// lock, so concurrent decisions on the same booking resolve to exactly
// one winner.
func (r *Repository) Decide(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.items[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.IsDecided() {
		return nil, ErrAlreadyDecided
	}
	b.Status = status

	cp := *b
	return &cp, nil
}
