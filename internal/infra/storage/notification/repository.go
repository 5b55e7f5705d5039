package notification

import (
	"context"
	"sync"

	"github.com/labcentral/facility-service/internal/domain"
)

// Repository is the in-memory notification log.
//
// Entries are kept most-recent-first (new records are prepended) and
// are never removed; the only in-place mutation is the delivery status
// transition, keyed by record ID.
type Repository struct {
	mu      sync.RWMutex
	records []*domain.NotificationRecord
}

// NewRepository creates an empty notification log
func NewRepository() *Repository {
	return &Repository{}
}

// Prepend inserts a record at the head of the log
func (r *Repository) Prepend(ctx context.Context, rec *domain.NotificationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *rec
	r.records = append([]*domain.NotificationRecord{&cp}, r.records...)
	return nil
}

// UpdateStatus transitions one record to the given status in place
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			rec.Status = status
			return nil
		}
	}
	return ErrRecordNotFound
}

// GetByID returns one record
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.NotificationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, ErrRecordNotFound
}

// List returns the full log, newest first
func (r *Repository) List(ctx context.Context) ([]*domain.NotificationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.NotificationRecord, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}
