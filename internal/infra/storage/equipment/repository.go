package equipment

import (
	"context"
	"sync"

	"github.com/labcentral/facility-service/internal/domain"
)

// Repository is the in-memory equipment store.
//
// It is the single owner of the equipment collection: callers only ever
// see copies, and every mutation goes through a method that holds the
// store lock, so the availability resolver and the HTTP handlers can
// run on different goroutines.
type Repository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*domain.Equipment
}

// NewRepository creates an empty equipment store
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]*domain.Equipment),
	}
}

// Seed loads the catalog into the store, replacing any previous content.
// Called once at startup.
func (r *Repository) Seed(catalog []*domain.Equipment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = r.order[:0]
	r.items = make(map[string]*domain.Equipment, len(catalog))
	for _, item := range catalog {
		cp := cloneEquipment(item)
		r.order = append(r.order, cp.ID)
		r.items[cp.ID] = cp
	}
}

// List returns all equipment in catalog order
func (r *Repository) List(ctx context.Context) ([]*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Equipment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneEquipment(r.items[id]))
	}
	return out, nil
}

// GetByID returns one equipment item
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrEquipmentNotFound
	}
	return cloneEquipment(item), nil
}

// UpdateStatus sets the status of one equipment item
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return ErrEquipmentNotFound
	}
	item.Status = status
	return nil
}

func cloneEquipment(e *domain.Equipment) *domain.Equipment {
	cp := *e
	cp.Specifications = append([]string(nil), e.Specifications...)
	return &cp
}
