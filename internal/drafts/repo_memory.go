package drafts

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. Drafts are cloned on
// the way in and out so callers never share a document.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Draft
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Draft),
	}
}

// Create stores a new draft.
func (r *MemoryRepo) Create(ctx context.Context, d Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[d.ID]; exists {
		return ErrInvalidInput
	}
	r.data[d.ID] = d.clone()
	return nil
}

// Get returns a draft by ID.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.data[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return d.clone(), nil
}

// List returns drafts, most recently updated first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]Draft, 0, len(r.data))
	for _, d := range r.data {
		all = append(all, d.clone())
	}
	r.mu.RUnlock()

	if offset >= len(all) {
		return []Draft{}, nil
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})

	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// Update replaces the stored document and updated_at.
func (r *MemoryRepo) Update(ctx context.Context, d Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[d.ID]
	if !ok {
		return ErrNotFound
	}
	next := d.clone()
	next.CreatedAt = existing.CreatedAt
	r.data[d.ID] = next
	return nil
}

// Delete removes a draft.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
