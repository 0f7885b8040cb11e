package drafts

import "context"

// Repo defines persistence operations for drafts.
type Repo interface {
	Create(ctx context.Context, d Draft) error
	Get(ctx context.Context, id string) (Draft, error)
	List(ctx context.Context, limit, offset int) ([]Draft, error)
	Update(ctx context.Context, d Draft) error
	Delete(ctx context.Context, id string) error
}
