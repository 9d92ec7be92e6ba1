package author

import (
	"context"

	"bookcatalog-backend/pkg/database"
)

// Repository is the author data access contract. Every method takes the
// querier it should run against so callers can pass either the pool or an
// open transaction.
type Repository interface {
	Insert(ctx context.Context, q database.Querier, a *Author) (*Author, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*Author, error)
	// GetByIDs fetches all authors whose id is in ids with a single query.
	// Missing ids are not an error at this layer; the result is simply
	// shorter than the input.
	GetByIDs(ctx context.Context, q database.Querier, ids []int64) ([]Author, error)
	GetAll(ctx context.Context, q database.Querier) ([]Author, error)
	Update(ctx context.Context, q database.Querier, a *Author) (*Author, error)
}
