package author

import "context"

// Service is the author business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
	GetByID(ctx context.Context, id int64) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)
	// ResolveAll fetches the authors for a non-empty id list (duplicates
	// allowed) in one bulk query. If any distinct id is unknown it fails
	// with *UnknownAuthorsError carrying the full missing set, so callers
	// can reject a book write before mutating anything.
	ResolveAll(ctx context.Context, ids []int64) ([]Author, error)
}
