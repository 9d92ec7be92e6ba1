package book

import "context"

// Service is the book workflow contract: create/update orchestrate author
// resolution, the book row and the association set under one transaction.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*BookResponse, error)
	GetByID(ctx context.Context, id int64) (*BookResponse, error)
	Update(ctx context.Context, id int64, req *UpdateBookRequest) (*BookResponse, error)
	// ListByAuthor returns the author's books, each with its complete
	// author list (co-authors included). Unknown author ids fail with
	// author.ErrAuthorNotFound; an author without books yields an empty
	// slice.
	ListByAuthor(ctx context.Context, authorID int64) ([]BookResponse, error)
}
