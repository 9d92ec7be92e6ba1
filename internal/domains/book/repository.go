package book

import (
	"context"

	"bookcatalog-backend/pkg/database"
)

// Repository is the book data access contract. Write methods are handed the
// caller's transaction querier so the book row and its association rows
// commit or roll back together.
type Repository interface {
	Insert(ctx context.Context, q database.Querier, b *Book) (*Book, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*Book, error)
	Update(ctx context.Context, q database.Querier, b *Book) (*Book, error)

	// AssociateAuthors inserts one join row per author id in a single
	// batched statement. No-op for an empty list. Ids must be distinct;
	// the caller dedupes.
	AssociateAuthors(ctx context.Context, q database.Querier, bookID int64, authorIDs []int64) error
	// ClearAuthors removes every join row of the book. No-op if none exist.
	ClearAuthors(ctx context.Context, q database.Querier, bookID int64) error
	// AuthorIDsOf returns the associated author ids of one book.
	AuthorIDsOf(ctx context.Context, q database.Querier, bookID int64) ([]int64, error)

	// GetWithAuthors issues one joined read for the book and its authors
	// and returns the grouped aggregate. ErrBookNotFound if the book row
	// is absent.
	GetWithAuthors(ctx context.Context, q database.Querier, id int64) (*Book, []AuthorRow, error)
	// ListByAuthor is phase one of the two-phase aggregation: the books
	// associated with the author, without author data.
	ListByAuthor(ctx context.Context, q database.Querier, authorID int64) ([]Book, error)
	// AuthorsForBooks is phase two: every (book, author) attribution row
	// for the given book set, co-authors included, in one query.
	AuthorsForBooks(ctx context.Context, q database.Querier, bookIDs []int64) ([]AuthorRow, error)
}
