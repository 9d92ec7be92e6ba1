package service

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/database"
)

// bookService orchestrates book writes: resolve authors first (fail fast,
// nothing mutated yet), then run the book row and its association set in a
// single transaction, then build the response from data already in hand.
type bookService struct {
	repo    book.Repository
	authors author.Service
	db      database.Querier
	txm     database.TxManager
}

func NewBookService(repo book.Repository, authors author.Service, db database.Querier, txm database.TxManager) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
		db:      db,
		txm:     txm,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookResponse, error) {
	// Referential check before any mutation.
	resolved, err := s.authors.ResolveAll(ctx, req.AuthorIDs)
	if err != nil {
		return nil, err
	}

	var created *book.Book
	err = s.txm.WithinTx(ctx, func(q database.Querier) error {
		created, err = s.repo.Insert(ctx, q, &book.Book{
			Title:             req.Title,
			Price:             *req.Price,
			PublicationStatus: req.PublicationStatus,
		})
		if err != nil {
			return err
		}

		return s.repo.AssociateAuthors(ctx, q, created.ID, distinct(req.AuthorIDs))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created.ToResponse(orderByRequest(resolved, req.AuthorIDs)), nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.BookResponse, error) {
	b, rows, err := s.repo.GetWithAuthors(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	return b.ToResponse(book.GroupAuthorsByBook(rows)[b.ID]), nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) (*book.BookResponse, error) {
	existing, err := s.repo.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	// Referential check before any mutation.
	resolved, err := s.authors.ResolveAll(ctx, req.AuthorIDs)
	if err != nil {
		return nil, err
	}

	if !existing.CanTransitionTo(req.PublicationStatus) {
		return nil, book.ErrForbiddenStatusTransition
	}

	existing.Title = req.Title
	existing.Price = *req.Price
	existing.PublicationStatus = req.PublicationStatus

	var updated *book.Book
	err = s.txm.WithinTx(ctx, func(q database.Querier) error {
		updated, err = s.repo.Update(ctx, q, existing)
		if err != nil {
			return err
		}

		// Wholesale replacement of the association set. Clear and
		// re-insert share the transaction with the row update, so a
		// failure in between can never persist an author-less book.
		if err := s.repo.ClearAuthors(ctx, q, id); err != nil {
			return err
		}
		return s.repo.AssociateAuthors(ctx, q, id, distinct(req.AuthorIDs))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return updated.ToResponse(orderByRequest(resolved, req.AuthorIDs)), nil
}

// ListByAuthor uses a two-phase fetch: the author's books first, then one
// bulk query for every author of those books. Two queries total regardless
// of how many books come back, and each book still carries its complete
// author list, co-authors included.
func (s *bookService) ListByAuthor(ctx context.Context, authorID int64) ([]book.BookResponse, error) {
	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	books, err := s.repo.ListByAuthor(ctx, s.db, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	if len(books) == 0 {
		return []book.BookResponse{}, nil
	}

	bookIDs := make([]int64, 0, len(books))
	for _, b := range books {
		bookIDs = append(bookIDs, b.ID)
	}

	rows, err := s.repo.AuthorsForBooks(ctx, s.db, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authors for books: %w", err)
	}

	grouped := book.GroupAuthorsByBook(rows)

	responses := make([]book.BookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, *b.ToResponse(grouped[b.ID]))
	}

	return responses, nil
}

// distinct keeps the first occurrence of each id, preserving input order.
// The join table is keyed on (book, author), so duplicate input ids must
// collapse to one association row.
func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// orderByRequest reorders resolved authors to follow the requested id
// order, so the response author list is deterministic for clients.
func orderByRequest(resolved []author.Author, requestedIDs []int64) []author.Author {
	byID := make(map[int64]author.Author, len(resolved))
	for _, a := range resolved {
		byID[a.ID] = a
	}

	out := make([]author.Author, 0, len(resolved))
	seen := make(map[int64]struct{}, len(resolved))
	for _, id := range requestedIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}
