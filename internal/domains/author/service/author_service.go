package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/pkg/database"
)

// authorService implements author.Service. It owns no transaction scope:
// every operation here is a single statement, so the pool querier is enough.
type authorService struct {
	repo author.Repository
	db   database.Querier
}

func NewAuthorService(repo author.Repository, db database.Querier) author.Service {
	return &authorService{
		repo: repo,
		db:   db,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	birthDate, err := time.Parse(author.DateLayout, req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date: %w", err)
	}

	created, err := s.repo.Insert(ctx, s.db, &author.Author{
		Name:      req.Name,
		BirthDate: birthDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, s.db, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx, s.db)
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	existing, err := s.repo.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	birthDate, err := time.Parse(author.DateLayout, req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date: %w", err)
	}

	existing.Name = req.Name
	existing.BirthDate = birthDate

	return s.repo.Update(ctx, s.db, existing)
}

// ResolveAll is the fail-fast gate for book writes: all requested ids must
// exist or the whole lookup fails, reporting every missing id.
func (s *authorService) ResolveAll(ctx context.Context, ids []int64) ([]author.Author, error) {
	distinct := dedupe(ids)

	found, err := s.repo.GetByIDs(ctx, s.db, distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %w", err)
	}

	if len(found) < len(distinct) {
		return nil, &author.UnknownAuthorsError{IDs: missingIDs(distinct, found)}
	}

	return found, nil
}

// dedupe keeps the first occurrence of each id, preserving input order.
func dedupe(ids []int64) []int64 {
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

func missingIDs(requested []int64, found []author.Author) []int64 {
	present := make(map[int64]struct{}, len(found))
	for _, a := range found {
		present[a.ID] = struct{}{}
	}

	var missing []int64
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
