package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/pkg/database"
)

// postgresRepository implements author.Repository with raw SQL. It holds no
// connection itself; the querier comes in per call.
type postgresRepository struct{}

func NewPostgresRepository() author.Repository {
	return &postgresRepository{}
}

const authorColumns = "id, name, birth_date, created_at, updated_at"

func scanAuthor(row pgx.Row, a *author.Author) error {
	return row.Scan(&a.ID, &a.Name, &a.BirthDate, &a.CreatedAt, &a.UpdatedAt)
}

func (r *postgresRepository) Insert(ctx context.Context, q database.Querier, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, birth_date)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	var created author.Author
	err := scanAuthor(q.QueryRow(ctx, query, a.Name, a.BirthDate), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	var a author.Author
	err := scanAuthor(q.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, q database.Querier, ids []int64) ([]author.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = ANY($1) ORDER BY id`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors by ids: %w", err)
	}
	defer rows.Close()

	return collectAuthors(rows)
}

func (r *postgresRepository) GetAll(ctx context.Context, q database.Querier) ([]author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	return collectAuthors(rows)
}

func (r *postgresRepository) Update(ctx context.Context, q database.Querier, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, birth_date = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + authorColumns

	var updated author.Author
	err := scanAuthor(q.QueryRow(ctx, query, a.Name, a.BirthDate, a.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func collectAuthors(rows pgx.Rows) ([]author.Author, error) {
	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}
