package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/database"
)

// postgresRepository implements book.Repository with raw SQL over whatever
// querier the caller passes in (pool or open transaction).
type postgresRepository struct{}

func NewPostgresRepository() book.Repository {
	return &postgresRepository{}
}

const bookColumns = "id, title, price, publication_status, created_at, updated_at"

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.Price, &b.PublicationStatus, &b.CreatedAt, &b.UpdatedAt)
}

func (r *postgresRepository) Insert(ctx context.Context, q database.Querier, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, price, publication_status)
        VALUES ($1, $2, $3)
        RETURNING ` + bookColumns

	var created book.Book
	err := scanBook(q.QueryRow(ctx, query, b.Title, b.Price, b.PublicationStatus), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b book.Book
	err := scanBook(q.QueryRow(ctx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) Update(ctx context.Context, q database.Querier, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $1, price = $2, publication_status = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING ` + bookColumns

	var updated book.Book
	err := scanBook(q.QueryRow(ctx, query, b.Title, b.Price, b.PublicationStatus, b.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &updated, nil
}

// AssociateAuthors expands the id list server-side so 1..N associations cost
// one round trip.
func (r *postgresRepository) AssociateAuthors(ctx context.Context, q database.Querier, bookID int64, authorIDs []int64) error {
	if len(authorIDs) == 0 {
		return nil
	}

	query := `
        INSERT INTO book_authors (book_id, author_id)
        SELECT $1, unnest($2::bigint[])`

	if _, err := q.Exec(ctx, query, bookID, authorIDs); err != nil {
		return fmt.Errorf("failed to associate authors: %w", err)
	}

	return nil
}

func (r *postgresRepository) ClearAuthors(ctx context.Context, q database.Querier, bookID int64) error {
	if _, err := q.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, bookID); err != nil {
		return fmt.Errorf("failed to clear author associations: %w", err)
	}
	return nil
}

func (r *postgresRepository) AuthorIDsOf(ctx context.Context, q database.Querier, bookID int64) ([]int64, error) {
	query := `SELECT author_id FROM book_authors WHERE book_id = $1 ORDER BY author_id`

	rows, err := q.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author ids: %w", err)
	}

	return ids, nil
}

// GetWithAuthors reads book and authors in one joined query. A book with N
// authors comes back as N rows; the author columns are NULL only if a book
// somehow has no associations, which the write paths prevent.
func (r *postgresRepository) GetWithAuthors(ctx context.Context, q database.Querier, id int64) (*book.Book, []book.AuthorRow, error) {
	query := `
        SELECT b.id, b.title, b.price, b.publication_status, b.created_at, b.updated_at,
               a.id, a.name, a.birth_date
        FROM books b
        LEFT JOIN book_authors ba ON b.id = ba.book_id
        LEFT JOIN authors a ON ba.author_id = a.id
        WHERE b.id = $1
        ORDER BY a.id`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query book with authors: %w", err)
	}
	defer rows.Close()

	var b *book.Book
	var authorRows []book.AuthorRow

	for rows.Next() {
		var scanned book.Book
		var authorID *int64
		var authorName *string
		var birthDate *time.Time

		err := rows.Scan(
			&scanned.ID, &scanned.Title, &scanned.Price, &scanned.PublicationStatus,
			&scanned.CreatedAt, &scanned.UpdatedAt,
			&authorID, &authorName, &birthDate,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan book row: %w", err)
		}

		if b == nil {
			b = &scanned
		}

		if authorID != nil {
			authorRows = append(authorRows, book.AuthorRow{
				BookID: scanned.ID,
				Author: author.Author{ID: *authorID, Name: *authorName, BirthDate: *birthDate},
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	if b == nil {
		return nil, nil, book.ErrBookNotFound
	}

	return b, authorRows, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, q database.Querier, authorID int64) ([]book.Book, error) {
	query := `
        SELECT b.id, b.title, b.price, b.publication_status, b.created_at, b.updated_at
        FROM books b
        JOIN book_authors ba ON b.id = ba.book_id
        WHERE ba.author_id = $1
        ORDER BY b.id`

	rows, err := q.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := scanBookRows(rows, &b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) AuthorsForBooks(ctx context.Context, q database.Querier, bookIDs []int64) ([]book.AuthorRow, error) {
	if len(bookIDs) == 0 {
		return nil, nil
	}

	query := `
        SELECT ba.book_id, a.id, a.name, a.birth_date
        FROM book_authors ba
        JOIN authors a ON ba.author_id = a.id
        WHERE ba.book_id = ANY($1)
        ORDER BY ba.book_id, a.id`

	rows, err := q.Query(ctx, query, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors for books: %w", err)
	}
	defer rows.Close()

	var authorRows []book.AuthorRow
	for rows.Next() {
		var row book.AuthorRow
		if err := rows.Scan(&row.BookID, &row.Author.ID, &row.Author.Name, &row.Author.BirthDate); err != nil {
			return nil, fmt.Errorf("failed to scan author row: %w", err)
		}
		authorRows = append(authorRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author rows: %w", err)
	}

	return authorRows, nil
}

func scanBookRows(rows pgx.Rows, b *book.Book) error {
	if err := rows.Scan(&b.ID, &b.Title, &b.Price, &b.PublicationStatus, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("failed to scan book: %w", err)
	}
	return nil
}
