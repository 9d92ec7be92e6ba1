package book

import (
	"sort"
	"time"

	"bookcatalog-backend/internal/domains/author"
)

// Publication status values. The transition PUBLISHED -> UNPUBLISHED is
// forbidden; everything else (staying put or publishing) is allowed.
const (
	StatusUnpublished = "UNPUBLISHED"
	StatusPublished   = "PUBLISHED"
)

type Book struct {
	ID                int64     `json:"id" db:"id"`
	Title             string    `json:"title" db:"title"`
	Price             int64     `json:"price" db:"price"`
	PublicationStatus string    `json:"publication_status" db:"publication_status"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// CanTransitionTo reports whether the publication status may move from the
// book's current value to next. The status is monotonic.
func (b *Book) CanTransitionTo(next string) bool {
	return !(b.PublicationStatus == StatusPublished && next == StatusUnpublished)
}

// AuthorRow is one scanned row of the join-table/authors read used by the
// aggregation queries: an author attributed to a specific book.
type AuthorRow struct {
	BookID int64
	Author author.Author
}

// GroupAuthorsByBook folds joined rows into an authors-per-book mapping.
// The result is deterministic regardless of row order from the store:
// each book's author list is sorted by author id and free of duplicates.
func GroupAuthorsByBook(rows []AuthorRow) map[int64][]author.Author {
	grouped := make(map[int64][]author.Author)
	seen := make(map[int64]map[int64]struct{})

	for _, row := range rows {
		if seen[row.BookID] == nil {
			seen[row.BookID] = make(map[int64]struct{})
		}
		if _, ok := seen[row.BookID][row.Author.ID]; ok {
			continue
		}
		seen[row.BookID][row.Author.ID] = struct{}{}
		grouped[row.BookID] = append(grouped[row.BookID], row.Author)
	}

	for id := range grouped {
		authors := grouped[id]
		sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	}

	return grouped
}
