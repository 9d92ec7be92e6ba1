package book

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookcatalog-backend/internal/domains/author"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		want    bool
	}{
		{"unpublished stays unpublished", StatusUnpublished, StatusUnpublished, true},
		{"unpublished to published", StatusUnpublished, StatusPublished, true},
		{"published stays published", StatusPublished, StatusPublished, true},
		{"published to unpublished is forbidden", StatusPublished, StatusUnpublished, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{PublicationStatus: tt.current}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.next))
		})
	}
}

func TestGroupAuthorsByBook(t *testing.T) {
	rows := []AuthorRow{
		{BookID: 2, Author: author.Author{ID: 30, Name: "C"}},
		{BookID: 1, Author: author.Author{ID: 20, Name: "B"}},
		{BookID: 1, Author: author.Author{ID: 10, Name: "A"}},
		{BookID: 2, Author: author.Author{ID: 30, Name: "C"}}, // duplicate row
	}

	grouped := GroupAuthorsByBook(rows)

	assert.Len(t, grouped, 2)

	// Sorted by author id regardless of row order, duplicates dropped.
	assert.Equal(t, []int64{10, 20}, authorIDs(grouped[1]))
	assert.Equal(t, []int64{30}, authorIDs(grouped[2]))
}

func TestGroupAuthorsByBook_Empty(t *testing.T) {
	grouped := GroupAuthorsByBook(nil)
	assert.Empty(t, grouped)
}

func authorIDs(authors []author.Author) []int64 {
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	return ids
}
