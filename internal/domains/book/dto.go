package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/domains/author"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title             string  `json:"title"`
	Price             *int64  `json:"price"`
	PublicationStatus string  `json:"publication_status"`
	AuthorIDs         []int64 `json:"author_ids"`
}

func (r CreateBookRequest) Validate() error {
	return validateBookFields(r.Title, r.Price, r.PublicationStatus, r.AuthorIDs)
}

// UpdateBookRequest - PUT /v1/books/:id
// Full replacement: every mutable field plus the whole author set.
type UpdateBookRequest struct {
	Title             string  `json:"title"`
	Price             *int64  `json:"price"`
	PublicationStatus string  `json:"publication_status"`
	AuthorIDs         []int64 `json:"author_ids"`
}

func (r UpdateBookRequest) Validate() error {
	return validateBookFields(r.Title, r.Price, r.PublicationStatus, r.AuthorIDs)
}

func validateBookFields(title string, price *int64, status string, authorIDs []int64) error {
	return validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		"price": validation.Validate(price,
			validation.NotNil.Error("price is required"),
			validation.Min(int64(0)).Error("price must not be negative"),
		),
		"publication_status": validation.Validate(status,
			validation.Required.Error("publication_status is required"),
			validation.In(StatusUnpublished, StatusPublished).
				Error("publication_status must be UNPUBLISHED or PUBLISHED"),
		),
		"author_ids": validation.Validate(authorIDs,
			validation.Required.Error("at least one author id is required"),
			validation.Each(validation.Min(int64(1)).Error("author ids must be positive")),
		),
	}.Filter()
}

// BookResponse is the aggregated book-with-authors view.
type BookResponse struct {
	ID                int64                   `json:"id"`
	Title             string                  `json:"title"`
	Price             int64                   `json:"price"`
	PublicationStatus string                  `json:"publication_status"`
	Authors           []author.AuthorResponse `json:"authors"`
}

func (b Book) ToResponse(authors []author.Author) *BookResponse {
	return &BookResponse{
		ID:                b.ID,
		Title:             b.Title,
		Price:             b.Price,
		PublicationStatus: b.PublicationStatus,
		Authors:           author.ToResponses(authors),
	}
}
