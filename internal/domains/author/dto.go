package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

func (r CreateAuthorRequest) Validate() error {
	return validateAuthorFields(&r.Name, &r.BirthDate)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// Full replacement of both mutable fields, not a partial patch.
type UpdateAuthorRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validateAuthorFields(&r.Name, &r.BirthDate)
}

func validateAuthorFields(name, birthDate *string) error {
	return validation.Errors{
		"name": validation.Validate(*name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		"birth_date": validation.Validate(*birthDate,
			validation.Required.Error("birth_date is required"),
			validation.Date(DateLayout).
				Max(latestBirthDate()).
				RangeError("birth_date must be in the past").
				Error("birth_date must be in YYYY-MM-DD format"),
		),
	}.Filter()
}

// latestBirthDate is the newest date still strictly before today.
func latestBirthDate() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// AuthorResponse is the outbound view of an author.
type AuthorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: a.BirthDate.Format(DateLayout),
	}
}

func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToResponse())
	}
	return out
}
