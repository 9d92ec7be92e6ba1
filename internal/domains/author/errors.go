package author

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
)

// UnknownAuthorsError reports every requested author id that does not
// exist, so a book write can be rejected with a precise message instead of
// failing on the first missing id.
type UnknownAuthorsError struct {
	IDs []int64
}

func (e *UnknownAuthorsError) Error() string {
	return fmt.Sprintf("unknown author ids: %v", e.IDs)
}

// ToErrorCode converts a domain error to its API error code.
func ToErrorCode(err error) string {
	var unknown *UnknownAuthorsError
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.As(err, &unknown):
		return "UNKNOWN_AUTHORS"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var unknown *UnknownAuthorsError
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.As(err, &unknown):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
