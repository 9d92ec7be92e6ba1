package book

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/response"
)

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrForbiddenStatusTransition rejects PUBLISHED -> UNPUBLISHED.
	ErrForbiddenStatusTransition = errors.New("status change from PUBLISHED to UNPUBLISHED is not allowed")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "BOOK_NOT_FOUND",
		Message: "The specified book does not exist",
	},
	ErrForbiddenStatusTransition: {
		Status:  http.StatusBadRequest,
		Code:    "FORBIDDEN_STATUS_TRANSITION",
		Message: "A published book cannot be unpublished",
	},
	author.ErrAuthorNotFound: {
		Status:  http.StatusNotFound,
		Code:    "AUTHOR_NOT_FOUND",
		Message: "The specified author does not exist",
	},
}

// HandleError writes the HTTP response for a book workflow error. Returns
// true when err was non-nil and a response has been written.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	var unknown *author.UnknownAuthorsError
	if errors.As(err, &unknown) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "UNKNOWN_AUTHORS",
			"One or more author ids do not exist", gin.H{"missing_author_ids": unknown.IDs})
		return true
	}

	log.Error().Str("request_id", c.GetString("request_id")).Err(err).Msg("book request failed")
	response.InternalServerError(c, "Internal server error")
	return true
}
