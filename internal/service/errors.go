package service

import (
	"errors"

	"github.com/coachdesk/coachdesk/internal/domain"
)

// isClientError reports whether err is caused by the request rather than
// the backend, in which case it is returned unwrapped
func isClientError(err error) bool {
	var (
		notFound   *domain.ErrNotFound
		conflict   *domain.ErrConflict
		validation domain.ValidationError
	)
	return errors.As(err, &notFound) || errors.As(err, &conflict) || errors.As(err, &validation)
}
