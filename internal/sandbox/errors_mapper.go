package sandbox

import (
	"errors"
	"net/http"
)

var errorStatusMap = map[error]int{
	ErrServiceNotFound: http.StatusNotFound,
	ErrRequestNotFound: http.StatusNotFound,
	ErrTokenNotFound:   http.StatusNotFound,
	ErrMediaNotFound:   http.StatusNotFound,

	ErrInvalidAPIKey: http.StatusForbidden,

	ErrNoLocation:         http.StatusBadRequest,
	ErrInvalidServiceCode: http.StatusBadRequest,
	ErrInvalidDate:        http.StatusBadRequest,
	ErrUnsupportedFormat:  http.StatusBadRequest,
	errInvalidForm:        http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
