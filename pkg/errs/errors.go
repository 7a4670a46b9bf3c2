package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotFound       = errors.New("Product not found")
	ErrInvalidID      = errors.New("Invalid product id")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotFound:       ErrStatusNotFound,
	ErrInvalidID:      ErrStatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
