package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Taksonomi error aplikasi. Controller memetakan tipe error ke
// status code lewat HTTPStatus, jadi aturan bisnis cukup
// mengembalikan error bertipe tanpa tahu soal HTTP.

// ValidationError -> input tidak lolos aturan bisnis (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError -> reservasi/meja dengan id tersebut tidak ada (404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFoundf(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// StateError -> transisi status yang tidak diizinkan (400),
// misal mengubah reservasi yang sudah finished atau double-seating.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func Statef(format string, args ...interface{}) *StateError {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// StoreError -> kegagalan persistence, tidak bisa dipulihkan lokal (500).
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

func WrapStore(err error) *StoreError { return &StoreError{Err: err} }

// HTTPStatus memetakan error ke status code respons.
func HTTPStatus(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	var se *StateError
	var st *StoreError
	switch {
	case errors.As(err, &ve), errors.As(err, &se):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &st):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
