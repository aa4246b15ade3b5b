package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// エラー種別。APIレスポンスのkindにそのまま出す。
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindValidation        ErrorKind = "validation_error"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindInvalidState      ErrorKind = "invalid_state"
	KindConflict          ErrorKind = "conflict"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindForbidden         ErrorKind = "forbidden"
	KindInternal          ErrorKind = "internal"
)

type HTTPError struct {
	Status  int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error { return e.Err }

func NewHTTPError(status int, kind ErrorKind, message string) error {
	return &HTTPError{Status: status, Kind: kind, Message: message}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func errNotFound(msg string) error {
	return NewHTTPError(http.StatusNotFound, KindNotFound, msg)
}

func errValidation(msg string) error {
	return NewHTTPError(http.StatusUnprocessableEntity, KindValidation, msg)
}

func errInvalidTransition(msg string) error {
	return NewHTTPError(http.StatusUnprocessableEntity, KindInvalidTransition, msg)
}

func errInvalidState(msg string) error {
	return NewHTTPError(http.StatusConflict, KindInvalidState, msg)
}

func errUnauthorized() error {
	return NewHTTPError(http.StatusUnauthorized, KindUnauthorized, "unauthorized")
}

// DB由来のエラー。原因を抱えたまま500にする（tx層が直列化失敗を見分けるため）。
func dbError(err error) error {
	return &HTTPError{Status: http.StatusInternalServerError, Kind: KindInternal, Message: "db error", Err: err}
}
