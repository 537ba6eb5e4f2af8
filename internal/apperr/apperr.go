// Package apperr defines the error taxonomy shared by services, middleware and
// the response sender, and the translator that maps arbitrary errors onto it.
package apperr

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies an error and decides its HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// GenericMessage is sent instead of the real message of non-operational errors.
const GenericMessage = "something went wrong"

const (
	msgTokenExpired = "Your token has expired! Please log in again."
	msgTokenInvalid = "Invalid token. Please log in again!"

	pgUniqueViolation = "23505"
)

// Error is an expected, user-facing failure. Operational errors carry a
// message that is safe to return to the client.
type Error struct {
	Kind        Kind
	Message     string
	Operational bool
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that may be shown to the client.
func (e *Error) PublicMessage() string {
	if !e.Operational {
		return GenericMessage
	}
	return e.Message
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Operational: true}
}

func BadRequest(msg string) *Error   { return newError(KindBadRequest, msg) }
func Unauthorized(msg string) *Error { return newError(KindUnauthorized, msg) }
func Forbidden(msg string) *Error    { return newError(KindForbidden, msg) }
func NotFound(msg string) *Error     { return newError(KindNotFound, msg) }

// Internal is an operational server-side failure whose message is still shown.
func Internal(msg string, err error) *Error {
	e := newError(KindInternal, msg)
	e.Err = err
	return e
}

// Unexpected wraps a programming or infrastructure fault. Its details are
// never sent to the client.
func Unexpected(err error) *Error {
	return &Error{Kind: KindInternal, Message: "unexpected error", Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// ErrUnauthenticated is raised by token helpers when no usable token is found.
// Packages signal it by wrapping it.
var ErrUnauthenticated = errors.New("token is not valid")

// From translates any error into an *Error.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &Error{Kind: KindUnauthorized, Message: msgTokenExpired, Operational: true, Err: err}
	case errors.Is(err, ErrUnauthenticated):
		return &Error{Kind: KindUnauthorized, Message: "Token is not valid", Operational: true, Err: err}
	case isJWTError(err):
		return &Error{Kind: KindUnauthorized, Message: msgTokenInvalid, Operational: true, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &Error{Kind: KindBadRequest, Message: duplicateMessage(pgErr), Operational: true, Err: err}
	}

	return Unexpected(err)
}

var jwtErrors = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenInvalidClaims,
	jwt.ErrTokenUsedBeforeIssued,
	jwt.ErrSignatureInvalid,
}

func isJWTError(err error) bool {
	for _, target := range jwtErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Key (email)=(a@x.com) already exists.
var detailKey = regexp.MustCompile(`^Key \(([^)]+)\)=`)

func duplicateMessage(pgErr *pgconn.PgError) string {
	if m := detailKey.FindStringSubmatch(pgErr.Detail); m != nil {
		return m[1] + " already exists"
	}
	return "duplicate entry"
}
