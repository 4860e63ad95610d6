package services

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/mattermost/msteams-mcp-server/server/msteams"
)

// Kind classifies a failed operation so callers can tell transient failures from terminal ones.
type Kind int

const (
	RemoteUnavailable Kind = iota
	NotFound
	InvalidArgument
	Unauthorized
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case InvalidArgument:
		return "invalid_argument"
	case Unauthorized:
		return "unauthorized"
	default:
		return "remote_unavailable"
	}
}

// Error is returned by every service operation. The underlying cause stays reachable through
// errors.Is and errors.As.
type Error struct {
	Op         string
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Op, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same call may succeed later: throttling, server side failures
// and failures that never reached the service.
func (e *Error) Retryable() bool {
	if e.Kind != RemoteUnavailable {
		return false
	}
	return e.StatusCode == 0 || e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

func kindForStatus(statusCode int) Kind {
	switch statusCode {
	case http.StatusNotFound:
		return NotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return Unauthorized
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return InvalidArgument
	default:
		return RemoteUnavailable
	}
}

// remoteError classifies a Graph client failure by its HTTP status.
func remoteError(op string, err error) error {
	if err == nil {
		return nil
	}

	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return err
	}

	statusCode := msteams.StatusCode(err)
	if detail := msteams.ErrorDetail(err); detail != "" {
		err = errors.Wrap(err, detail)
	}

	return &Error{
		Op:         op,
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		Err:        err,
	}
}

func notFoundError(op string, format string, args ...any) error {
	return &Error{
		Op:   op,
		Kind: NotFound,
		Err:  errors.Errorf(format, args...),
	}
}

// InvalidArgumentError reports a call rejected before any request was sent.
func InvalidArgumentError(op string, err error) error {
	return &Error{
		Op:   op,
		Kind: InvalidArgument,
		Err:  err,
	}
}

// KindOf returns the classification of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind, true
	}
	return RemoteUnavailable, false
}
