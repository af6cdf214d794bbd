package service

import (
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
)

// recoverInternal is deferred by every public operation so unexpected panics
// surface as INTERNAL_ERROR and never as a half-built result.
func recoverInternal[T any](message string, result *T, err *error) {
	if r := recover(); r != nil {
		var zero T
		*result = zero
		*err = errors.FromPanic(message, r)
	}
}

// asAppError passes AppErrors through and wraps anything else as
// INTERNAL_ERROR.
func asAppError(err error, message string) error {
	if err == nil {
		return nil
	}

	if appErr, ok := errors.IsAppError(err); ok {
		return appErr
	}

	return errors.InternalError(message).WithError(err)
}
