package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeProductOutOfStock   = "PRODUCT_OUT_OF_STOCK"
	ErrCodeCartNotFound        = "CART_NOT_FOUND"
	ErrCodeCartItemNotFound    = "CART_ITEM_NOT_FOUND"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeCheckoutFailed      = "CHECKOUT_FAILED"
	ErrCodeDiscountNotFound    = "DISCOUNT_NOT_FOUND"
	ErrCodeDiscountAlreadyUsed = "DISCOUNT_ALREADY_USED"
	ErrCodeInvalidDiscountCode = "INVALID_DISCOUNT_CODE"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
)

func ProductNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeProductNotFound, message, http.StatusNotFound)
}

// Reserved: stock is not tracked by the current catalog.
func ProductOutOfStockError(message string) *AppError {
	return NewAppError(ErrCodeProductOutOfStock, message, http.StatusConflict)
}

func CartNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeCartNotFound, message, http.StatusNotFound)
}

func CartItemNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeCartItemNotFound, message, http.StatusNotFound)
}

func InvalidQuantityError(message string) *AppError {
	return NewAppError(ErrCodeInvalidQuantity, message, http.StatusBadRequest)
}

func InvalidRequestError(message string) *AppError {
	return NewAppError(ErrCodeInvalidRequest, message, http.StatusBadRequest)
}

func CheckoutFailedError(message string) *AppError {
	return NewAppError(ErrCodeCheckoutFailed, message, http.StatusPaymentRequired)
}

func DiscountNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeDiscountNotFound, message, http.StatusBadRequest)
}

func DiscountAlreadyUsedError(message string) *AppError {
	return NewAppError(ErrCodeDiscountAlreadyUsed, message, http.StatusBadRequest)
}

func InvalidDiscountCodeError(message string) *AppError {
	return NewAppError(ErrCodeInvalidDiscountCode, message, http.StatusBadRequest)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// CodeOf returns the taxonomy code carried by err, or INTERNAL_ERROR.
func CodeOf(err error) string {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code
	}

	return ErrCodeInternal
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return InvalidRequestError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}

// FromPanic converts a recovered panic value into an INTERNAL_ERROR.
func FromPanic(message string, recovered any) *AppError {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", recovered)
	}

	return InternalError(message).WithError(err)
}
