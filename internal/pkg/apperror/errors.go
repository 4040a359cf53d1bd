package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest      ErrorCode = "BAD_REQUEST"
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabaseError   ErrorCode = "DATABASE_ERROR"
	ErrCodeSelfBooking     ErrorCode = "SELF_BOOKING"
	ErrCodePaymentProvider ErrorCode = "PAYMENT_PROVIDER_ERROR"
)

// Kind - класс ошибки процесса бронирования, по нему вызывающий код принимает решение.
type Kind string

const (
	KindUnknown         Kind = "Unknown"
	KindUnauthenticated Kind = "Unauthenticated"
	KindInvalidRequest  Kind = "InvalidRequest"
	KindNotFound        Kind = "NotFound"
	KindSelfBooking     Kind = "SelfBookingError"
	KindPersistence     Kind = "PersistenceError"
	KindPaymentProvider Kind = "PaymentProviderError"
	KindConflict        Kind = "Conflict"
	KindForbidden       Kind = "Forbidden"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по коду, чтобы errors.Is работал с обёрнутыми sentinel-ошибками.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Kind возвращает класс ошибки в терминах процесса бронирования.
func (e *AppError) Kind() Kind {
	switch e.Code {
	case ErrCodeUnauthorized:
		return KindUnauthenticated
	case ErrCodeBadRequest, ErrCodeValidation:
		return KindInvalidRequest
	case ErrCodeNotFound:
		return KindNotFound
	case ErrCodeSelfBooking:
		return KindSelfBooking
	case ErrCodeDatabaseError:
		return KindPersistence
	case ErrCodePaymentProvider:
		return KindPaymentProvider
	case ErrCodeConflict:
		return KindConflict
	case ErrCodeForbidden:
		return KindForbidden
	default:
		return KindUnknown
	}
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeSelfBooking:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodePaymentProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// KindOf извлекает класс ошибки. Не-AppError считается KindUnknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return KindUnknown
}

// MessageOf возвращает сообщение для клиента.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "внутренняя ошибка сервера"
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeForbidden
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

var (
	ErrLawyerNotFound  = New(ErrCodeNotFound, "Lawyer not found")
	ErrBookingNotFound = New(ErrCodeNotFound, "Booking not found")
	ErrSlotNotFound    = New(ErrCodeNotFound, "Availability slot not found")
	ErrProfileNotFound = New(ErrCodeNotFound, "No lawyer profile found")
	ErrUnauthenticated = New(ErrCodeUnauthorized, "User not authenticated")
	ErrForbidden       = New(ErrCodeForbidden, "недостаточно прав")
	ErrSelfBooking     = New(ErrCodeSelfBooking, "Cannot book yourself")
	ErrInvalidCheckout = New(ErrCodeBadRequest, "Invalid lawyer_id or duration_minutes (must be 30 or 60)")
)
