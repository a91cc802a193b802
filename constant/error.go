package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrInvalidTransition
	ErrPermissionDenied
	ErrMissingPayload
	ErrConcurrentModification
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrValidation:             "validation error",
	ErrInvalidTransition:      "action not allowed in current order status",
	ErrPermissionDenied:       "permission denied",
	ErrMissingPayload:         "required payload field is missing",
	ErrConcurrentModification: "order was modified concurrently, refresh and retry",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrValidation:             http.StatusUnprocessableEntity,
	ErrInvalidTransition:      http.StatusConflict,
	ErrPermissionDenied:       http.StatusForbidden,
	ErrMissingPayload:         http.StatusBadRequest,
	ErrConcurrentModification: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrValidation:             "0005",
	ErrInvalidTransition:      "0006",
	ErrPermissionDenied:       "0007",
	ErrMissingPayload:         "0008",
	ErrConcurrentModification: "0009",
}
