package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/restock/constant"
)

type CustomError struct {
	errType constant.ErrorType
	details []string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Details returns the human readable reasons attached to the error, if any.
func (c CustomError) Details() []string {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetails(errorType constant.ErrorType, details ...string) CustomError {
	return CustomError{
		errType: errorType,
		details: details,
	}
}

// Is reports whether err carries a CustomError of the given type anywhere in its chain.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}
