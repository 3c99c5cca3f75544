package errors

import "github.com/muhammadheryan/cart-reservation/constant"

// CustomError carries one of the service's error types; message, wire code
// and HTTP status all derive from the type so the three can never disagree.
type CustomError struct {
	errType constant.ErrorType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{errType: errorType}
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

// Is lets errors.Is match two CustomErrors by type.
func (c CustomError) Is(target error) bool {
	other, ok := target.(CustomError)
	return ok && other.errType == c.errType
}
