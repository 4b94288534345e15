package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrProductUnavailable
	ErrSelfContact
	ErrMessageInProgress
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrCredentialExists:   "email or phone already exists",
	ErrInvalidPassword:    "password invalid",
	ErrProductUnavailable: "product is not available",
	ErrSelfContact:        "cannot contact yourself about your own product",
	ErrMessageInProgress:  "an identical message is already being sent",
	ErrForbidden:          "forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrCredentialExists:   http.StatusBadRequest,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrProductUnavailable: http.StatusBadRequest,
	ErrSelfContact:        http.StatusBadRequest,
	ErrMessageInProgress:  http.StatusConflict,
	ErrForbidden:          http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrCredentialExists:   "0005",
	ErrInvalidPassword:    "0006",
	ErrProductUnavailable: "0007",
	ErrSelfContact:        "0008",
	ErrMessageInProgress:  "0009",
	ErrForbidden:          "0010",
}
