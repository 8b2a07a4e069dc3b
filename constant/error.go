package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrUserExists
	ErrAdminExists
	ErrAlreadyExists
	ErrInvalidCredentials
	ErrInvalidRefreshToken
	ErrAdminNotFound
	ErrTooManyAttempts
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "Server error",
	ErrNotFound:            "Data not found",
	ErrInvalidRequest:      "Invalid request",
	ErrUnauthorize:         "Unauthorized",
	ErrForbidden:           "Access denied",
	ErrUserExists:          "User already exists",
	ErrAdminExists:         "Admin already exists",
	ErrAlreadyExists:       "Already exists",
	ErrInvalidCredentials:  "Invalid credentials",
	ErrInvalidRefreshToken: "Invalid refresh token",
	ErrAdminNotFound:       "Admin not found",
	ErrTooManyAttempts:     "Too many login attempts",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrUserExists:          http.StatusBadRequest,
	ErrAdminExists:         http.StatusBadRequest,
	ErrAlreadyExists:       http.StatusBadRequest,
	ErrInvalidCredentials:  http.StatusBadRequest,
	ErrInvalidRefreshToken: http.StatusForbidden,
	ErrAdminNotFound:       http.StatusNotFound,
	ErrTooManyAttempts:     http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrForbidden:           "0005",
	ErrUserExists:          "0006",
	ErrAdminExists:         "0007",
	ErrAlreadyExists:       "0008",
	ErrInvalidCredentials:  "0009",
	ErrInvalidRefreshToken: "0010",
	ErrAdminNotFound:       "0011",
	ErrTooManyAttempts:     "0012",
}
