package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")
	ErrHashFailure   = errors.New("password hashing failed")
	ErrTokenFailure  = errors.New("token generation failed")

	ErrMissingCredentials = errors.New("email and password required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrAccountNotFound    = errors.New("account not found")

	ErrInvalidToken = errors.New("invalid token")

	ErrOrderDataMissing   = errors.New("missing order data")
	ErrOrderTotalMismatch = errors.New("total price does not match items")

	ErrInvalidProductData = errors.New("invalid product data")
	ErrProductNotFound    = errors.New("product not found")

	ErrNoFileUploaded      = errors.New("no file uploaded")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("only image files are allowed")
	ErrStorageFailure      = errors.New("file storage failure")
)
