package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrAdminDisabled           = errors.New("admin access is not configured")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")

	ErrUnknownUser     = errors.New("no user found with given id")
	ErrMalformedEntry  = errors.New("stored fuel entry is malformed")
	ErrReportFailed    = errors.New("report could not be built")
	ErrPasswordHashing = errors.New("password processing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
