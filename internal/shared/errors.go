package shared

import "errors"

var (

	// common errors
	ErrorNotFound = errors.New("not found")

	// auth-specific errors
	ErrorInvalidToken            = errors.New("invalid token")
	ErrorInvalidAuthheaderFormat = errors.New("invalid auth header format")
	ErrorNoUserID                = errors.New("no user id")
	ErrorUsernameAlreadyExists   = errors.New("username already registered")
	ErrorEmailAlreadyExists      = errors.New("email already registered")
	ErrorInvalidLoginPassword    = errors.New("incorrect username or password")

	// entry-specific errors
	ErrorEntryDoesNotExist = errors.New("entry does not exist")
	ErrorUnknownMethod     = errors.New("unknown consumption method")
	ErrorMissingPuffs      = errors.New("number of puffs is required")
	ErrorMissingAmount     = errors.New("amount in mg is required")

	// client session errors
	ErrorNotAuthenticated = errors.New("not authenticated")
)
