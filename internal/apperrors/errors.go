package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the operation is not valid for the resource's current
// state, e.g. settling a bill that is already paid.
var ErrConflict = errors.New("conflicting state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
