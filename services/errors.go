package services

import "errors"

// Error taxonomy shared by every service. Handlers map these onto HTTP
// statuses in one place; services wrap them with fmt.Errorf("%w: ...")
// to carry detail.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)
