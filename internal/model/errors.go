package model

import "errors"

// Error taxonomy shared by every layer. Components wrap these with fmt.Errorf("%w: ...")
// and only the transport layer turns them into user-visible responses.
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("please sign in")
	ErrStore      = errors.New("store error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)
