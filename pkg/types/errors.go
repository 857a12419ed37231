package types

import "errors"

// Record store errors. Callers classify failures with errors.Is; the
// returned errors wrap these sentinels with the path or value involved.
var (
	ErrIO              = errors.New("i/o error")
	ErrNotFound        = errors.New("not found")
	ErrDeserialization = errors.New("malformed record")
	ErrSerialization   = errors.New("cannot encode record")
	ErrInvalidArgument = errors.New("invalid argument")
)
