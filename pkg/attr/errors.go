package attr

import "github.com/vango-dev/vbind/internal/errors"

// Sentinel errors. Errors returned by this package match them under errors.Is.
var (
	ErrInvalidCount = errors.New("E104")
	ErrInvalidURL   = errors.New("E105")
	ErrInvalidEnum  = errors.New("E106")
	ErrInvalidName  = errors.New("E108")
)
