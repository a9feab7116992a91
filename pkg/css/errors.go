package css

import "github.com/vango-dev/vbind/internal/errors"

// Sentinel errors. Errors returned by this package match them under errors.Is.
var (
	ErrInvalidLength = errors.New("E101")
	ErrInvalidColor  = errors.New("E102")
	ErrOutOfRange    = errors.New("E103")
	ErrInvalidEnum   = errors.New("E106")
	ErrShorthand     = errors.New("E107")
)
