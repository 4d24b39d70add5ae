package selection

import (
	"errors"
	"fmt"
)

// Errors for selections violating the standard representation. All of them
// wrap ErrMalformed.
var (
	ErrMalformed     = errors.New("malformed selection")
	ErrUnsorted      = fmt.Errorf("%w: entries not sorted by path", ErrMalformed)
	ErrDuplicate     = fmt.Errorf("%w: duplicate path", ErrMalformed)
	ErrNotPrefixFree = fmt.Errorf("%w: path is prefix of another path", ErrMalformed)
	ErrEmptyPath     = fmt.Errorf("%w: empty path", ErrMalformed)
)
