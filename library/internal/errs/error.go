package errs

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNoCopies     = errors.New("no available copies for this book")
	ErrBadReference = errors.New("invalid or still referenced id")
	ErrInvalidData  = errors.New("invalid data")
)
