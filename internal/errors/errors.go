package errors

import "errors"

var (
	ErrNoInput                = errors.New("no input available")
	ErrEmptyURL               = errors.New("url is required")
	ErrEmptyFileName          = errors.New("cannot derive file name from url")
	ErrDestinationUnavailable = errors.New("destination directory unavailable")
)
