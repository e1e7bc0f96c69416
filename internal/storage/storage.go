package storage

import "errors"

var (
	ErrNotFound = errors.New("row not found")
)
