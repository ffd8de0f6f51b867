package storage

import "errors"

// Errors every CustomerStore implementation reports
var (
	ErrNotFound     = errors.New("customer not found")
	ErrDuplicateKey = errors.New("customer already exists")
)
