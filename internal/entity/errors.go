package entity

import "errors"

// Domain errors surfaced by dictionary lookups.
var (
	ErrEmptyWord         = errors.New("empty word")
	ErrWordNotFound      = errors.New("word not found")
	ErrMalformedResponse = errors.New("malformed dictionary response")
)
