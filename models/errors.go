package models

import "errors"

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidBookInput = errors.New("both title and author are required")
	ErrEmptySearch      = errors.New("at least one query parameter is required for search")
)
