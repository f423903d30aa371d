package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned whenever an id resolves to no product, on
// reads, updates and deletes alike.
var ErrNotFound = errors.New("product not found")

// ErrInvalidID is returned when an id is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid product id")

// DuplicateKeyError reports a unique-index conflict, naming the field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already exists. Use a different value.", e.Field)
}

// IsDuplicateKey reports whether err is a unique-index conflict.
func IsDuplicateKey(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
