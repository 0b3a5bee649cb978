package errors

import (
	"errors"
	"fmt"
)

// Collection is a thread-unsafe accumulator for errors coming out of several
// independent operations (for example, one per sequence in a batch).
// The zero value is ready to use.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf appends err wrapped with a formatted prefix. Nil errors are ignored.
func (c *Collection) Addf(err error, format string, args ...any) {
	if err == nil {
		return
	}

	c.errors = append(c.errors, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
}

// Clear resets the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if at least one error was added.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the lone error when there is
// exactly one, and an errors.Join of everything otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
