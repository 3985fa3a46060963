package ini

import "errors"

var (
	// ErrKeyNotFound is returned by GetValue when no key with the given
	// name exists in the section.
	ErrKeyNotFound = errors.New("ini: key not found")

	// ErrEmptyArgument is returned by mutation calls when a name or value
	// is empty. The cache is left untouched.
	ErrEmptyArgument = errors.New("ini: empty name or value")
)
