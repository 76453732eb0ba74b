package awscred

import (
	"errors"
	"fmt"
)

// ErrInvalidSectionHeader means a section header had an empty profile name, like "[]".
var ErrInvalidSectionHeader = errors.New("invalid section header")

// ErrKeyOutsideSection means a key-value pair appeared before any [profile] section.
var ErrKeyOutsideSection = errors.New("key-value pair outside a profile section")

// ErrMalformedLine is any line that is not blank, a comment, a section header, or an assignment.
var ErrMalformedLine = errors.New("malformed line")

// ErrInvalidValue means a setter was given a profile name, key, or value the
// file format cannot represent.
var ErrInvalidValue = errors.New("invalid profile name, key, or value")

// ErrNoPath means Write was called without a known credentials file path.
var ErrNoPath = errors.New("no credentials file path set")

// ErrIncompleteCredential means a converted credential was missing a required field.
var ErrIncompleteCredential = errors.New("incomplete credential")

// ParseError reports where in the input parsing stopped. It wraps one of the
// parse error kinds, so errors.Is can match ErrInvalidSectionHeader,
// ErrKeyOutsideSection, or ErrMalformedLine.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
