package siquant

import (
	"errors"
	"fmt"
)

// Error kinds for classifying engine failures.

// ParseError reports malformed expression syntax. It carries the offending
// token and its rune position within the input expression.
type ParseError struct {
	Expr  string
	Pos   int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("parse %q: %s at position %d: %q", e.Expr, e.Msg, e.Pos, e.Token)
	}
	return fmt.Sprintf("parse %q: %s at position %d", e.Expr, e.Msg, e.Pos)
}

// NewParseError creates a ParseError for the given expression.
func NewParseError(expr string, pos int, token, msg string) error {
	return &ParseError{Expr: expr, Pos: pos, Token: token, Msg: msg}
}

// UnknownIdentifierError reports a syntactically valid symbol or name that
// is absent from a catalog.
type UnknownIdentifierError struct {
	// Kind names the catalog that was consulted: "unit symbol",
	// "unit name", "quantity", "base dimension", "constant".
	Kind string
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}

// NewUnknownIdentifier creates an UnknownIdentifierError.
func NewUnknownIdentifier(kind, name string) error {
	return &UnknownIdentifierError{Kind: kind, Name: name}
}

// DimensionalMismatchError reports an operation whose operand
// dimensionalities are incompatible.
type DimensionalMismatchError struct {
	Op    string
	Left  string
	Right string
}

func (e *DimensionalMismatchError) Error() string {
	if e.Right == "" {
		return fmt.Sprintf("%s requires a dimensionless operand, got %s", e.Op, e.Left)
	}
	return fmt.Sprintf("%s: incompatible dimensionalities %s and %s", e.Op, e.Left, e.Right)
}

// NewDimensionalMismatch creates a DimensionalMismatchError for a binary
// operation.
func NewDimensionalMismatch(op, left, right string) error {
	return &DimensionalMismatchError{Op: op, Left: left, Right: right}
}

// ValidationError reports an exponent that cannot be represented within the
// bounded-denominator invariant.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError reports a numeric operation outside its real domain, such as
// an even root of a negative real value.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return e.Msg
}

// NewDomainError creates a DomainError.
func NewDomainError(format string, args ...any) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsUnknownIdentifier returns true if the error is an UnknownIdentifierError.
func IsUnknownIdentifier(err error) bool {
	var ue *UnknownIdentifierError
	return errors.As(err, &ue)
}

// IsDimensionalMismatch returns true if the error is a DimensionalMismatchError.
func IsDimensionalMismatch(err error) bool {
	var de *DimensionalMismatchError
	return errors.As(err, &de)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDomain returns true if the error is a DomainError.
func IsDomain(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
