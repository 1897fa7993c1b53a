// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error, even when the error has been
// wrapped with additional context.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// These constants are used to identify a specific Error.
const (
	// ErrDivideByZero is returned when a BigInt division is attempted with
	// a zero divisor.
	ErrDivideByZero = ErrorKind("ErrDivideByZero")

	// ErrBigIntZeroInverse is returned when InvModPrime is called on a zero
	// BigInt.
	ErrBigIntZeroInverse = ErrorKind("ErrBigIntZeroInverse")

	// ErrZeroInverse is returned when Inverse is called on the zero field
	// element.
	ErrZeroInverse = ErrorKind("ErrZeroInverse")

	// ErrPointAtInfinity is returned by any EcPoint operation that would
	// otherwise need to produce the point at infinity, which this package
	// cannot represent.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrNotOnCurve is returned when partial-key recovery is attempted with
	// an x coordinate that does not correspond to a point on the curve.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrScalarOutOfRange is returned when an ECDSA input (z, r, or w) is
	// zero or is not strictly less than 2^251.
	ErrScalarOutOfRange = ErrorKind("ErrScalarOutOfRange")

	// ErrMessageOutOfRange identifies an order message that does not fit in
	// 251 bits and therefore has no well defined order id. No function in
	// this package returns it; package starkex reports that case with its
	// own ErrMessageOutOfRange sentinel.
	ErrMessageOutOfRange = ErrorKind("ErrMessageOutOfRange")

	// ErrFieldOutOfRange is returned for malformed or oversized hex
	// literals, for Pedersen constants tables and hash inputs whose width
	// does not fit, and by MultiplyByScalar over a field type other than
	// FieldElement. Package starkex reports an order tuple field over its
	// limit with its own ErrFieldOutOfRange sentinel.
	ErrFieldOutOfRange = ErrorKind("ErrFieldOutOfRange")

	// ErrFieldElementOutOfRange is returned by FieldElement.FromBigInt when
	// the supplied integer is not in [0, p).
	ErrFieldElementOutOfRange = ErrorKind("ErrFieldElementOutOfRange")
)

// Error identifies an error related to the STARK curve primitives. It
// carries machine-readable information via the Err field, a stable
// ErrorKind value, as well as a human-readable description via the
// Description field that contains additional details.
//
// The caller can use errors.Is to determine the kind of the error and
// errors.As to obtain the full *Error when more detail is wanted.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library's errors.Is
// function. It returns true if the passed error is an Error that has the
// same error kind as this one, or if it's an ErrorKind that matches this
// error's kind directly.
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e.Err == target.Err
	case ErrorKind:
		return e.Err == target
	}
	return false
}

// Unwrap returns the underlying wrapped error kind so that errors.As can be
// used to retrieve it.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
