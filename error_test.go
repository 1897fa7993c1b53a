// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrDivideByZero, "ErrDivideByZero"},
		{ErrBigIntZeroInverse, "ErrBigIntZeroInverse"},
		{ErrZeroInverse, "ErrZeroInverse"},
		{ErrPointAtInfinity, "ErrPointAtInfinity"},
		{ErrNotOnCurve, "ErrNotOnCurve"},
		{ErrScalarOutOfRange, "ErrScalarOutOfRange"},
		{ErrMessageOutOfRange, "ErrMessageOutOfRange"},
		{ErrFieldOutOfRange, "ErrFieldOutOfRange"},
		{ErrFieldElementOutOfRange, "ErrFieldElementOutOfRange"},
	}
	for i, test := range tests {
		if got := test.in.Error(); got != test.want {
			t.Errorf("#%d: got: %s want: %s", i, got, test.want)
		}
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{Error{Description: "some error"}, "some error"},
		{Error{Err: ErrDivideByZero, Description: "divisor must not be zero"}, "divisor must not be zero"},
	}
	for i, test := range tests {
		if got := test.in.Error(); got != test.want {
			t.Errorf("#%d: got: %s want: %s", i, got, test.want)
		}
	}
}

func TestErrorKindIsAs(t *testing.T) {
	err := makeError(ErrZeroInverse, "Zero does not have an inverse")

	if !errors.Is(err, ErrZeroInverse) {
		t.Fatalf("errors.Is reported false against the matching ErrorKind")
	}
	if errors.Is(err, ErrDivideByZero) {
		t.Fatalf("errors.Is reported true against a different ErrorKind")
	}

	wrapped := fmt.Errorf("wrapping: %w", err)
	if !errors.Is(wrapped, ErrZeroInverse) {
		t.Fatalf("errors.Is did not see through fmt.Errorf wrapping")
	}

	var target Error
	if !errors.As(wrapped, &target) {
		t.Fatalf("errors.As failed to extract the underlying Error")
	}
	if target.Err != ErrZeroInverse {
		t.Fatalf("errors.As extracted the wrong ErrorKind: %s", target.Err)
	}
}
