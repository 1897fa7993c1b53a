// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"errors"
	"testing"
)

func TestFractionToBaseFieldElement(t *testing.T) {
	num := FromUint64(10)
	den := FromUint64(4)
	frac, err := NewFractionPair(num, den)
	if err != nil {
		t.Fatalf("NewFractionPair: %v", err)
	}
	got, err := frac.ToBaseFieldElement()
	if err != nil {
		t.Fatalf("ToBaseFieldElement: %v", err)
	}
	denInv, err := den.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	want := num.Mul(denInv)
	if !got.Equal(want) {
		t.Errorf("10/4: got %s, want %s", got.ToStandardForm(), want.ToStandardForm())
	}
}

func TestFractionArithmeticMatchesBaseField(t *testing.T) {
	a := FromUint64(7)
	b := FromUint64(11)
	fa := NewFraction[FieldElement](a)
	fb := NewFraction[FieldElement](b)

	sum, err := fa.Add(fb).ToBaseFieldElement()
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if want := a.Add(b); !sum.Equal(want) {
		t.Errorf("fraction sum: got %s, want %s", sum.ToStandardForm(), want.ToStandardForm())
	}

	prod, err := fa.Mul(fb).ToBaseFieldElement()
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if want := a.Mul(b); !prod.Equal(want) {
		t.Errorf("fraction product: got %s, want %s", prod.ToStandardForm(), want.ToStandardForm())
	}

	diff, err := fa.Sub(fb).ToBaseFieldElement()
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if want := a.Sub(b); !diff.Equal(want) {
		t.Errorf("fraction difference: got %s, want %s", diff.ToStandardForm(), want.ToStandardForm())
	}
}

func TestFractionInverse(t *testing.T) {
	a := FromUint64(7)
	frac := NewFraction[FieldElement](a)
	inv, err := frac.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	product, err := frac.Mul(inv).ToBaseFieldElement()
	if err != nil {
		t.Fatalf("ToBaseFieldElement: %v", err)
	}
	if !product.Equal(One()) {
		t.Errorf("frac * frac^-1 should be one, got %s", product.ToStandardForm())
	}
}

func TestFractionZeroDenominatorRejected(t *testing.T) {
	if _, err := NewFractionPair(FromUint64(1), Zero()); !errors.Is(err, ErrZeroInverse) {
		t.Errorf("got %v, want ErrZeroInverse", err)
	}
}

func TestFractionZeroNumeratorInverseFails(t *testing.T) {
	frac := NewFraction[FieldElement](Zero())
	if _, err := frac.Inverse(); !errors.Is(err, ErrZeroInverse) {
		t.Errorf("got %v, want ErrZeroInverse", err)
	}
}
