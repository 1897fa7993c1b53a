// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "testing"

func TestRandomUint64StaysInRange(t *testing.T) {
	prng := NewPrng(&deterministicReader{})
	for i := 0; i < 64; i++ {
		v := prng.RandomUint64(10, 20)
		if v < 10 || v >= 20 {
			t.Fatalf("RandomUint64(10, 20) returned %d, out of range", v)
		}
	}
}

func TestRandomUint64PanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an empty range")
		}
	}()
	NewPrng(&deterministicReader{}).RandomUint64(5, 5)
}

func TestRandomScalarModOrderStaysInRange(t *testing.T) {
	// Use an order close to the full 256-bit range: RandomScalarModOrder
	// rejection-samples whole 32-byte draws, so a small order combined with
	// deterministicReader's fixed byte pattern could reject indefinitely.
	order := fieldPrime
	prng := NewPrng(&deterministicReader{})
	for i := 0; i < 16; i++ {
		v := prng.RandomScalarModOrder(order)
		if v.IsZero() || v.Cmp(order) >= 0 {
			t.Fatalf("RandomScalarModOrder returned %s, out of [1, %s)", v, order)
		}
	}
}

func TestRandomBitIsZeroOrOne(t *testing.T) {
	prng := NewPrng(&deterministicReader{})
	for i := 0; i < 16; i++ {
		if b := prng.RandomBit(); b != 0 && b != 1 {
			t.Fatalf("RandomBit returned %d", b)
		}
	}
}

func TestSystemPrngProducesDistinctBytes(t *testing.T) {
	prng := NewSystemPrng()
	a := prng.RandomBytes32()
	b := prng.RandomBytes32()
	if a == b {
		t.Errorf("two draws from the system PRNG should not collide")
	}
}
