// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
	"strconv"
	"strings"
)

// Uint256 is a fixed-width unsigned integer composed of four 64-bit limbs,
// little-endian (n[0] is the least significant limb). All bit patterns are
// legal; arithmetic wraps modulo 2^256 unless documented otherwise. This is
// the width-4 specialization of the BigInt<N> primitive: it carries the
// field prime p and the curve order n, both of which fit in 256 bits.
type Uint256 struct {
	n [4]uint64
}

// Uint512 is the width-8 specialization of BigInt<N>, used only as the
// destination of a widening Uint256 multiplication and as the dividend when
// reducing such a product modulo a Uint256.
type Uint512 struct {
	n [8]uint64
}

// Zero256 returns the additive identity.
func Zero256() Uint256 { return Uint256{} }

// One256 returns the multiplicative identity.
func One256() Uint256 { return Uint256{n: [4]uint64{1, 0, 0, 0}} }

// Uint256FromUint64 zero-extends a uint64 into limb 0.
func Uint256FromUint64(v uint64) Uint256 {
	return Uint256{n: [4]uint64{v, 0, 0, 0}}
}

// Uint256FromLimbs builds a Uint256 from explicit limbs in little-endian
// order (limbs[0] is least significant).
func Uint256FromLimbs(limbs [4]uint64) Uint256 {
	return Uint256{n: limbs}
}

// Uint256FromHex parses a hexadecimal literal (with or without a leading
// "0x") into the smallest Uint256 that holds it, left-padding with zero
// nibbles. It fails if the literal does not fit in 256 bits.
func Uint256FromHex(s string) (Uint256, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s) == 0 {
		return Uint256{}, makeError(ErrFieldOutOfRange, "hex literal is empty")
	}
	if len(s) > 64 {
		return Uint256{}, makeError(ErrFieldOutOfRange, "hex literal does not fit in 256 bits")
	}
	padded := strings.Repeat("0", 64-len(s)) + s
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		chunk := padded[i*16 : (i+1)*16]
		v, err := strconv.ParseUint(chunk, 16, 64)
		if err != nil {
			return Uint256{}, makeError(ErrFieldOutOfRange, "invalid hex literal: "+err.Error())
		}
		limbs[3-i] = v
	}
	return Uint256{n: limbs}, nil
}

// MustUint256FromHex is Uint256FromHex but panics on error. It is only meant
// for hard-coded source constants, matching the teacher's fromHex helper.
func MustUint256FromHex(s string) Uint256 {
	v, err := Uint256FromHex(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return v
}

// Bytes serializes the value as 32 bytes, big-endian.
func (a Uint256) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(out[i*8:], a.n[3-i])
	}
	return out
}

// Uint256FromBytes deserializes 32 big-endian bytes into a Uint256.
func Uint256FromBytes(b [32]byte) Uint256 {
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		limbs[3-i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return Uint256{n: limbs}
}

// String renders the value as a 0x-prefixed, zero-padded hex literal.
func (a Uint256) String() string {
	b := a.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// Limb returns limb i (0 = least significant).
func (a Uint256) Limb(i int) uint64 { return a.n[i] }

// IsZero reports whether every limb is zero.
func (a Uint256) IsZero() bool {
	return a.n[0] == 0 && a.n[1] == 0 && a.n[2] == 0 && a.n[3] == 0
}

// Equal reports bit-for-bit equality.
func (a Uint256) Equal(b Uint256) bool { return a.n == b.n }

// Cmp compares a and b lexicographically from the most to least significant
// limb, returning -1, 0, or 1.
func (a Uint256) Cmp(b Uint256) int {
	for i := 3; i >= 0; i-- {
		if a.n[i] != b.n[i] {
			if a.n[i] > b.n[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Bit returns bit i (0 = least significant bit) as 0 or 1.
func (a Uint256) Bit(i int) uint {
	return uint((a.n[i/64] >> uint(i%64)) & 1)
}

// NumLeadingZeros counts the most-significant zero bits; it returns 256 for
// the zero value.
func (a Uint256) NumLeadingZeros() int {
	for i := 3; i >= 0; i-- {
		if a.n[i] != 0 {
			return (3-i)*64 + bits.LeadingZeros64(a.n[i])
		}
	}
	return 256
}

// AddWithCarry adds a and b modulo 2^256 and additionally returns the final
// carry bit that was discarded.
func (a Uint256) AddWithCarry(b Uint256) (Uint256, uint64) {
	var out [4]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		out[i], carry = bits.Add64(a.n[i], b.n[i], carry)
	}
	return Uint256{n: out}, carry
}

// Add adds a and b, wrapping modulo 2^256.
func (a Uint256) Add(b Uint256) Uint256 {
	r, _ := a.AddWithCarry(b)
	return r
}

// SubWithBorrow subtracts b from a modulo 2^256, additionally returning the
// final borrow bit.
func (a Uint256) SubWithBorrow(b Uint256) (Uint256, uint64) {
	var out [4]uint64
	var borrow uint64
	for i := 0; i < 4; i++ {
		out[i], borrow = bits.Sub64(a.n[i], b.n[i], borrow)
	}
	return Uint256{n: out}, borrow
}

// Sub subtracts b from a, wrapping modulo 2^256 (two's complement) on
// underflow.
func (a Uint256) Sub(b Uint256) Uint256 {
	r, _ := a.SubWithBorrow(b)
	return r
}

// ToUint512 zero-extends a into the doubled width.
func (a Uint256) ToUint512() Uint512 {
	var out [8]uint64
	copy(out[:4], a.n[:])
	return Uint512{n: out}
}

// Mul performs the widening multiplication Uint256 x Uint256 -> Uint512
// using schoolbook limb products and a 128-bit intermediate per product, so
// no truncation ever occurs.
func (a Uint256) Mul(b Uint256) Uint512 {
	var res [8]uint64
	for i := 0; i < 4; i++ {
		if b.n[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.n[j], b.n[i])
			var c uint64
			lo, c = bits.Add64(lo, res[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			res[i+j] = lo
			carry = hi
		}
		k := i + 4
		for carry != 0 {
			var c uint64
			res[k], c = bits.Add64(res[k], carry, 0)
			carry = c
			k++
		}
	}
	return Uint512{n: res}
}

// Div performs long division, returning the unique (quotient, remainder)
// pair satisfying quotient*divisor + remainder == a and remainder < divisor.
// It fails if the divisor is zero.
func (a Uint256) Div(divisor Uint256) (quotient, remainder Uint256, err error) {
	if divisor.IsZero() {
		return Uint256{}, Uint256{}, makeError(ErrDivideByZero, "divisor must not be zero")
	}
	qLimbs, rLimbs := divLimbs(a.n[:], divisor.n[:])
	copy(quotient.n[:], qLimbs)
	copy(remainder.n[:], rLimbs)
	return quotient, remainder, nil
}

// MulMod computes (a*b) mod m via widening multiplication followed by
// division by m (zero-extended to the product's width). The result width
// equals the input width.
func (a Uint256) MulMod(b, m Uint256) (Uint256, error) {
	if m.IsZero() {
		return Uint256{}, makeError(ErrDivideByZero, "modulus must not be zero")
	}
	wide := a.Mul(b)
	_, remainder, err := wide.Div(m.ToUint512())
	if err != nil {
		return Uint256{}, err
	}
	return remainder.Lo256(), nil
}

// InvModPrime computes a^-1 mod p via Fermat's little theorem
// (a^(p-2) mod p), using left-to-right square-and-multiply over the bits of
// p-2. It fails with "Inverse of 0" when a is zero.
func (a Uint256) InvModPrime(p Uint256) (Uint256, error) {
	if a.IsZero() {
		return Uint256{}, makeError(ErrBigIntZeroInverse, "Inverse of 0")
	}
	exponent := p.Sub(Uint256FromUint64(2))
	result := One256()
	for i := 255; i >= 0; i-- {
		var err error
		result, err = result.MulMod(result, p)
		if err != nil {
			return Uint256{}, err
		}
		if exponent.Bit(i) == 1 {
			result, err = result.MulMod(a, p)
			if err != nil {
				return Uint256{}, err
			}
		}
	}
	return result, nil
}

// --- Uint512 ---

// IsZero reports whether every limb is zero.
func (a Uint512) IsZero() bool {
	for _, l := range a.n {
		if l != 0 {
			return false
		}
	}
	return true
}

// Cmp compares a and b lexicographically from the most to least significant
// limb.
func (a Uint512) Cmp(b Uint512) int {
	for i := 7; i >= 0; i-- {
		if a.n[i] != b.n[i] {
			if a.n[i] > b.n[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Lo256 truncates to the low 256 bits.
func (a Uint512) Lo256() Uint256 {
	var out [4]uint64
	copy(out[:], a.n[:4])
	return Uint256{n: out}
}

// Div performs equal-width long division, identical in contract to
// Uint256.Div but operating over 512-bit operands.
func (a Uint512) Div(divisor Uint512) (quotient, remainder Uint512, err error) {
	if divisor.IsZero() {
		return Uint512{}, Uint512{}, makeError(ErrDivideByZero, "divisor must not be zero")
	}
	qLimbs, rLimbs := divLimbs(a.n[:], divisor.n[:])
	copy(quotient.n[:], qLimbs)
	copy(remainder.n[:], rLimbs)
	return quotient, remainder, nil
}

// --- shared limb-slice division helpers ---
//
// divLimbs implements restoring binary long division over equal-length,
// little-endian limb slices. It shifts the dividend's bits one at a time
// (most significant first) into a running remainder that is kept one limb
// wider than the divisor so that the transient "2*r+bit" value can never
// overflow the scratch space.

func divLimbs(a, b []uint64) (q, r []uint64) {
	n := len(a)
	q = make([]uint64, n)
	rWide := make([]uint64, n+1)
	bWide := make([]uint64, n+1)
	copy(bWide, b)

	totalBits := n * 64
	for i := totalBits - 1; i >= 0; i-- {
		rWide = shlOneLimbs(rWide)
		if bitAtLimbs(a, i) == 1 {
			rWide[0] |= 1
		}
		if cmpLimbs(rWide, bWide) >= 0 {
			rWide = subLimbs(rWide, bWide)
			setBitLimbs(q, i)
		}
	}
	return q, rWide[:n]
}

func shlOneLimbs(a []uint64) []uint64 {
	out := make([]uint64, len(a))
	var carry uint64
	for i := 0; i < len(a); i++ {
		out[i] = (a[i] << 1) | carry
		carry = a[i] >> 63
	}
	return out
}

func bitAtLimbs(a []uint64, i int) uint64 {
	limb := i / 64
	if limb >= len(a) {
		return 0
	}
	return (a[limb] >> uint(i%64)) & 1
}

func setBitLimbs(a []uint64, i int) {
	a[i/64] |= 1 << uint(i%64)
}

func cmpLimbs(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func subLimbs(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	var borrow uint64
	for i := 0; i < len(a); i++ {
		out[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return out
}
