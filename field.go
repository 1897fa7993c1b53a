// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "math/bits"

// Field is the capability set shared by every ring this package does
// arithmetic over: the prime field itself and the fraction-field wrapper
// built on top of it. EcPoint and FractionElement are generic over any type
// satisfying this constraint; at runtime only FieldElement and
// FractionElement[FieldElement] are ever instantiated, matching the source
// design this package follows (see doc.go).
//
// Zero and One are ordinary instance methods rather than free functions
// only because Go generics have no notion of a static constructor: calling
// f.Zero() on any value f of a Field[F] type must return that type's
// additive identity regardless of what f itself holds.
type Field[F any] interface {
	Add(F) F
	Sub(F) F
	Mul(F) F
	Neg() F
	Inverse() (F, error)
	IsZero() bool
	Equal(F) bool
	Zero() F
	One() F
}

// fieldPrime is p = 2^251 + 17*2^192 + 1, the STARK field modulus.
var fieldPrime = MustUint256FromHex("0800000000000011000000000000000000000000000000000000000000000001")

// fieldR2ModP is R^2 mod p with R = 2^256, the constant used to carry a
// standard-form integer into Montgomery form.
var fieldR2ModP = MustUint256FromHex("07ffd4ab5e008810ffffffffff6f800000000001330ffffffffffd737e000401")

// fieldN0Inv is -p^-1 mod 2^64, the Montgomery reduction constant. It is
// derived at package init time via Hensel lifting rather than hard-coded,
// since it is a function of fieldPrime and there is no reason to duplicate
// that derivation as a second magic constant.
var fieldN0Inv = montgomeryN0Inv(fieldPrime.Limb(0))

// montgomeryN0Inv computes -p0^-1 mod 2^64 for an odd limb p0, via Newton's
// iteration for 2-adic inverses: each iteration doubles the number of
// correct bits, so six iterations starting from one correct bit suffice for
// a 64-bit result.
func montgomeryN0Inv(p0 uint64) uint64 {
	x := p0
	for i := 0; i < 6; i++ {
		x = x * (2 - p0*x)
	}
	return -x
}

// FieldElement represents an element of F_p, p = 2^251 + 17*2^192 + 1,
// stored internally in Montgomery form (v = a*R mod p, R = 2^256). Every
// FieldElement value satisfies v < p; the zero Go value is the field zero.
type FieldElement struct {
	v Uint256
}

// Zero returns the additive identity of F_p.
func Zero() FieldElement { return FieldElement{} }

// One returns the multiplicative identity of F_p.
func One() FieldElement { return FieldElement{v: toMontgomery(One256())} }

// FromUint64 lifts a uint64 into F_p.
func FromUint64(u uint64) FieldElement {
	return FieldElement{v: toMontgomery(Uint256FromUint64(u))}
}

// FromBigInt lifts a standard-form Uint256 into F_p, failing if it is not
// strictly less than p.
func FromBigInt(in Uint256) (FieldElement, error) {
	if in.Cmp(fieldPrime) >= 0 {
		return FieldElement{}, makeError(ErrFieldElementOutOfRange, "value is out of range [0, p)")
	}
	return FieldElement{v: toMontgomery(in)}, nil
}

// ToStandardForm returns the unique Uint256 in [0, p) represented by e.
func (e FieldElement) ToStandardForm() Uint256 {
	return fromMontgomery(e.v)
}

func toMontgomery(standard Uint256) Uint256 {
	return montMul(standard, fieldR2ModP, fieldPrime, fieldN0Inv)
}

func fromMontgomery(mont Uint256) Uint256 {
	return montMul(mont, One256(), fieldPrime, fieldN0Inv)
}

// montMul computes a*b*R^-1 mod p via the CIOS (coarsely integrated
// operand scanning) algorithm, the standard technique for computing a
// Montgomery product without materializing the full double-width product.
func montMul(a, b, p Uint256, n0inv uint64) Uint256 {
	var t [6]uint64 // t[0..3] accumulator limbs, t[4] carry-out limb, t[5] rare overflow guard

	for i := 0; i < 4; i++ {
		// t += a * b[i]
		var carry uint64
		bi := b.Limb(i)
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.Limb(j), bi)
			var c uint64
			lo, c = bits.Add64(lo, t[j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			t[j] = lo
			carry = hi
		}
		var c0 uint64
		t[4], c0 = bits.Add64(t[4], carry, 0)
		t[5] += c0

		// m = t[0] * n0inv mod 2^64, chosen so that t + m*p is a multiple
		// of 2^64 in its lowest limb.
		m := t[0] * n0inv

		// t += m * p
		carry = 0
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(m, p.Limb(j))
			var c uint64
			lo, c = bits.Add64(lo, t[j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			t[j] = lo
			carry = hi
		}
		var c1 uint64
		t[4], c1 = bits.Add64(t[4], carry, 0)
		t[5] += c1

		// Divide by 2^64: drop the now-zero t[0] and shift everything down.
		t[0], t[1], t[2], t[3], t[4] = t[1], t[2], t[3], t[4], t[5]
		t[5] = 0
	}

	result := Uint256FromLimbs([4]uint64{t[0], t[1], t[2], t[3]})
	if t[4] != 0 || result.Cmp(p) >= 0 {
		result = result.Sub(p)
	}
	return result
}

// Add returns e+other with a conditional subtraction of p.
func (e FieldElement) Add(other FieldElement) FieldElement {
	sum, carry := e.v.AddWithCarry(other.v)
	if carry != 0 || sum.Cmp(fieldPrime) >= 0 {
		sum = sum.Sub(fieldPrime)
	}
	return FieldElement{v: sum}
}

// Sub returns e-other with a conditional addition of p before subtracting.
func (e FieldElement) Sub(other FieldElement) FieldElement {
	diff, borrow := e.v.SubWithBorrow(other.v)
	if borrow != 0 {
		diff = diff.Add(fieldPrime)
	}
	return FieldElement{v: diff}
}

// Mul returns the Montgomery product e*other.
func (e FieldElement) Mul(other FieldElement) FieldElement {
	return FieldElement{v: montMul(e.v, other.v, fieldPrime, fieldN0Inv)}
}

// Neg returns p-e for e != 0, and 0 for e == 0.
func (e FieldElement) Neg() FieldElement {
	if e.IsZero() {
		return FieldElement{}
	}
	return FieldElement{v: fieldPrime.Sub(e.v)}
}

// IsZero reports whether e is the field zero.
func (e FieldElement) IsZero() bool { return e.v.IsZero() }

// Equal reports whether e and other represent the same field element.
func (e FieldElement) Equal(other FieldElement) bool { return e.v.Equal(other.v) }

// Zero implements Field[FieldElement]; see the Field doc comment for why
// this is an instance method.
func (FieldElement) Zero() FieldElement { return Zero() }

// One implements Field[FieldElement].
func (FieldElement) One() FieldElement { return One() }

// Inverse computes e^-1 via Fermat's little theorem over the underlying
// BigInt core, failing with "Zero does not have an inverse" for e == 0.
func (e FieldElement) Inverse() (FieldElement, error) {
	if e.IsZero() {
		return FieldElement{}, makeError(ErrZeroInverse, "Zero does not have an inverse")
	}
	standardInv, err := e.ToStandardForm().InvModPrime(fieldPrime)
	if err != nil {
		return FieldElement{}, err
	}
	return FieldElement{v: toMontgomery(standardInv)}, nil
}

// Pow raises e to the power described by exponent via left-to-right
// square-and-multiply, traversing exponent's bits most-significant-first.
// Pow of the zero exponent returns One.
func (e FieldElement) Pow(exponent Uint256) FieldElement {
	result := One()
	for i := 255; i >= 0; i-- {
		result = result.Mul(result)
		if exponent.Bit(i) == 1 {
			result = result.Mul(e)
		}
	}
	return result
}

// PowUint64 is a convenience wrapper around Pow for a u64 exponent.
func (e FieldElement) PowUint64(exponent uint64) FieldElement {
	return e.Pow(Uint256FromUint64(exponent))
}

// PowBits raises e to the power described by a little-endian (least
// significant bit first) sequence of bits, traversing it most-significant
// first. Pow of an empty sequence returns One.
func (e FieldElement) PowBits(littleEndianBits []uint) FieldElement {
	result := One()
	for i := len(littleEndianBits) - 1; i >= 0; i-- {
		result = result.Mul(result)
		if littleEndianBits[i] != 0 {
			result = result.Mul(e)
		}
	}
	return result
}

// RandomElement draws a uniform element of F_p via rejection sampling over
// 32 random bytes supplied by prng.
func RandomElement(prng *Prng) FieldElement {
	for {
		candidate := Uint256FromBytes(prng.RandomBytes32())
		if candidate.Cmp(fieldPrime) < 0 {
			return FieldElement{v: toMontgomery(candidate)}
		}
	}
}

// sqrtFieldElement computes a square root of t in F_p, if one exists. Since
// p-1 = 2^192 * (2^59+17) has a very large power-of-two factor (p is
// congruent to 1, not 3, mod 4 despite the naive description in some STARK
// references), a plain t^((p+1)/4) shortcut does not apply here; this uses
// the general Tonelli-Shanks algorithm and verifies the result by squaring
// before returning it, exactly as the non-existence case must be detected.
func sqrtFieldElement(t FieldElement) (FieldElement, bool) {
	if t.IsZero() {
		return Zero(), true
	}

	legendre := t.Pow(legendreExponent)
	if !legendre.Equal(One()) {
		return FieldElement{}, false
	}

	q := fieldPrime.Sub(One256())
	s := 0
	for q.Bit(0) == 0 {
		q, _, _ = q.Div(Uint256FromUint64(2))
		s++
	}

	if s == 1 {
		r := t.Pow(sqrtExponent)
		if r.Mul(r).Equal(t) {
			return r, true
		}
		return FieldElement{}, false
	}

	z := fieldQuadraticNonResidue()
	m := s
	c := z.Pow(q)
	x, _, _ := q.Add(One256()).Div(Uint256FromUint64(2))
	r := t.Pow(x)
	tt := t.Pow(q)

	for {
		if tt.Equal(One()) {
			if r.Mul(r).Equal(t) {
				return r, true
			}
			return FieldElement{}, false
		}
		i := 0
		tmp := tt
		for !tmp.Equal(One()) {
			tmp = tmp.Mul(tmp)
			i++
			if i >= m {
				return FieldElement{}, false
			}
		}
		shift := Uint256FromUint64(1)
		for k := 0; k < m-i-1; k++ {
			shift, _ = shift.AddWithCarry(shift)
		}
		b := c.Pow(shift)
		m = i
		c = b.Mul(b)
		tt = tt.Mul(c)
		r = r.Mul(b)
	}
}

// legendreExponent is (p-1)/2, used for the Euler-criterion quadratic
// residue test.
var legendreExponent = func() Uint256 {
	q, _, _ := fieldPrime.Sub(One256()).Div(Uint256FromUint64(2))
	return q
}()

// sqrtExponent is (p+1)/4, only used in the s==1 fast path (unreachable for
// the concrete STARK prime, kept for any field swapped in with s==1).
var sqrtExponent = func() Uint256 {
	q, _, _ := fieldPrime.Add(One256()).Div(Uint256FromUint64(4))
	return q
}()

// fieldQuadraticNonResidue returns the smallest positive integer that is a
// quadratic non-residue mod p, used as the fixed generator in
// Tonelli-Shanks. For the STARK prime this is 3.
func fieldQuadraticNonResidue() FieldElement {
	negOne := One().Neg()
	for k := uint64(2); ; k++ {
		candidate := FromUint64(k)
		if candidate.Pow(legendreExponent).Equal(negOne) {
			return candidate
		}
	}
}
