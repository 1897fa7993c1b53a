// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

// EcPoint is an affine point (X, Y) on a short Weierstrass curve
// y^2 = x^3 + alpha*x + beta over a field F satisfying Field[F]. It is
// generic so that the same group-law code serves both the base prime field
// and FractionElement[F] during scalar multiplication.
//
// There is no representable point at infinity: any operation that would
// need to produce it returns ErrPointAtInfinity instead.
type EcPoint[F Field[F]] struct {
	X F
	Y F
}

// Double returns 2*p using alpha, the curve's linear coefficient.
func (p EcPoint[F]) Double(alpha F) (EcPoint[F], error) {
	if p.Y.IsZero() {
		return EcPoint[F]{}, makeError(ErrPointAtInfinity, "zero element")
	}
	xx := p.X.Mul(p.X)
	threeXX := xx.Add(xx).Add(xx)
	twoY := p.Y.Add(p.Y)
	twoYInv, err := twoY.Inverse()
	if err != nil {
		return EcPoint[F]{}, err
	}
	m := threeXX.Add(alpha).Mul(twoYInv)
	twoX := p.X.Add(p.X)
	xPrime := m.Mul(m).Sub(twoX)
	yPrime := m.Mul(p.X.Sub(xPrime)).Sub(p.Y)
	return EcPoint[F]{X: xPrime, Y: yPrime}, nil
}

// Add returns p+q using alpha, which is only needed when p==q and the call
// is routed to Double.
func (p EcPoint[F]) Add(q EcPoint[F], alpha F) (EcPoint[F], error) {
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.Double(alpha)
		}
		return EcPoint[F]{}, makeError(ErrPointAtInfinity, "zero element")
	}
	num := q.Y.Sub(p.Y)
	den := q.X.Sub(p.X)
	denInv, err := den.Inverse()
	if err != nil {
		return EcPoint[F]{}, err
	}
	m := num.Mul(denInv)
	xPrime := m.Mul(m).Sub(p.X).Sub(q.X)
	yPrime := m.Mul(p.X.Sub(xPrime)).Sub(p.Y)
	return EcPoint[F]{X: xPrime, Y: yPrime}, nil
}

// Negate returns the point with Y negated.
func (p EcPoint[F]) Negate() EcPoint[F] {
	return EcPoint[F]{X: p.X, Y: p.Y.Neg()}
}

// Sub returns p-q.
func (p EcPoint[F]) Sub(q EcPoint[F], alpha F) (EcPoint[F], error) {
	return p.Add(q.Negate(), alpha)
}

// Equal reports whether p and q are the same affine point.
func (p EcPoint[F]) Equal(q EcPoint[F]) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// MultiplyByScalar computes k*p via a least-significant-bit-first
// double-and-add loop, lifting p into FractionElement[F] for the duration
// of the loop so that the many inversions double-and-add would otherwise
// need collapse into the single inversion ToBaseFieldElement performs at
// the end. Fails with ErrPointAtInfinity if k is zero or if the scalar
// multiple happens to be the point at infinity (e.g. k == curve order).
// Only EcPoint[FieldElement] supports it; for any other F it returns an
// ErrFieldOutOfRange error.
func (p EcPoint[F]) MultiplyByScalar(k Uint256, alpha F) (EcPoint[F], error) {
	if k.IsZero() {
		return EcPoint[F]{}, makeError(ErrPointAtInfinity, "zero element")
	}

	baseP, ok := any(p).(EcPoint[FieldElement])
	if !ok {
		return EcPoint[F]{}, makeError(ErrFieldOutOfRange, "scalar multiplication is only defined over FieldElement")
	}
	fracAlpha := NewFraction[FieldElement](any(alpha).(FieldElement))
	base := ConvertPointToFraction(baseP)

	var accumulator EcPoint[FractionElement[FieldElement]]
	haveAccumulator := false

	bitLen := 256 - k.NumLeadingZeros()
	for i := 0; i < bitLen; i++ {
		if k.Bit(i) == 1 {
			if !haveAccumulator {
				accumulator = base
				haveAccumulator = true
			} else {
				sum, err := accumulator.Add(base, fracAlpha)
				if err != nil {
					return EcPoint[F]{}, err
				}
				accumulator = sum
			}
		}
		if i != bitLen-1 {
			doubled, err := base.Double(fracAlpha)
			if err != nil {
				return EcPoint[F]{}, err
			}
			base = doubled
		}
	}

	result, err := ConvertPointToBase(accumulator)
	if err != nil {
		return EcPoint[F]{}, err
	}
	return any(result).(EcPoint[F]), nil
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + alpha*x + beta.
func IsOnCurve[F Field[F]](p EcPoint[F], alpha, beta F) bool {
	lhs := p.Y.Mul(p.Y)
	rhs := p.X.Mul(p.X).Mul(p.X).Add(alpha.Mul(p.X)).Add(beta)
	return lhs.Equal(rhs)
}

// GetPointFromX recovers a point on the curve with the given X coordinate,
// choosing whichever of the two square roots of X^3+alpha*X+beta the
// underlying Tonelli-Shanks routine returns. ok is false if X does not
// correspond to a point on the curve.
func GetPointFromX(x, alpha, beta FieldElement) (point EcPoint[FieldElement], ok bool) {
	t := x.Mul(x).Mul(x).Add(alpha.Mul(x)).Add(beta)
	y, ok := sqrtFieldElement(t)
	if !ok {
		return EcPoint[FieldElement]{}, false
	}
	return EcPoint[FieldElement]{X: x, Y: y}, true
}

// ConvertPointToFraction lifts a base-field point into FractionElement[F]
// as num/1 in each coordinate.
func ConvertPointToFraction(p EcPoint[FieldElement]) EcPoint[FractionElement[FieldElement]] {
	return EcPoint[FractionElement[FieldElement]]{
		X: NewFraction[FieldElement](p.X),
		Y: NewFraction[FieldElement](p.Y),
	}
}

// ConvertPointToBase projects a FractionElement[FieldElement] point back to
// the base field, performing one inversion per coordinate.
func ConvertPointToBase(p EcPoint[FractionElement[FieldElement]]) (EcPoint[FieldElement], error) {
	x, err := p.X.ToBaseFieldElement()
	if err != nil {
		return EcPoint[FieldElement]{}, err
	}
	y, err := p.Y.ToBaseFieldElement()
	if err != nil {
		return EcPoint[FieldElement]{}, err
	}
	return EcPoint[FieldElement]{X: x, Y: y}, nil
}

// Random draws a uniformly random point on y^2 = x^3 + alpha*x + beta by
// rejection sampling over X and choosing a uniformly random sign for Y.
func Random(alpha, beta FieldElement, prng *Prng) EcPoint[FieldElement] {
	for {
		x := RandomElement(prng)
		p, ok := GetPointFromX(x, alpha, beta)
		if !ok {
			continue
		}
		if prng.RandomBit() == 1 {
			p = p.Negate()
		}
		return p
	}
}
