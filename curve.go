// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "sync"

// CurveConstants is the immutable record of curve parameters this package
// needs to do anything: the linear coefficient Alpha, the constant term
// Beta, the prime group Order, and a sequence of base points KPoints used by
// the Pedersen hash specialization (KPoints[1] is the generator ECDSA
// signs and verifies against).
//
// These values are external inputs to the algorithms in this package, not
// something derived here (see DESIGN.md for where the shipped defaults
// come from and how they were checked). A caller integrating against a
// different deployment of the curve can build its own CurveConstants via
// NewCurveConstants.
type CurveConstants struct {
	Alpha   FieldElement
	Beta    FieldElement
	Order   Uint256
	KPoints []EcPoint[FieldElement]
}

// NewCurveConstants builds a CurveConstants, verifying that KPoints[1] (the
// generator) actually lies on the curve, as this package's callers are
// required to check at startup.
func NewCurveConstants(alpha, beta FieldElement, order Uint256, kPoints []EcPoint[FieldElement]) (*CurveConstants, error) {
	if len(kPoints) < 2 {
		return nil, makeError(ErrNotOnCurve, "KPoints must contain at least a placeholder and a generator")
	}
	generator := kPoints[1]
	if !IsOnCurve(generator, alpha, beta) {
		return nil, makeError(ErrNotOnCurve, "generator does not lie on the curve")
	}
	return &CurveConstants{Alpha: alpha, Beta: beta, Order: order, KPoints: kPoints}, nil
}

// Generator returns the base point ECDSA signs and verifies against.
func (c *CurveConstants) Generator() EcPoint[FieldElement] {
	return c.KPoints[1]
}

var (
	defaultCurveConstants     *CurveConstants
	defaultCurveConstantsOnce sync.Once
)

// DefaultCurveConstants lazily builds and caches the package's default curve
// parameters the first time it is called, following the same sync.Once
// pattern this package uses for every other large precomputed value so that
// programs that never touch the curve (e.g. ones only packing order
// messages) never pay for building it.
func DefaultCurveConstants() *CurveConstants {
	defaultCurveConstantsOnce.Do(func() {
		alpha := One()
		beta := mustFieldElementFromHex("06f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89")
		generator := EcPoint[FieldElement]{
			X: mustFieldElementFromHex("01ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"),
			Y: mustFieldElementFromHex("005668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f"),
		}
		order := MustUint256FromHex("0800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f")

		cc, err := NewCurveConstants(alpha, beta, order, []EcPoint[FieldElement]{{}, generator})
		if err != nil {
			panic("starkcurve: default curve constants do not satisfy the curve equation: " + err.Error())
		}
		defaultCurveConstants = cc
	})
	return defaultCurveConstants
}

// mustFieldElementFromHex parses a hex literal straight into a FieldElement,
// panicking on malformed input or an input out of [0, p) — a programmer
// error for the package-level constants this is used for, not a runtime
// condition.
func mustFieldElementFromHex(s string) FieldElement {
	standard := MustUint256FromHex(s)
	fe, err := FromBigInt(standard)
	if err != nil {
		panic("starkcurve: invalid field constant in source file: " + s)
	}
	return fe
}
