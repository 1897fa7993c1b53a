// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

// twoTo251 bounds the ECDSA scalar inputs: z, r and w in Verify, and z and
// the private key in Sign, must be nonzero and strictly below it.
var twoTo251 = MustUint256FromHex("800000000000000000000000000000000000000000000000000000000000000")

func checkScalarInRange(name string, v Uint256) error {
	if v.IsZero() {
		return makeError(ErrScalarOutOfRange, name+" cannot be zero")
	}
	if v.Cmp(twoTo251) >= 0 {
		return makeError(ErrScalarOutOfRange, name+" is too big")
	}
	return nil
}

// Verify checks an ECDSA-Stark signature (r, w) over message z against a
// full public key Q, where w = s^-1 mod n.
//
// It accepts the signature if (A+B).x or (A-B).x equals r for
// A = [z*w mod n]*G and B = [r*w mod n]*Q, per the "either sign of y"
// convention this curve's x-only verification relies on.
func Verify(cc *CurveConstants, q EcPoint[FieldElement], z, r, w Uint256) (bool, error) {
	if err := checkScalarInRange("z", z); err != nil {
		return false, err
	}
	if err := checkScalarInRange("r", r); err != nil {
		return false, err
	}
	if err := checkScalarInRange("w", w); err != nil {
		return false, err
	}

	zw, err := z.MulMod(w, cc.Order)
	if err != nil {
		return false, err
	}
	rw, err := r.MulMod(w, cc.Order)
	if err != nil {
		return false, err
	}

	a, err := cc.Generator().MultiplyByScalar(zw, cc.Alpha)
	if err != nil {
		return false, err
	}
	b, err := q.MultiplyByScalar(rw, cc.Alpha)
	if err != nil {
		return false, err
	}

	if sum, err := a.Add(b, cc.Alpha); err == nil && sum.X.ToStandardForm().Equal(r) {
		return true, nil
	}
	if diff, err := a.Sub(b, cc.Alpha); err == nil && diff.X.ToStandardForm().Equal(r) {
		return true, nil
	}
	return false, nil
}

// VerifyPartialKey recovers a public key from its x coordinate alone and
// verifies against it, accepting both candidate y values by construction
// (see Verify's "or" branch): the x-only key does not commit to a sign.
func VerifyPartialKey(cc *CurveConstants, qx FieldElement, z, r, w Uint256) (bool, error) {
	q, ok := GetPointFromX(qx, cc.Alpha, cc.Beta)
	if !ok {
		return false, makeError(ErrNotOnCurve, "public key x coordinate does not correspond to a valid point")
	}
	return Verify(cc, q, z, r, w)
}

// Sign produces an ECDSA-Stark signature (r, s) over message z with private
// key priv. It is provided for completeness: message verification, not
// generation, is this package's hard subsystem.
//
// Each nonce k is drawn from the prng supplied by the caller, independent of
// priv and z; while SignWithNonce rejects a nonce as degenerate, Sign draws
// a fresh one and tries again. The signature is therefore only as
// unpredictable as prng: a Prng over a fixed byte stream yields the same
// nonces on every call.
func Sign(cc *CurveConstants, priv Uint256, z Uint256, prng *Prng) (r, s Uint256, err error) {
	if err := checkScalarInRange("z", z); err != nil {
		return Uint256{}, Uint256{}, err
	}
	if err := checkScalarInRange("priv", priv); err != nil {
		return Uint256{}, Uint256{}, err
	}

	for {
		k := prng.RandomScalarModOrder(cc.Order)
		r, s, err = SignWithNonce(cc, priv, z, k)
		if err != nil {
			continue
		}
		return r, s, nil
	}
}

// SignWithNonce produces an ECDSA-Stark signature (r, s) over message z
// with private key priv using the caller-supplied nonce k directly,
// without retrying on a degenerate nonce. It is the seam
// github.com/modchain/starkcurve/starkffi's Sign calls into, matching
// original_source/src/starkware/crypto/ffi/ecdsa.cc's Sign entry point,
// which likewise takes k as an explicit argument rather than drawing it
// from a Prng itself.
func SignWithNonce(cc *CurveConstants, priv, z, k Uint256) (r, s Uint256, err error) {
	point, err := cc.Generator().MultiplyByScalar(k, cc.Alpha)
	if err != nil {
		return Uint256{}, Uint256{}, err
	}
	r = point.X.ToStandardForm()
	if r.IsZero() || r.Cmp(twoTo251) >= 0 {
		return Uint256{}, Uint256{}, makeError(ErrScalarOutOfRange, "nonce produced a degenerate r")
	}

	kInv, err := k.InvModPrime(cc.Order)
	if err != nil {
		return Uint256{}, Uint256{}, err
	}

	privR, err := priv.MulMod(r, cc.Order)
	if err != nil {
		return Uint256{}, Uint256{}, err
	}
	numerator := z.Add(privR)
	if numerator.Cmp(cc.Order) >= 0 {
		numerator = numerator.Sub(cc.Order)
	}
	s, err = numerator.MulMod(kInv, cc.Order)
	if err != nil {
		return Uint256{}, Uint256{}, err
	}
	if s.IsZero() {
		return Uint256{}, Uint256{}, makeError(ErrScalarOutOfRange, "nonce produced a degenerate s")
	}
	return r, s, nil
}
