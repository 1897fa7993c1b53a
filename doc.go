// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package starkcurve implements the STARK-friendly elliptic curve used by the
StarkEx/StarkNet family of protocols in pure Go.

This package provides the arithmetic core needed to produce and verify
signed StarkEx orders: a fixed-width unsigned big-integer layer, a prime
field of F_p for p = 2^251 + 17*2^192 + 1 in Montgomery form, a
fraction-field wrapper that defers inversions during curve arithmetic, and
the short Weierstrass group law over both of those fields.

On top of that core, it exposes ECDSA-style signature verification (both
full and x-only public key) using the (r, w) convention from the StarkEx
reference implementation, where w = s^-1 mod n.

An overview of the features provided by this package:

  - Uint256/Uint512 fixed-limb unsigned arithmetic, including widening
    multiplication, long division, and Fermat-based modular inverse
  - FieldElement: the STARK prime field in Montgomery form
  - FractionElement[F]: lazy fractions over a field, used to fuse the many
    inversions of a scalar multiplication into one
  - EcPoint[F]: the curve group law (doubling, addition, scalar
    multiplication, negation, and X-coordinate recovery) over any field
    satisfying the Field[F] constraint
  - Verify / VerifyPartialKey: ECDSA verification against a full or x-only
    public key
  - Sign: signature generation with a nonce drawn from a caller-supplied
    Prng, for completeness

Sub-packages provide the Pedersen hash specialization used to build
canonical StarkEx order messages (pedersen), order-tuple packing and
order-id extraction (starkex), hierarchical wallet key derivation
(starkhd), and byte-level entry points shaped like the reference
implementation's FFI boundary (starkffi).

The point at infinity is never represented as a value of EcPoint[F]; any
operation that would produce it fails with an error instead, as the curve
this package targets has no meaningful use for it in verification.
*/
package starkcurve
