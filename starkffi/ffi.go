// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package starkffi exposes the three byte-level entry points
// original_source/src/starkware/crypto/ffi/ecdsa.cc packages for a native
// FFI boundary: GetPublicKey, Verify, and Sign, each operating on fixed
// 32-byte big-endian buffers with no Go-specific types crossing the
// signature. This package is plain exported Go, not cgo: the spec treats
// the actual FFI packaging (the calling convention a C ABI would need) as
// an opaque external concern, so this is the seam such packaging would
// attach to, not the packaging itself.
package starkffi

import "github.com/modchain/starkcurve"

// defaultCurve is the curve these entry points operate over. The C++
// original has no notion of "which curve" — it is compiled against a
// single hard-coded curve — so this package fixes the same choice via
// starkcurve.DefaultCurveConstants rather than accepting one as a
// parameter.
func defaultCurve() *starkcurve.CurveConstants {
	return starkcurve.DefaultCurveConstants()
}

// GetPublicKey derives the x coordinate of the public key for privateKey,
// matching GetPublicKey's extern "C" signature: one 32-byte input, one
// 32-byte output. It returns ok=false instead of throwing, matching the
// original's catch-all-exceptions-return-error-code contract.
func GetPublicKey(privateKey [32]byte) (out [32]byte, ok bool) {
	cc := defaultCurve()
	priv, err := starkcurve.NewPrivateKey(cc, starkcurve.Uint256FromBytes(privateKey))
	if err != nil {
		return out, false
	}
	pub, err := priv.PubKey()
	if err != nil {
		return out, false
	}
	return pub.Point().X.ToStandardForm().Bytes(), true
}

// Verify checks an ECDSA-Stark signature given an x-only public key,
// matching Verify's extern "C" signature exactly: any internal error
// (out-of-range scalar, x not on the curve, bad signature) collapses to a
// plain false return, same as the original's catch (...) { return false; }.
func Verify(starkKey, msgHash, rBytes, wBytes [32]byte) bool {
	cc := defaultCurve()
	qx, err := starkcurve.FromBigInt(starkcurve.Uint256FromBytes(starkKey))
	if err != nil {
		return false
	}
	z := starkcurve.Uint256FromBytes(msgHash)
	r := starkcurve.Uint256FromBytes(rBytes)
	w := starkcurve.Uint256FromBytes(wBytes)
	ok, err := starkcurve.VerifyPartialKey(cc, qx, z, r, w)
	if err != nil {
		return false
	}
	return ok
}

// Sign produces an ECDSA-Stark signature using the caller-supplied nonce
// k, matching Sign's extern "C" signature: three 32-byte inputs (private
// key, message, nonce), two 32-byte outputs (r, s) packed one after the
// other as the original packs them into its 1024-byte out buffer. ok is
// false if the nonce or private key was degenerate, mirroring the
// original's HandleError path.
func Sign(privateKey, message, k [32]byte) (r, s [32]byte, ok bool) {
	cc := defaultCurve()
	priv := starkcurve.Uint256FromBytes(privateKey)
	if _, err := starkcurve.NewPrivateKey(cc, priv); err != nil {
		return r, s, false
	}
	z := starkcurve.Uint256FromBytes(message)
	nonce := starkcurve.Uint256FromBytes(k)

	rOut, sOut, err := starkcurve.SignWithNonce(cc, priv, z, nonce)
	if err != nil {
		return r, s, false
	}
	return rOut.Bytes(), sOut.Bytes(), true
}
