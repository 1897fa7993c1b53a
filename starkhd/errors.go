// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package starkhd implements BIP32-style hierarchical deterministic key
// derivation over the STARK curve: a seed or an existing extended key can
// derive an arbitrarily deep tree of child private or public keys via
// HMAC-SHA512, reduced modulo the STARK curve order instead of secp256k1's.
package starkhd

import "errors"

var (
	ErrInvalidSeed                = errors.New("seed is invalid")
	ErrDerivingHardenedFromPublic = errors.New("cannot derive a hardened key from an extended public key")
	ErrMaxDepthExceeded           = errors.New("max depth exceeded")
	ErrInvalidKey                 = errors.New("key is invalid")
	ErrInvalidKeyLen              = errors.New("serialized extended key length is invalid")
	ErrBadChecksum                = errors.New("bad extended key checksum")
)
