// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkhd

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/modchain/starkcurve"
)

// hmacCKD returns (IL, IR) = HMAC-SHA512(key=salt, data=seed), split into
// the 32-byte key material and 32-byte chain code BIP32 calls I_L and I_R.
// It reports ErrInvalidKey if parse256(IL) is zero or is not strictly less
// than the curve order, per BIP32's "try the next index" rule.
func hmacCKD(cc *starkcurve.CurveConstants, seed, salt []byte) (key, chainCode [32]byte, err error) {
	mac := hmac.New(sha512.New, salt)
	if _, err = mac.Write(seed); err != nil {
		return
	}
	sum := mac.Sum(nil)

	copy(key[:], sum[:32])
	copy(chainCode[:], sum[32:])

	keyInt := starkcurve.Uint256FromBytes(key)
	if keyInt.IsZero() || keyInt.Cmp(cc.Order) >= 0 {
		err = ErrInvalidKey
	}
	return
}
