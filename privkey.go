// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

// PrivateKey is a STARK curve private key: a scalar reduced modulo the
// curve order.
type PrivateKey struct {
	cc  *CurveConstants
	key Uint256
}

// PublicKey is a STARK curve public key, the point priv*G.
type PublicKey struct {
	cc    *CurveConstants
	point EcPoint[FieldElement]
}

// NewPrivateKey wraps a scalar as a private key. The scalar must be
// non-zero and strictly less than the curve order.
func NewPrivateKey(cc *CurveConstants, key Uint256) (*PrivateKey, error) {
	if key.IsZero() {
		return nil, makeError(ErrScalarOutOfRange, "private key cannot be zero")
	}
	if key.Cmp(cc.Order) >= 0 {
		return nil, makeError(ErrScalarOutOfRange, "private key is too big")
	}
	return &PrivateKey{cc: cc, key: key}, nil
}

// Serialize returns the private key's scalar as 32 big-endian bytes.
func (p *PrivateKey) Serialize() [32]byte {
	return p.key.Bytes()
}

// PubKey derives the public key priv*G.
func (p *PrivateKey) PubKey() (*PublicKey, error) {
	point, err := p.cc.Generator().MultiplyByScalar(p.key, p.cc.Alpha)
	if err != nil {
		return nil, err
	}
	return &PublicKey{cc: p.cc, point: point}, nil
}

// Sign produces a signature over message z with a nonce drawn from prng;
// see Sign.
func (p *PrivateKey) Sign(z Uint256, prng *Prng) (r, s Uint256, err error) {
	return Sign(p.cc, p.key, z, prng)
}

// NewPublicKeyFromPoint wraps an already-computed curve point as a public
// key, without re-deriving it from a private scalar.
func NewPublicKeyFromPoint(cc *CurveConstants, point EcPoint[FieldElement]) *PublicKey {
	return &PublicKey{cc: cc, point: point}
}

// NewPublicKeyFromX recovers a public key from its x coordinate alone.
func NewPublicKeyFromX(cc *CurveConstants, x FieldElement) (*PublicKey, error) {
	point, ok := GetPointFromX(x, cc.Alpha, cc.Beta)
	if !ok {
		return nil, makeError(ErrNotOnCurve, "public key x coordinate does not correspond to a valid point")
	}
	return &PublicKey{cc: cc, point: point}, nil
}

// Point returns the public key's affine coordinates.
func (pub *PublicKey) Point() EcPoint[FieldElement] {
	return pub.point
}

// SerializeUncompressed returns the 64-byte big-endian concatenation of X
// and Y.
func (pub *PublicKey) SerializeUncompressed() [64]byte {
	var out [64]byte
	x := pub.point.X.ToStandardForm().Bytes()
	y := pub.point.Y.ToStandardForm().Bytes()
	copy(out[:32], x[:])
	copy(out[32:], y[:])
	return out
}

// Verify checks a signature over message z against this public key.
func (pub *PublicKey) Verify(z, r, w Uint256) (bool, error) {
	return Verify(pub.cc, pub.point, z, r, w)
}
