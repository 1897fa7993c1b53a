// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkhd

import (
	"encoding/binary"
	"fmt"

	"github.com/ModChain/base58"
	"github.com/modchain/starkcurve"
)

// HardenedBit marks a child index as hardened, per BIP32: a hardened child
// can only be derived from a private extended key.
const HardenedBit = uint32(0x80000000)

const serializedKeyLen = 1 + 4 + 4 + 32 + 33 // depth || fingerprint || childnum || chaincode || keydata

// ExtendedKey is a node in a STARK-curve hierarchical deterministic key
// tree: a private or public key plus the chain code and path metadata
// needed to derive its children.
type ExtendedKey struct {
	cc *starkcurve.CurveConstants

	IsPrivateKey bool
	Depth        uint8
	Fingerprint  [4]byte
	ChildNumber  uint32
	ChainCode    [32]byte

	// KeyData holds either the 32-byte private scalar (IsPrivateKey true)
	// or the 32-byte public key X coordinate plus a leading sign byte
	// (0x02 for even Y, 0x03 for odd Y; IsPrivateKey false).
	KeyData [33]byte
}

// FromSeed derives a master extended private key from a seed, the root of
// a derivation tree.
func FromSeed(cc *starkcurve.CurveConstants, seed []byte) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	key, chainCode, err := hmacCKD(cc, seed, []byte("StarkCurve seed"))
	if err != nil {
		return nil, err
	}
	k := &ExtendedKey{
		cc:           cc,
		IsPrivateKey: true,
		ChainCode:    chainCode,
	}
	k.KeyData[0] = 0x00
	copy(k.KeyData[1:], key[:])
	return k, nil
}

func (k *ExtendedKey) privateScalar() starkcurve.Uint256 {
	var b [32]byte
	copy(b[:], k.KeyData[1:])
	return starkcurve.Uint256FromBytes(b)
}

// pubKeyBytes returns the 33-byte sign-prefixed X-only serialization of
// this key's public key, deriving it from the private scalar if necessary.
func (k *ExtendedKey) pubKeyBytes() ([33]byte, error) {
	if !k.IsPrivateKey {
		return k.KeyData, nil
	}
	priv, err := starkcurve.NewPrivateKey(k.cc, k.privateScalar())
	if err != nil {
		return [33]byte{}, err
	}
	pub, err := priv.PubKey()
	if err != nil {
		return [33]byte{}, err
	}
	return serializeXOnly(pub.Point()), nil
}

func serializeXOnly(p starkcurve.EcPoint[starkcurve.FieldElement]) [33]byte {
	var out [33]byte
	yStandard := p.Y.ToStandardForm()
	if yStandard.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	x := p.X.ToStandardForm().Bytes()
	copy(out[1:], x[:])
	return out
}

// Child derives the child extended key at index i. Indices with
// HardenedBit set require a private parent key.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	if k.Depth == 0xff {
		return nil, ErrMaxDepthExceeded
	}

	hardened := i&HardenedBit == HardenedBit
	if !k.IsPrivateKey && hardened {
		return nil, ErrDerivingHardenedFromPublic
	}

	seed := make([]byte, 33+4)
	if hardened {
		copy(seed, k.KeyData[:])
	} else {
		pub, err := k.pubKeyBytes()
		if err != nil {
			return nil, err
		}
		copy(seed, pub[:])
	}
	binary.BigEndian.PutUint32(seed[33:], i)

	il, chainCode, err := hmacCKD(k.cc, seed, k.ChainCode[:])
	if err != nil {
		return nil, err
	}

	parentPub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}

	child := &ExtendedKey{
		cc:          k.cc,
		ChainCode:   chainCode,
		Depth:       k.Depth + 1,
		ChildNumber: i,
	}
	copy(child.Fingerprint[:], rmd160sha256(parentPub[:])[:4])

	ilScalar := starkcurve.Uint256FromBytes(il)

	if k.IsPrivateKey {
		sum, carry := ilScalar.AddWithCarry(k.privateScalar())
		if carry != 0 || sum.Cmp(k.cc.Order) >= 0 {
			sum = sum.Sub(k.cc.Order)
		}
		if sum.IsZero() {
			return nil, ErrInvalidKey
		}
		child.IsPrivateKey = true
		child.KeyData[0] = 0x00
		b := sum.Bytes()
		copy(child.KeyData[1:], b[:])
		return child, nil
	}

	// Case #3: childKey = point(IL) + parentKey
	ilPoint, err := k.cc.Generator().MultiplyByScalar(ilScalar, k.cc.Alpha)
	if err != nil {
		return nil, err
	}
	parentPoint, ok := pointFromXOnly(k.cc, parentPub)
	if !ok {
		return nil, ErrInvalidKey
	}
	childPoint, err := ilPoint.Add(parentPoint, k.cc.Alpha)
	if err != nil {
		return nil, err
	}
	child.IsPrivateKey = false
	child.KeyData = serializeXOnly(childPoint)
	return child, nil
}

// pointFromXOnly recovers the full point a 33-byte sign-prefixed X-only
// serialization names, selecting whichever of the two square roots
// GetPointFromX did not happen to return if its parity disagrees with the
// encoded sign byte.
func pointFromXOnly(cc *starkcurve.CurveConstants, serialized [33]byte) (starkcurve.EcPoint[starkcurve.FieldElement], bool) {
	var xb [32]byte
	copy(xb[:], serialized[1:])
	x, err := starkcurve.FromBigInt(starkcurve.Uint256FromBytes(xb))
	if err != nil {
		return starkcurve.EcPoint[starkcurve.FieldElement]{}, false
	}
	p, ok := starkcurve.GetPointFromX(x, cc.Alpha, cc.Beta)
	if !ok {
		return starkcurve.EcPoint[starkcurve.FieldElement]{}, false
	}
	wantOdd := serialized[0] == 0x03
	isOdd := p.Y.ToStandardForm().Bit(0) == 1
	if wantOdd != isOdd {
		p = p.Negate()
	}
	return p, true
}

// Derive walks a path of child indices from k.
func (k *ExtendedKey) Derive(path []uint32) (*ExtendedKey, error) {
	cur := k
	var err error
	for _, i := range path {
		cur, err = cur.Child(i)
		if err != nil {
			return nil, fmt.Errorf("deriving child %d: %w", i, err)
		}
	}
	return cur, nil
}

// Public returns the extended public key corresponding to k, unaltered if
// k is already public.
func (k *ExtendedKey) Public() (*ExtendedKey, error) {
	if !k.IsPrivateKey {
		return k, nil
	}
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	return &ExtendedKey{
		cc:           k.cc,
		IsPrivateKey: false,
		KeyData:      pub,
		ChainCode:    k.ChainCode,
		Fingerprint:  k.Fingerprint,
		Depth:        k.Depth,
		ChildNumber:  k.ChildNumber,
	}, nil
}

// MarshalBinary encodes k in the fixed-width format that gets base58check
// encoded for humans: depth || fingerprint || childnum || chaincode ||
// keydata || 4-byte checksum.
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.ChildNumber)

	out := make([]byte, 0, serializedKeyLen+4)
	out = append(out, k.Depth)
	out = append(out, k.Fingerprint[:]...)
	out = append(out, childNumBytes[:]...)
	out = append(out, k.ChainCode[:]...)
	out = append(out, k.KeyData[:]...)

	checksum := doubleSha256(out)[:4]
	out = append(out, checksum...)
	return out, nil
}

// UnmarshalBinary decodes the format MarshalBinary produces.
func (k *ExtendedKey) UnmarshalBinary(cc *starkcurve.CurveConstants, data []byte) error {
	if len(data) != serializedKeyLen+4 {
		return ErrInvalidKeyLen
	}
	payload, checksum := data[:len(data)-4], data[len(data)-4:]
	want := doubleSha256(payload)[:4]
	for i := range checksum {
		if checksum[i] != want[i] {
			return ErrBadChecksum
		}
	}

	k.cc = cc
	k.Depth = payload[0]
	copy(k.Fingerprint[:], payload[1:5])
	k.ChildNumber = binary.BigEndian.Uint32(payload[5:9])
	copy(k.ChainCode[:], payload[9:41])
	copy(k.KeyData[:], payload[41:74])
	k.IsPrivateKey = k.KeyData[0] == 0x00
	return nil
}

// FromString decodes a base58check-encoded extended key.
func FromString(cc *starkcurve.CurveConstants, str string) (*ExtendedKey, error) {
	bin, err := base58.Bitcoin.Decode(str)
	if err != nil {
		return nil, err
	}
	k := &ExtendedKey{}
	if err := k.UnmarshalBinary(cc, bin); err != nil {
		return nil, err
	}
	return k, nil
}

// String returns the base58check encoding of k.
func (k *ExtendedKey) String() string {
	bin, _ := k.MarshalBinary()
	return base58.Bitcoin.Encode(bin)
}
