// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"errors"
	"testing"
)

func TestPrivateKeySerializeRoundTrip(t *testing.T) {
	cc := DefaultCurveConstants()
	scalar := Uint256FromUint64(424242)
	priv, err := NewPrivateKey(cc, scalar)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	if got := Uint256FromBytes(priv.Serialize()); !got.Equal(scalar) {
		t.Errorf("Serialize round trip: got %s, want %s", got, scalar)
	}
}

func TestNewPrivateKeyRejectsZeroAndOversized(t *testing.T) {
	cc := DefaultCurveConstants()
	if _, err := NewPrivateKey(cc, Zero256()); !errors.Is(err, ErrScalarOutOfRange) {
		t.Errorf("zero: got %v, want ErrScalarOutOfRange", err)
	}
	if _, err := NewPrivateKey(cc, cc.Order); !errors.Is(err, ErrScalarOutOfRange) {
		t.Errorf("order: got %v, want ErrScalarOutOfRange", err)
	}
}

func TestPrivateKeySignVerifyRoundTrip(t *testing.T) {
	cc := DefaultCurveConstants()
	prng := NewPrng(&deterministicReader{})

	priv, err := NewPrivateKey(cc, Uint256FromUint64(13579))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	pub, err := priv.PubKey()
	if err != nil {
		t.Fatalf("PubKey: %v", err)
	}

	z := Uint256FromUint64(2468)
	r, s, err := priv.Sign(z, prng)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	w, err := s.InvModPrime(cc.Order)
	if err != nil {
		t.Fatalf("InvModPrime: %v", err)
	}
	ok, err := pub.Verify(z, r, w)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("PublicKey.Verify rejected a signature PrivateKey.Sign just produced")
	}
}

func TestNewPublicKeyFromXRecoversSamePoint(t *testing.T) {
	cc := DefaultCurveConstants()
	priv, err := NewPrivateKey(cc, Uint256FromUint64(9001))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	pub, err := priv.PubKey()
	if err != nil {
		t.Fatalf("PubKey: %v", err)
	}

	recovered, err := NewPublicKeyFromX(cc, pub.Point().X)
	if err != nil {
		t.Fatalf("NewPublicKeyFromX: %v", err)
	}
	if recovered.Point().X != pub.Point().X {
		t.Errorf("recovered key has a different X coordinate")
	}
}

func TestPublicKeySerializeUncompressed(t *testing.T) {
	cc := DefaultCurveConstants()
	priv, err := NewPrivateKey(cc, Uint256FromUint64(55))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	pub, err := priv.PubKey()
	if err != nil {
		t.Fatalf("PubKey: %v", err)
	}
	out := pub.SerializeUncompressed()
	var xb, yb [32]byte
	copy(xb[:], out[:32])
	copy(yb[:], out[32:])
	if got := Uint256FromBytes(xb); !got.Equal(pub.Point().X.ToStandardForm()) {
		t.Errorf("serialized X mismatch")
	}
	if got := Uint256FromBytes(yb); !got.Equal(pub.Point().Y.ToStandardForm()) {
		t.Errorf("serialized Y mismatch")
	}
}
