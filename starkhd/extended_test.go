// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkhd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/modchain/starkcurve"
)

func testSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}

func TestFromSeedRejectsBadLength(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	if _, err := FromSeed(cc, make([]byte, 8)); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("8-byte seed: got %v, want ErrInvalidSeed", err)
	}
	if _, err := FromSeed(cc, make([]byte, 65)); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("65-byte seed: got %v, want ErrInvalidSeed", err)
	}
}

func TestFromSeedIsDeterministic(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	seed := testSeed()
	a, err := FromSeed(cc, seed)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	b, err := FromSeed(cc, seed)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if a.privateScalar() != b.privateScalar() {
		t.Errorf("FromSeed was not deterministic across calls with the same seed")
	}
	if a.ChainCode != b.ChainCode {
		t.Errorf("chain codes differ across calls with the same seed")
	}
}

func TestChildPrivateDerivationIsDeterministic(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	master, err := FromSeed(cc, testSeed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	a, err := master.Child(0)
	if err != nil {
		t.Fatalf("Child(0): %v", err)
	}
	b, err := master.Child(0)
	if err != nil {
		t.Fatalf("Child(0): %v", err)
	}
	if a.privateScalar() != b.privateScalar() {
		t.Errorf("deriving the same child index twice produced different keys")
	}
	other, err := master.Child(1)
	if err != nil {
		t.Fatalf("Child(1): %v", err)
	}
	if a.privateScalar() == other.privateScalar() {
		t.Errorf("Child(0) and Child(1) produced the same key")
	}
}

func TestPublicDerivationMatchesPrivateDerivation(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	master, err := FromSeed(cc, testSeed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	masterPub, err := master.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}

	const childIndex = 3
	childPriv, err := master.Child(childIndex)
	if err != nil {
		t.Fatalf("Child: %v", err)
	}
	childPrivPub, err := childPriv.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}

	childFromPub, err := masterPub.Child(childIndex)
	if err != nil {
		t.Fatalf("Child on a public extended key: %v", err)
	}

	if childFromPub.KeyData != childPrivPub.KeyData {
		t.Errorf("public-path derivation disagrees with private-path derivation + Public()")
	}
}

func TestHardenedChildRejectedFromPublicKey(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	master, err := FromSeed(cc, testSeed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	pub, err := master.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if _, err := pub.Child(HardenedBit); !errors.Is(err, ErrDerivingHardenedFromPublic) {
		t.Errorf("got %v, want ErrDerivingHardenedFromPublic", err)
	}
}

func TestDerivePath(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	master, err := FromSeed(cc, testSeed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	path := []uint32{0, 1, HardenedBit | 2}
	viaDerive, err := master.Derive(path)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	step, err := master.Child(path[0])
	if err != nil {
		t.Fatalf("Child: %v", err)
	}
	step, err = step.Child(path[1])
	if err != nil {
		t.Fatalf("Child: %v", err)
	}
	step, err = step.Child(path[2])
	if err != nil {
		t.Fatalf("Child: %v", err)
	}

	if viaDerive.privateScalar() != step.privateScalar() {
		t.Errorf("Derive(path) disagrees with manual step-by-step Child calls")
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	master, err := FromSeed(cc, testSeed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	child, err := master.Child(7)
	if err != nil {
		t.Fatalf("Child: %v", err)
	}

	bin, err := child.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var back ExtendedKey
	if err := back.UnmarshalBinary(cc, bin); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back.privateScalar() != child.privateScalar() {
		t.Errorf("UnmarshalBinary produced a different private scalar")
	}
	if back.ChainCode != child.ChainCode {
		t.Errorf("UnmarshalBinary produced a different chain code")
	}
	if back.Depth != child.Depth || back.ChildNumber != child.ChildNumber {
		t.Errorf("UnmarshalBinary produced different metadata")
	}
}

func TestUnmarshalBinaryRejectsBadChecksum(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	master, err := FromSeed(cc, testSeed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	bin, err := master.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	corrupted := bytes.Clone(bin)
	corrupted[len(corrupted)-1] ^= 0xff

	var back ExtendedKey
	if err := back.UnmarshalBinary(cc, corrupted); !errors.Is(err, ErrBadChecksum) {
		t.Errorf("got %v, want ErrBadChecksum", err)
	}
}

func TestStringFromStringRoundTrip(t *testing.T) {
	cc := starkcurve.DefaultCurveConstants()
	master, err := FromSeed(cc, testSeed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	encoded := master.String()

	decoded, err := FromString(cc, encoded)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if decoded.privateScalar() != master.privateScalar() {
		t.Errorf("base58check round trip changed the private scalar")
	}
}
