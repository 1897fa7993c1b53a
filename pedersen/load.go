// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pedersen

import (
	"compress/zlib"
	"encoding/base64"
	"io"
	"strings"
	"sync"

	"github.com/modchain/starkcurve"
)

// pointByteLen is the serialized size of one EcPoint[FieldElement]: two
// 32-byte big-endian field elements.
const pointByteLen = 64

// LoadConstants decompresses and deserializes a Pedersen constants table
// from a zlib-compressed, base64-encoded serialization of its points,
// following the same approach the teacher's precomputed
// scalar-multiplication table loader uses: storing a compressed
// serialization rather than hard-coding the final in-memory table. It
// decodes its input afresh on every call; the result is not cached.
//
// tableGeometry describes how many window tables each input uses and how
// wide each window is; the encoded points are read out in that order.
func LoadConstants(cc *starkcurve.CurveConstants, compressedBase64 string, tableGeometry [2][]uint) (*Constants, error) {
	if compressedBase64 == "" {
		return nil, starkcurve.Error{Err: starkcurve.ErrFieldOutOfRange, Description: "empty constants table"}
	}

	decoder := base64.NewDecoder(base64.StdEncoding, strings.NewReader(compressedBase64))
	r, err := zlib.NewReader(decoder)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	serialized, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	offset := 0
	readPoint := func() (starkcurve.EcPoint[starkcurve.FieldElement], error) {
		if offset+pointByteLen > len(serialized) {
			return starkcurve.EcPoint[starkcurve.FieldElement]{}, starkcurve.Error{
				Err: starkcurve.ErrFieldOutOfRange, Description: "constants table truncated",
			}
		}
		var xb, yb [32]byte
		copy(xb[:], serialized[offset:offset+32])
		copy(yb[:], serialized[offset+32:offset+64])
		offset += pointByteLen
		x, err := starkcurve.FromBigInt(starkcurve.Uint256FromBytes(xb))
		if err != nil {
			return starkcurve.EcPoint[starkcurve.FieldElement]{}, err
		}
		y, err := starkcurve.FromBigInt(starkcurve.Uint256FromBytes(yb))
		if err != nil {
			return starkcurve.EcPoint[starkcurve.FieldElement]{}, err
		}
		return starkcurve.EcPoint[starkcurve.FieldElement]{X: x, Y: y}, nil
	}

	shiftPoint, err := readPoint()
	if err != nil {
		return nil, err
	}

	consts := &Constants{CurveConstants: cc, ShiftPoint: shiftPoint}
	for input := 0; input < 2; input++ {
		for _, width := range tableGeometry[input] {
			size := uint64(1) << width
			table := WindowTable{WindowBits: width, Points: make([]starkcurve.EcPoint[starkcurve.FieldElement], size)}
			for v := uint64(1); v < size; v++ {
				p, err := readPoint()
				if err != nil {
					return nil, err
				}
				table.Points[v] = p
			}
			consts.InputTables[input] = append(consts.InputTables[input], table)
		}
	}

	return consts, nil
}

var (
	defaultConstants     *Constants
	defaultConstantsOnce sync.Once
	defaultConstantsErr  error
)

// DefaultConstants lazily builds and caches a small constants table sized
// for this package's own tests, not the production StarkNet table (see
// DESIGN.md: that table is multiple megabytes of curve points and is
// external configuration this package does not ship). Real deployments
// must supply the production table via LoadConstants.
func DefaultConstants(cc *starkcurve.CurveConstants, prng *starkcurve.Prng) (*Constants, error) {
	defaultConstantsOnce.Do(func() {
		defaultConstants, defaultConstantsErr = buildSyntheticConstants(cc, prng)
	})
	return defaultConstants, defaultConstantsErr
}

// buildSyntheticConstants builds a structurally valid, small window-table
// set by drawing random curve points: four 8-bit windows per input cover
// 32 bits, enough for this package's own property tests without claiming
// to reproduce the production 252-bit-wide StarkNet table.
func buildSyntheticConstants(cc *starkcurve.CurveConstants, prng *starkcurve.Prng) (*Constants, error) {
	const windowBits = 8
	const windowsPerInput = 4

	consts := &Constants{
		CurveConstants: cc,
		ShiftPoint:     starkcurve.Random(cc.Alpha, cc.Beta, prng),
	}
	for input := 0; input < 2; input++ {
		for w := 0; w < windowsPerInput; w++ {
			size := 1 << windowBits
			table := WindowTable{WindowBits: windowBits, Points: make([]starkcurve.EcPoint[starkcurve.FieldElement], size)}
			for v := 1; v < size; v++ {
				table.Points[v] = starkcurve.Random(cc.Alpha, cc.Beta, prng)
			}
			consts.InputTables[input] = append(consts.InputTables[input], table)
		}
	}
	return consts, nil
}
