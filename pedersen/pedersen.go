// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pedersen implements the windowed-table Pedersen hash
// specialization StarkEx/StarkNet use to build canonical order messages.
//
// The constant table this hash is defined over is external configuration
// (see Constants and DESIGN.md): this package supplies the algorithm and a
// loader, not the production StarkNet table itself.
package pedersen

import "github.com/modchain/starkcurve"

// WindowTable is one precomputed lookup table: Points[v] is v * (this
// table's base point) for v in [0, 2^WindowBits), except Points[0], which
// is never looked up (a window value of zero means "add nothing").
type WindowTable struct {
	WindowBits uint
	Points     []starkcurve.EcPoint[starkcurve.FieldElement]
}

// Constants is the external Pedersen constant table: a shift point the
// accumulator starts from, plus a sequence of window tables for each of the
// hash's two inputs. Table geometry (window count and width) is part of
// this external configuration, not fixed by the algorithm.
type Constants struct {
	CurveConstants *starkcurve.CurveConstants
	ShiftPoint     starkcurve.EcPoint[starkcurve.FieldElement]
	InputTables    [2][]WindowTable
}

// totalBits returns how many bits of an input this set of tables covers.
func (c *Constants) totalBits(input int) uint {
	var total uint
	for _, t := range c.InputTables[input] {
		total += t.WindowBits
	}
	return total
}

// Hash computes PedersenHash(a, b): starting from the shift point, for each
// input in turn, split it into the windows described by that input's
// tables (least-significant window first) and add the corresponding table
// entry into the accumulator whenever the window value is non-zero. The
// result is the accumulator's X coordinate.
func (c *Constants) Hash(a, b starkcurve.FieldElement) (starkcurve.FieldElement, error) {
	acc := c.ShiftPoint
	var err error

	acc, err = c.foldInput(acc, a, 0)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	acc, err = c.foldInput(acc, b, 1)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}

	return acc.X, nil
}

func (c *Constants) foldInput(acc starkcurve.EcPoint[starkcurve.FieldElement], x starkcurve.FieldElement, input int) (starkcurve.EcPoint[starkcurve.FieldElement], error) {
	standard := x.ToStandardForm()
	if need := c.totalBits(input); uint(256-standard.NumLeadingZeros()) > need {
		return acc, starkcurve.Error{Err: starkcurve.ErrFieldOutOfRange, Description: "input does not fit in the configured window tables"}
	}

	bitOffset := uint(0)
	alpha := c.CurveConstants.Alpha
	for _, table := range c.InputTables[input] {
		v := extractWindow(standard, bitOffset, table.WindowBits)
		bitOffset += table.WindowBits
		if v == 0 {
			continue
		}
		if int(v) >= len(table.Points) {
			return acc, starkcurve.Error{Err: starkcurve.ErrFieldOutOfRange, Description: "window value exceeds table size"}
		}
		var err error
		acc, err = acc.Add(table.Points[v], alpha)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// extractWindow pulls out `width` bits of x starting at bit `offset`
// (least-significant first) as a plain integer, for use as a table index.
func extractWindow(x starkcurve.Uint256, offset, width uint) uint64 {
	var v uint64
	for i := uint(0); i < width; i++ {
		if x.Bit(int(offset+i)) == 1 {
			v |= 1 << i
		}
	}
	return v
}
