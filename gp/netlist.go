// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Attr is a bitmask of per-cell attributes.
type Attr uint32

const (
	XMovable Attr = 1 << iota
	YMovable
	XFlippable
	YFlippable
	SoftMacro
)

// Fixed reports whether a cell carrying this attribute mask is fixed on axis.
func (a Attr) Fixed(axis Axis) bool { return !a.Movable(axis) }

// Movable reports whether a cell carrying this attribute mask may move on axis.
func (a Attr) Movable(axis Axis) bool {
	if axis == AxisX {
		return a&XMovable != 0
	}
	return a&YMovable != 0
}

// CellInput describes a cell in construction order, as delivered by an
// upstream netlist loader.
type CellInput struct {
	Size       Point[int]
	Area       int64
	Attributes Attr
}

// NetInput describes a net in construction order.
type NetInput struct {
	Weight float64
}

// PinInput describes one pin; the sequence of pins may be given in any
// order and may contain duplicates (§6 of the spec: "no duplicate-pin check
// is required").
type PinInput struct {
	CellIndex int
	NetIndex  int
	Offset    Point[float64]
}

// Netlist is an immutable, compressed-sparse bipartite graph of cells and
// nets connected through pins. It is built once via NewNetlist and never
// mutated afterward.
type Netlist struct {
	netWeights []float64

	cellAreas      []int64
	cellSizes      []Point[int]
	cellAttributes []Attr

	cellInternalMapping []int
	netInternalMapping  []int

	// net-major storage: pins of net n occupy [netLimits[n], netLimits[n+1])
	netLimits   []int
	cellIndexes []int
	pinOffsets  []Point[float64]

	// cell-major storage: pins of cell c occupy [cellLimits[c], cellLimits[c+1])
	cellLimits []int
	netIndexes []int
	pinIndexes []int // index of the same pin in the net-major arrays
}

// NewNetlist builds a Netlist from construction-order cells and nets plus an
// unordered pin list. Pins referencing an out-of-range cell or net index
// cause a construction error (§7).
func NewNetlist(cells []CellInput, nets []NetInput, pins []PinInput) (*Netlist, error) {
	nc, nn := len(cells), len(nets)
	for k, p := range pins {
		if p.CellIndex < 0 || p.CellIndex >= nc {
			return nil, chk.Err("pin %d references out-of-range cell index %d (cell count %d)", k, p.CellIndex, nc)
		}
		if p.NetIndex < 0 || p.NetIndex >= nn {
			return nil, chk.Err("pin %d references out-of-range net index %d (net count %d)", k, p.NetIndex, nn)
		}
	}

	n := &Netlist{
		netWeights:          make([]float64, nn),
		cellAreas:           make([]int64, nc),
		cellSizes:           make([]Point[int], nc),
		cellAttributes:      make([]Attr, nc),
		cellInternalMapping: make([]int, nc),
		netInternalMapping:  make([]int, nn),
		netLimits:           make([]int, nn+1),
		cellLimits:          make([]int, nc+1),
		cellIndexes:         make([]int, len(pins)),
		pinOffsets:          make([]Point[float64], len(pins)),
		netIndexes:          make([]int, len(pins)),
		pinIndexes:          make([]int, len(pins)),
	}

	for i := range nets {
		n.netInternalMapping[i] = i
		n.netWeights[i] = nets[i].Weight
	}
	for i, c := range cells {
		n.cellInternalMapping[i] = i
		n.cellAreas[i] = c.Area
		n.cellSizes[i] = c.Size
		n.cellAttributes[i] = c.Attributes
	}

	// net-major pass: stable sort by net index, preserving input order
	// within a net (the documented tie-break — see DESIGN.md).
	type indexed struct {
		PinInput
		pinIndex int
	}
	byNet := make([]indexed, len(pins))
	for i, p := range pins {
		byNet[i] = indexed{PinInput: p}
	}
	sort.SliceStable(byNet, func(i, j int) bool { return byNet[i].NetIndex < byNet[j].NetIndex })

	p := 0
	for net := 0; net < nn; net++ {
		n.netLimits[net] = p
		for p < len(byNet) && byNet[p].NetIndex == net {
			n.cellIndexes[p] = byNet[p].CellIndex
			n.pinOffsets[p] = byNet[p].Offset
			byNet[p].pinIndex = p
			p++
		}
	}
	n.netLimits[nn] = len(byNet)

	// cell-major pass: stable sort the same (now pin-indexed) list by cell index.
	byCell := make([]indexed, len(byNet))
	copy(byCell, byNet)
	sort.SliceStable(byCell, func(i, j int) bool { return byCell[i].CellIndex < byCell[j].CellIndex })

	p = 0
	for c := 0; c < nc; c++ {
		n.cellLimits[c] = p
		for p < len(byCell) && byCell[p].CellIndex == c {
			n.netIndexes[p] = byCell[p].NetIndex
			n.pinIndexes[p] = byCell[p].pinIndex
			p++
		}
	}
	n.cellLimits[nc] = len(byCell)

	return n, nil
}

// Selfcheck verifies the CSR-bipartite invariant described in the spec: the
// pinIndexes bijection must map every cell-major slot back to a net-major
// slot that agrees on both the owning cell and the owning net.
func (n *Netlist) Selfcheck() error {
	if len(n.cellLimits) != len(n.cellAreas)+1 {
		return chk.Err("cellLimits has wrong length %d for %d cells", len(n.cellLimits), len(n.cellAreas))
	}
	if len(n.netLimits) != len(n.netWeights)+1 {
		return chk.Err("netLimits has wrong length %d for %d nets", len(n.netLimits), len(n.netWeights))
	}
	np := len(n.pinOffsets)
	if len(n.cellIndexes) != np || len(n.netIndexes) != np || len(n.pinIndexes) != np {
		return chk.Err("pin arrays have inconsistent lengths")
	}
	for c := 0; c < n.CellCount(); c++ {
		for k := n.cellLimits[c]; k < n.cellLimits[c+1]; k++ {
			ref := n.pinIndexes[k]
			if ref < 0 || ref >= np {
				return chk.Err("pinIndexes[%d]=%d out of range", k, ref)
			}
			if n.cellIndexes[ref] != c {
				return chk.Err("cell-major slot %d (cell %d) maps to net-major slot %d owned by cell %d", k, c, ref, n.cellIndexes[ref])
			}
			if n.netIndexes[k] != netOfSlot(n, ref) {
				return chk.Err("cell-major slot %d records net %d but net-major slot %d belongs to net %d", k, n.netIndexes[k], ref, netOfSlot(n, ref))
			}
		}
	}
	return nil
}

// netOfSlot returns the net owning net-major slot k, by binary search over netLimits.
func netOfSlot(n *Netlist, k int) int {
	lo, hi := 0, n.NetCount()-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if n.netLimits[mid] <= k {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// CellCount returns the number of cells.
func (n *Netlist) CellCount() int { return len(n.cellInternalMapping) }

// NetCount returns the number of nets.
func (n *Netlist) NetCount() int { return len(n.netInternalMapping) }

// PinCount returns the number of pins.
func (n *Netlist) PinCount() int { return len(n.pinOffsets) }

// GetCellIndex maps an external (construction-order) cell index to its
// internal index; identity in the current implementation, but kept distinct
// so a future reordering does not change the public contract.
func (n *Netlist) GetCellIndex(external int) int { return n.cellInternalMapping[external] }

// GetNetIndex maps an external net index to its internal index.
func (n *Netlist) GetNetIndex(external int) int { return n.netInternalMapping[external] }

// Cell describes a single cell's static properties.
type Cell struct {
	Index      int
	Size       Point[int]
	Area       int64
	Attributes Attr
}

// Cell returns the static properties of cell c.
func (n *Netlist) Cell(c int) Cell {
	return Cell{
		Index:      c,
		Size:       n.cellSizes[c],
		Area:       n.cellAreas[c],
		Attributes: n.cellAttributes[c],
	}
}

// Net describes a single net's static properties.
type Net struct {
	Index  int
	Weight float64
}

// Net returns the static properties of net n.
func (nl *Netlist) Net(n int) Net {
	return Net{Index: n, Weight: nl.netWeights[n]}
}

// NetPinCount returns the number of pins on net n.
func (n *Netlist) NetPinCount(net int) int { return n.netLimits[net+1] - n.netLimits[net] }

// PinRef is a borrowed view of one pin, yielded by NetPins/CellPins.
type PinRef struct {
	CellIndex int
	NetIndex  int
	Offset    Point[float64]
}

// NetPins returns the pins of net n in net-major storage order.
func (n *Netlist) NetPins(net int) []PinRef {
	lo, hi := n.netLimits[net], n.netLimits[net+1]
	out := make([]PinRef, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, PinRef{
			CellIndex: n.cellIndexes[k],
			NetIndex:  net,
			Offset:    n.pinOffsets[k],
		})
	}
	return out
}

// CellPins returns the pins of cell c in cell-major storage order.
func (n *Netlist) CellPins(cell int) []PinRef {
	lo, hi := n.cellLimits[cell], n.cellLimits[cell+1]
	out := make([]PinRef, 0, hi-lo)
	for k := lo; k < hi; k++ {
		ref := n.pinIndexes[k]
		out = append(out, PinRef{
			CellIndex: cell,
			NetIndex:  n.netIndexes[k],
			Offset:    n.pinOffsets[ref],
		})
	}
	return out
}
