/*
 * chem.go, part of biosym.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// MaxRegions is the number of regions for which the model keeps an "empty" flag.
const MaxRegions = 4

// Periodicity is the number of periodic directions of a model.
type Periodicity int

const (
	NonPeriodic Periodicity = 0
	Periodic2D  Periodicity = 2 //a surface, kept as a 3D cell with c=1
	Periodic3D  Periodicity = 3
)

func (p Periodicity) String() string {
	switch p {
	case NonPeriodic:
		return "none"
	case Periodic2D:
		return "2D"
	case Periodic3D:
		return "3D"
	}
	return "unknown"
}

//Core is the nucleus of an atom (or a whole atom, if there is no shell).
type Core struct {
	Label        string
	Type         string //potential type, also used for region tagging.
	Code         int    //atomic number, 0 if unknown.
	X            [3]float64
	Charge       float64
	Region       int
	LookupCharge bool //the charge should be taken from a force field lookup.
	Deleted      bool
}

// NewCore returns a core for the element sym, with the given label.
// If label is empty, the symbol is used.
func NewCore(sym, label string, el ElementTester) *Core {
	c := new(Core)
	c.Code, _ = el.SymbolCode(sym)
	c.Label = label
	if label == "" {
		c.Label = sym
	}
	c.LookupCharge = true
	return c
}

// Symbol returns the element symbol of the core.
func (C *Core) Symbol() string {
	return Symbol(C.Code)
}

//Shell is the polarizable electron shell of an atom.
type Shell struct {
	Label        string
	Code         int
	X            [3]float64
	Charge       float64
	Region       int
	LookupCharge bool
}

// NewShell returns a new shell with the given label.
func NewShell(sym, label string, el ElementTester) *Shell {
	s := new(Shell)
	s.Code, _ = el.SymbolCode(sym)
	s.Label = label
	if label == "" {
		s.Label = sym
	}
	s.LookupCharge = true
	return s
}

// Mol is a molecule, i.e. an ordered group of cores.
type Mol struct {
	Cores []*Core
}

type property struct {
	rank  int
	key   string
	value string
}

// Model is an atomistic model: lattice, cores, shells and molecules, plus
// the bookkeeping needed to go through the frames of a trajectory.
// Cores and shells belong to the model. Readers only overwrite or append
// entries, they never remove them.
type Model struct {
	PBC        [6]float64 //a, b, c, alpha, beta, gamma. Angles in radians.
	Periodic   Periodicity
	Fractional bool
	Latmat     *mat.Dense //fractional to cartesian
	Ilatmat    *mat.Dense //cartesian to fractional

	Moles []*Mol
	Cores []*Core
	Shels []*Shell

	RegionEmpty [MaxRegions]bool

	CurFrame  int
	NumFrames int
	Frames    []int64 //byte offset of each frame, for random access.

	Filename string
	Basename string
	Rmax     float64

	props []property
}

// NewModel returns an empty, non-periodic model with identity lattice matrices.
func NewModel() *Model {
	m := new(Model)
	for i := range m.RegionEmpty {
		m.RegionEmpty[i] = true
	}
	m.LatticeInit()
	return m
}

// AddRankedProperty sets the property key to value. Properties are
// kept ordered by rank. Setting an existing key replaces its value and rank.
func (M *Model) AddRankedProperty(rank int, key, value string) {
	for i, p := range M.props {
		if p.key == key {
			M.props[i].rank = rank
			M.props[i].value = value
			M.sortProps()
			return
		}
	}
	M.props = append(M.props, property{rank: rank, key: key, value: value})
	M.sortProps()
}

func (M *Model) sortProps() {
	sort.SliceStable(M.props, func(i, j int) bool { return M.props[i].rank < M.props[j].rank })
}

// Property returns the value of the property key, and whether it was found.
func (M *Model) Property(key string) (string, bool) {
	for _, p := range M.props {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Properties returns the property keys, ordered by rank.
func (M *Model) Properties() []string {
	ret := make([]string, 0, len(M.props))
	for _, p := range M.props {
		ret = append(ret, p.key)
	}
	return ret
}

// AddFrameOffset appends pos to the frame index of the model.
func (M *Model) AddFrameOffset(pos int64) {
	M.Frames = append(M.Frames, pos)
}

// Len returns the number of cores in the model.
func (M *Model) Len() int {
	return len(M.Cores)
}
