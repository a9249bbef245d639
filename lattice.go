/*
 * lattice.go, part of biosym.
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

package chem

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //everything equal or less than this is considered zero.

//The columns of Latmat are the lattice vectors, a along x, b in the xy plane.
//Everything is the identity for a non-periodic model.
//For a 2D model, c has the length stored in PBC[2] (1.0 after reading) along z,
//so the z "fractional" coordinate is just the cartesian one.

// LatticeInit (re)builds the lattice matrix and its inverse from the cell parameters.
// If the cell is degenerate, both matrices are set to the identity and a note is logged.
func (M *Model) LatticeInit() {
	if M.Periodic == NonPeriodic {
		M.Latmat = eye()
		M.Ilatmat = eye()
		return
	}
	a, b, c := M.PBC[0], M.PBC[1], M.PBC[2]
	ca, cb, cg := math.Cos(M.PBC[3]), math.Cos(M.PBC[4]), math.Cos(M.PBC[5])
	sg := math.Sin(M.PBC[5])
	if math.Abs(sg) <= appzero {
		log.Printf("Degenerate cell (gamma=%f), lattice matrix set to identity", Rad2Deg(M.PBC[5]))
		M.Latmat = eye()
		M.Ilatmat = eye()
		return
	}
	cy := (ca - cb*cg) / sg
	cz := 1.0 - cb*cb - cy*cy
	if cz < 0 {
		cz = 0
	}
	cz = math.Sqrt(cz)
	lat := mat.NewDense(3, 3, []float64{
		a, b * cg, c * cb,
		0, b * sg, c * cy,
		0, 0, c * cz,
	})
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(lat); err != nil {
		log.Printf("Can't invert lattice matrix (%s), set to identity", err.Error())
		M.Latmat = eye()
		M.Ilatmat = eye()
		return
	}
	M.Latmat = lat
	M.Ilatmat = inv
}

func eye() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

//vecmat puts mtx*x in x.
func vecmat(mtx *mat.Dense, x *[3]float64) {
	if mtx == nil {
		return
	}
	v := mat.NewVecDense(3, []float64{x[0], x[1], x[2]})
	var r mat.VecDense
	r.MulVec(mtx, v)
	x[0], x[1], x[2] = r.AtVec(0), r.AtVec(1), r.AtVec(2)
}

// Cartesian transforms x in place from fractional to cartesian coordinates
// (a no-op for non-periodic models).
func (M *Model) Cartesian(x *[3]float64) {
	vecmat(M.Latmat, x)
}

// ToFractional transforms x in place from cartesian to fractional coordinates
// (a no-op for non-periodic models).
func (M *Model) ToFractional(x *[3]float64) {
	vecmat(M.Ilatmat, x)
}

// Prep is the default post-load preparation. It computes Rmax, the largest
// cartesian distance between a core and the geometric center of all cores,
// and, if the model has no molecules, puts every core in a single molecule.
func (M *Model) Prep() error {
	if len(M.Moles) == 0 && len(M.Cores) > 0 {
		mol := &Mol{Cores: make([]*Core, len(M.Cores))}
		copy(mol.Cores, M.Cores)
		M.Moles = []*Mol{mol}
	}
	M.Rmax = 0
	if len(M.Cores) == 0 {
		return nil
	}
	carts := make([][3]float64, len(M.Cores))
	centroid := make([]float64, 3)
	for i, c := range M.Cores {
		carts[i] = c.X
		if M.Fractional {
			M.Cartesian(&carts[i])
		}
		floats.Add(centroid, carts[i][:])
	}
	floats.Scale(1/float64(len(carts)), centroid)
	d := make([]float64, 3)
	for _, x := range carts {
		floats.SubTo(d, x[:], centroid)
		if r := floats.Norm(d, 2); r > M.Rmax {
			M.Rmax = r
		}
	}
	return nil
}

// DefaultPrep is the default Preparer, it calls m.Prep().
var DefaultPrep Preparer = PrepFunc(func(m *Model) error { return m.Prep() })
