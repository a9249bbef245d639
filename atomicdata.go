/*
 * atomicdata.go, part of biosym.
 *
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

import "strings"

// UnknownSymbol is the symbol reported for the code 0 (not an element).
const UnknownSymbol = "X"

//Element symbols, indexed by atomic number. Index 0 is a dummy.
var symbols = [...]string{
	UnknownSymbol,
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

//A map for assigning mass to elements.
//Note that just common elements are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
	"Al": 26.98,
	"Ti": 47.87,
	"Li": 6.94,
	"Ba": 137.33,
	"Sr": 87.62,
	"Zr": 91.22,
	"Ce": 140.12,
}

// Table is a periodic table lookup. The zero value is ready to use.
// Symbols are matched case-insensitively, so "CL", "cl" and "Cl" are all chlorine.
type Table struct{}

// PeriodicTable is the default ElementTester.
var PeriodicTable = Table{}

var symbolCode map[string]int

func init() {
	symbolCode = make(map[string]int, len(symbols))
	for i, s := range symbols {
		if i == 0 {
			continue
		}
		symbolCode[strings.ToLower(s)] = i
	}
}

// SymbolCode returns the atomic number of the element named by sym
// and true, or 0 and false if sym is not an element symbol.
func (Table) SymbolCode(sym string) (int, bool) {
	c, ok := symbolCode[strings.ToLower(strings.TrimSpace(sym))]
	return c, ok
}

// Symbol returns the symbol for the atomic number code, or UnknownSymbol
// if code is out of range.
func Symbol(code int) string {
	if code <= 0 || code >= len(symbols) {
		return UnknownSymbol
	}
	return symbols[code]
}

// Mass returns the mass for the element with atomic number code.
// It returns 0 for elements not in the (short) mass table.
func Mass(code int) float64 {
	return symbolMass[Symbol(code)]
}
