/*
 * interfaces.go, part of biosym.
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
 *
 */

package chem

// ElementTester tells whether a short string names a chemical element.
// SymbolCode returns the atomic number for the symbol, and false if the
// symbol is not a known element.
type ElementTester interface {
	SymbolCode(sym string) (int, bool)
}

// Preparer performs the post-load normalization of a model
// (derived quantities, default molecule list).
type Preparer interface {
	Prep(m *Model) error
}

// PrepFunc adapts an ordinary function to the Preparer interface.
type PrepFunc func(m *Model) error

// Prep calls f(m).
func (f PrepFunc) Prep(m *Model) error {
	return f(m)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller's name to the decoration slice and returns the slice. An empty string just returns the current value.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
