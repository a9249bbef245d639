/*
 * doc.go, part of biosym.
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

/*Package chem is the main package of the biosym library. It provides the atomistic model
(cores, shells, molecules and the periodic cell) that the BIOSYM CAR/ARC reader and writer
in traj/arc fill and read.

	**biosym Capabilities**

    Keeps an atomistic model: cores (nuclei, or whole atoms) and polarizable shells,
	their charges, potential types and MARVIN regions.

    Handles 3D and 2D periodic cells. Coordinates of periodic models are kept as
	fractional, and the lattice matrix (and its inverse) transform them
	to and from cartesian.

    Keeps the byte offset of each frame of a trajectory, for random access.

    Keeps ranked, named properties for the model, such as its energy.

    Element lookup by symbol, case-insensitive.

The subpackage traj/arc reads and writes the files, chemplot plots the energy
profile of a trajectory, and cmd/arctool puts everything together in a command line tool.
*/
package chem
