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

/*
Package arc reads and writes BIOSYM CAR (one structure) and ARC (trajectory) files.

Reading a file goes through it once, counting and indexing the frames, and loads
only the frame selected by the CurFrame field of the model. Other frames can later be
loaded into the same model with ReadFrame, which overwrites its cores and shells in place.
ArcR reads the frames one after the other, like the other trajectory readers of the library.

Writing produces a file with a single frame.

Files with names ending in .gz or .zst are compressed with gzip or z-standard.

******************** Format ***************************************************

	!BIOSYM archive 3
	PBC=ON                      (or PBC=OFF, or PBC=2D)
	title (64 columns)          energy      <- the line before each !DATE
	!DATE Mon Jan  2 15:04:05 2006
	PBC   10.0000   10.0000   10.0000   90.0000   90.0000   90.0000 (P1)
	O1       1.000000000    2.000000000    3.000000000 CORE 1      O       O  -0.800
	H1       ...
	end                         (closes a molecule)
	end                         (closes the frame)

The energy of a frame is the number starting at byte 65 of the line before its
!DATE line. The PBC line holds the lengths and the angles (in degrees) of the cell.
A PBC line with a 0 third length is a 2D (surface) cell. A PBC line with fewer than
six numbers is an old 2D-only line, "PBC a b gamma".

Coordinate lines have the fields
	name x y z type sequence potential-type symbol charge
and the coordinates are always cartesian. Lines whose symbol is not an element
are shells. MARVIN files use type codes like R1AC (region 1A, core) and R1AS (shell).
Rows typed as MARVIN shells are skipped.
****************************************************************************************/
package arc
