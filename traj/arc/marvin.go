/*
 * marvin.go, part of biosym.
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

package arc

//MARVIN writes region and core/shell information in the type field
//of each atom, as R<region digit><A|B><C|S>, i.e. R1AC is a core in region 1A.

// IsMarvinLabel returns true if label was generated by MARVIN.
func IsMarvinLabel(label string) bool {
	if len(label) < 4 {
		return false
	}
	if label[0] != 'R' && label[0] != 'r' {
		return false
	}
	if label[1] < '0' || label[1] > '9' {
		return false
	}
	switch label[2] {
	case 'A', 'a', 'B', 'b':
	default:
		return false
	}
	switch label[3] {
	case 'C', 'c', 'S', 's':
	default:
		return false
	}
	return true
}

// MarvinRegion returns the 0-based region index of a MARVIN label.
// The label must be a valid MARVIN label.
func MarvinRegion(label string) int {
	return int(label[1]) - '1'
}

// MarvinCore returns true if the MARVIN label belongs to a core, false if it is a shell.
// The label must be a valid MARVIN label.
func MarvinCore(label string) bool {
	return label[3] == 'C' || label[3] == 'c'
}

// Marvin decodes label. ok is false if label is not a MARVIN label,
// in which case region and core are meaningless.
func Marvin(label string) (region int, core bool, ok bool) {
	if !IsMarvinLabel(label) {
		return 0, false, false
	}
	return MarvinRegion(label), MarvinCore(label), true
}
