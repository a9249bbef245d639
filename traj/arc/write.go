/*
 * write.go, part of biosym.
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

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	chem "github.com/rmera/biosym"
)

// WriteFrame writes the current coordinates of m to w as one ARC frame.
// Periodic coordinates are expected to be fractional, they are written as
// cartesian. Deleted cores are skipped, and molecules with no written core
// don't get an "end" line nor a molecule number.
func WriteFrame(w io.Writer, m *chem.Model, opts *Options) error {
	o := opts.withDefaults()
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "!DATE %s\n", o.Now().Format(time.ANSIC))
	if m.Periodic != chem.NonPeriodic {
		c := m.PBC[2]
		if m.Periodic == chem.Periodic2D {
			//a surface saved as a 3D cell. The depth must fit everything.
			c = 2.0 * m.Rmax
		}
		fmt.Fprintf(out, "PBC %9.4f %9.4f %9.4f %9.4f %9.4f %9.4f (P1)\n",
			m.PBC[0], m.PBC[1], c,
			chem.Rad2Deg(m.PBC[3]),
			chem.Rad2Deg(m.PBC[4]),
			chem.Rad2Deg(m.PBC[5]))
	}
	molnum := 0
	var x [3]float64
	for _, mol := range m.Moles {
		written := 0
		for _, core := range mol.Cores {
			if core.Deleted {
				continue
			}
			x = core.X
			m.Cartesian(&x)
			typ := core.Type
			if typ == "" {
				typ = "?"
			}
			//BIOSYM molecule numbers start from 1
			fmt.Fprintf(out, "%-4s  %14.9f %14.9f %14.9f CORE %-6d %-7s %-2s ",
				core.Label, x[0], x[1], x[2], molnum+1, typ, core.Symbol())
			//keeps the columns aligned whether or not there is a minus sign.
			if core.Charge < 0.0 {
				fmt.Fprintf(out, "%5.3f\n", core.Charge)
			} else {
				fmt.Fprintf(out, " %4.3f\n", core.Charge)
			}
			written++
		}
		if written > 0 {
			fmt.Fprint(out, "end\n")
			molnum++
		}
	}
	fmt.Fprint(out, "end\n")
	if err := out.Flush(); err != nil {
		return Error{UnableToWrite, "", []string{"WriteFrame"}, true, err}
	}
	return nil
}

// WriteHeader writes the BIOSYM archive banner, the PBC=ON/OFF line and
// the product signature.
func WriteHeader(w io.Writer, m *chem.Model, opts *Options) error {
	o := opts.withDefaults()
	pbc := "OFF"
	if m.Periodic != chem.NonPeriodic {
		pbc = "ON"
	}
	if _, err := fmt.Fprintf(w, "!BIOSYM archive 3\nPBC=%s\n", pbc); err != nil {
		return Error{UnableToWrite, "", []string{"WriteHeader"}, true, err}
	}
	if err := o.Signature(w, m); err != nil {
		return Error{UnableToWrite, "", []string{"Signature", "WriteHeader"}, true, err}
	}
	return nil
}

// DefaultSignature writes the title line that goes right before the first
// !DATE line: title in the first 64 columns, a blank, then the energy of the
// model (the "Energy" property, 0 if not set) starting at byte 65, where
// the reader looks for it.
func DefaultSignature(w io.Writer, m *chem.Model, title string) error {
	_, err := fmt.Fprintf(w, "%-64.64s %15.6f\n", title, Energy(m))
	return err
}

// Energy returns the value of the "Energy" property of m, as stored by the
// reader ("<value> eV"), or 0 if m has none.
func Energy(m *chem.Model) float64 {
	v, ok := m.Property("Energy")
	if !ok {
		return 0
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return 0
	}
	e, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return e
}

// Write writes m to the file filename, as a one-frame ARC file.
// The file is compressed if its name ends in .gz or .zst.
// Only the current frame is written, even if the model comes from a trajectory.
func Write(filename string, m *chem.Model, opts *Options) error {
	if m == nil {
		return Error{"Given nil model", filename, []string{"Write"}, true, nil}
	}
	o := opts.withDefaults()
	out, err := create(filename, o.CompressionLevel)
	if err != nil {
		return Error{UnableToOpen, filename, []string{"Write"}, true, err}
	}
	//TODO: write every frame once models keep more than the current one.
	err = WriteHeader(out, m, o)
	if err == nil {
		err = WriteFrame(out, m, o)
	}
	cerr := out.Close()
	if err != nil {
		return withFile(errDecorate(err, "Write"), filename)
	}
	if cerr != nil {
		return Error{UnableToWrite, filename, []string{"Close", "Write"}, true, cerr}
	}
	return nil
}

//withFile sets the file name of an Error that doesn't have one.
func withFile(err error, filename string) error {
	if e, ok := err.(Error); ok && e.filename == "" {
		e.filename = filename
		return e
	}
	return err
}
