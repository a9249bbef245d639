/*
 * read.go, part of biosym.
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
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	chem "github.com/rmera/biosym"
)

//record is one coordinate line:
//name x y z type seq pottype symbol charge [atom number]
type record struct {
	x       [3]float64
	typ     string
	ptype   string
	symbol  string
	charge  float64
	hasSymb bool
}

//parseRecord reads the fields of a coordinate line in order, and stops at the
//first one that can't be read. hasSymb is false if it stopped before the symbol.
//A missing or broken charge is read as 0.
func parseRecord(line string) record {
	var r record
	f := strings.Fields(line)
	if len(f) < 8 {
		return r
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(f[i+1], 64)
		if err != nil {
			return r
		}
		r.x[i] = v
	}
	r.typ = f[4]
	r.ptype = f[6]
	r.symbol = f[7]
	r.hasSymb = true
	if len(f) > 8 {
		r.charge, _ = floatPrefix(f[8])
	}
	return r
}

//wrap puts into [0,1) fractional coordinates that are less than
//one cell away from it. Anything further away is left alone.
func wrap(x *[3]float64) {
	for i := range x {
		if x[i] < 0 && x[i] >= -1.0 {
			x[i] += 1.0
		}
		if x[i] >= 1.0 && x[i] < 2.0 {
			x[i] -= 1.0
		}
	}
}

//setPBC sets the cell of m from the numbers in a PBC line (without the "PBC").
//6 numbers are a full cell, and a 0 third length means an implicit 2D cell.
//Fewer numbers are the old 2D-only line, where the third number is gamma.
func setPBC(m *chem.Model, fields string) {
	vals, n := scanFloats(fields, 6)
	copy(m.PBC[:n], vals)
	if n == 6 {
		m.PBC[3] = chem.Deg2Rad(m.PBC[3])
		m.PBC[4] = chem.Deg2Rad(m.PBC[4])
		m.PBC[5] = chem.Deg2Rad(m.PBC[5])
		if m.PBC[2] == 0 {
			m.PBC[2] = 1.0
			m.PBC[3] = 0.5 * math.Pi
			m.PBC[4] = 0.5 * math.Pi
			m.Periodic = chem.Periodic2D
		}
	} else {
		m.PBC[5] = chem.Deg2Rad(m.PBC[2])
		m.PBC[2] = 1.0
		m.PBC[3] = 0.5 * math.Pi
		m.PBC[4] = 0.5 * math.Pi
	}
	m.LatticeInit()
	m.Fractional = true
}

// ReadBlock reads one frame from r into m. r must be positioned at the
// line right before the !DATE line of the frame, which holds the energy.
// Cores and shells already in m are overwritten in order, new ones are
// appended only when the existing ones run out.
// A coordinate line without an element symbol is reported to the error sink,
// and the read stops, leaving m partially updated. The returned error is then
// non-critical. If there is no frame left, a chem.LastFrameError is returned.
func ReadBlock(r io.ReadSeeker, m *chem.Model, opts *Options) error {
	lr, err := newLineReader(r, "")
	if err != nil {
		return Error{ReadError, "", []string{"ReadBlock"}, true, err}
	}
	err = readBlock(lr, m, opts.withDefaults())
	if err != nil {
		return errDecorate(err, "ReadBlock")
	}
	return nil
}

func readBlock(lr *lineReader, m *chem.Model, o *Options) error {
	var nextCore, nextShell int //cursors on the existing cores and shells
	region := 0
	endCount := 0
	line, err := lr.ReadLine()
	if err != nil {
		return blockEnd(lr, err)
	}
	//The energy is stored in the line before !DATE, from byte 65. The title
	//takes the first 64 bytes and may be empty.
	energy := energyField(line)
	m.AddRankedProperty(3, "Energy", fmt.Sprintf("%f eV", energy))
	for !hasPrefixFold(line, "!date") {
		line, err = lr.ReadLine()
		if err != nil {
			return blockEnd(lr, err)
		}
	}
	for {
		line, err = lr.ReadLine()
		if err == io.EOF {
			return nil //no final "end", but we take what we got.
		}
		if err != nil {
			return Error{ReadError, lr.filename, []string{"readBlock"}, true, err}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		//one end closes a molecule, two close the frame.
		if hasPrefixFold(line, "end") {
			endCount++
		} else {
			endCount = 0
		}
		if endCount == 1 {
			continue
		}
		if endCount == 2 {
			return nil
		}
		if hasPrefixFold(line, "pbc") {
			setPBC(m, line[3:])
			continue
		}
		rec := parseRecord(line)
		if !rec.hasSymb {
			o.Sink.ShowError(TruncatedFrame)
			return Error{TruncatedFrame, lr.filename, []string{"readBlock"}, false, nil}
		}
		if code, ok := o.Elements.SymbolCode(rec.symbol); ok {
			coreFlag := true
			region = 0
			if r, isCore, marvin := Marvin(rec.typ); marvin {
				coreFlag = isCore
				region = r
				if region >= 0 && region < chem.MaxRegions {
					m.RegionEmpty[region] = false
				}
			}
			if !coreFlag {
				continue
			}
			var core *chem.Core
			if nextCore < len(m.Cores) {
				core = m.Cores[nextCore]
			} else {
				//must append, as later frames overwrite in the same order.
				core = chem.NewCore(rec.symbol, "", o.Elements)
				core.Code = code
				m.Cores = append(m.Cores, core)
			}
			nextCore++
			core.Label = rec.symbol
			core.X = rec.x
			core.Charge = rec.charge
			if m.Periodic != chem.NonPeriodic {
				m.ToFractional(&core.X)
				wrap(&core.X)
			}
			core.Type = rec.ptype
			core.Region = region
			core.LookupCharge = false
			continue
		}
		var shel *chem.Shell
		if nextShell < len(m.Shels) {
			shel = m.Shels[nextShell]
		} else {
			shel = chem.NewShell(rec.symbol, "", o.Elements)
			m.Shels = append(m.Shels, shel)
		}
		nextShell++
		shel.Label = rec.symbol
		shel.X = rec.x
		shel.Charge = rec.charge
		if m.Periodic != chem.NonPeriodic {
			m.ToFractional(&shel.X)
			wrap(&shel.X)
		}
		shel.Region = region
		shel.LookupCharge = false
	}
}

//blockEnd turns a read error before the !DATE line into the right error.
func blockEnd(lr *lineReader, err error) error {
	if err == io.EOF {
		return newlastFrameError(lr.filename, "readBlock")
	}
	return Error{ReadError, lr.filename, []string{"readBlock"}, true, err}
}

//pbcDirective decodes the global pbc=on/off/2d lines. It returns false if
//line is not one of them.
func pbcDirective(line string) (chem.Periodicity, bool) {
	switch {
	case hasPrefixFold(line, "pbc=on"):
		return chem.Periodic3D, true
	case hasPrefixFold(line, "pbc=off"):
		return chem.NonPeriodic, true
	case hasPrefixFold(line, "pbc=2d"):
		return chem.Periodic2D, true
	}
	return chem.NonPeriodic, false
}

//directive applies a global pbc=on/off/2d line to m. It returns false if
//line is not one of them.
func directive(line string, m *chem.Model) bool {
	p, ok := pbcDirective(line)
	if ok {
		m.Periodic = p
	}
	return ok
}

// ReadStream goes once through the whole ARC text in r, counting the frames
// and recording their offsets in m, and reads into m only the frame m.CurFrame.
// It returns the number of frames found. Problems inside the frame read are
// reported to the error sink and don't stop the scan.
func ReadStream(r io.ReadSeeker, m *chem.Model, opts *Options) (int, error) {
	return readStream(r, "", m, opts.withDefaults())
}

func readStream(r io.ReadSeeker, filename string, m *chem.Model, o *Options) (int, error) {
	lr, err := newLineReader(r, filename)
	if err != nil {
		return 0, Error{ReadError, filename, []string{"ReadStream"}, true, err}
	}
	frame := 0
	oldpos := lr.Tell() //start of the previous line
	for {
		pos := lr.Tell()
		line, err := lr.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return frame, Error{ReadError, filename, []string{"ReadStream"}, true, err}
		}
		if directive(line, m) {
			oldpos = pos
			continue
		}
		if hasPrefixFold(line, "!date") {
			pos = lr.Tell() //right after !DATE
			//back one line, for the energy.
			if err := lr.Seek(oldpos); err != nil {
				return frame, Error{ReadError, filename, []string{"Seek", "ReadStream"}, true, err}
			}
			m.AddFrameOffset(oldpos)
			if frame == m.CurFrame {
				//errors here are already reported through the sink.
				if err := readBlock(lr, m, o); err != nil {
					if e, ok := err.(Error); ok && e.Critical() {
						return frame, errDecorate(e, "ReadStream")
					}
				}
			}
			if err := lr.Seek(pos); err != nil {
				return frame, Error{ReadError, filename, []string{"Seek", "ReadStream"}, true, err}
			}
			frame++
		}
		oldpos = pos
	}
	m.NumFrames = frame
	//no need for an index with only one frame.
	if m.NumFrames == 1 {
		m.Frames = nil
	}
	return frame, nil
}

// Read reads the frame m.CurFrame of the ARC (or CAR) file filename into m,
// counting the frames and indexing their offsets on the way. It then sets the
// file names of m and runs the model preparation.
// The only error returned for a malformed file is a critical read error;
// a truncated frame is reported through the error sink.
func Read(filename string, m *chem.Model, opts *Options) error {
	if m == nil {
		return Error{"Given nil model", filename, []string{"Read"}, true, nil}
	}
	o := opts.withDefaults()
	r, closer, err := open(filename)
	if err != nil {
		return Error{UnableToOpen, filename, []string{"Read"}, true, err}
	}
	defer closer.Close()
	if _, err := readStream(r, filename, m, o); err != nil {
		return errDecorate(err, "Read")
	}
	if abs, err := filepath.Abs(filename); err == nil {
		m.Filename = abs
	} else {
		m.Filename = filename
	}
	m.Basename = chem.StripName(filename)
	if err := o.Prep.Prep(m); err != nil {
		return Error{"Model preparation failed", filename, []string{"Prep", "Read"}, true, err}
	}
	return nil
}

// ReadFrame reads the frame number frame of filename into m, overwriting the
// cores and shells m already has. The offset index of m is used if present,
// otherwise the file is scanned for the frame. m.CurFrame is set to frame.
func ReadFrame(filename string, m *chem.Model, frame int, opts *Options) error {
	if m == nil {
		return Error{"Given nil model", filename, []string{"ReadFrame"}, true, nil}
	}
	o := opts.withDefaults()
	if frame < 0 || (m.Frames != nil && frame >= len(m.Frames)) {
		return Error{FrameOutOfRange, filename, []string{"ReadFrame"}, false, nil}
	}
	r, closer, err := open(filename)
	if err != nil {
		return Error{UnableToOpen, filename, []string{"ReadFrame"}, true, err}
	}
	defer closer.Close()
	lr, err := newLineReader(r, filename)
	if err != nil {
		return Error{ReadError, filename, []string{"ReadFrame"}, true, err}
	}
	var pos int64
	if m.Frames != nil {
		pos = m.Frames[frame]
	} else {
		pos, err = locate(lr, frame, m)
		if err != nil {
			return errDecorate(err, "ReadFrame")
		}
	}
	if err := lr.Seek(pos); err != nil {
		return Error{ReadError, filename, []string{"Seek", "ReadFrame"}, true, err}
	}
	if err := readBlock(lr, m, o); err != nil {
		return errDecorate(err, "ReadFrame")
	}
	m.CurFrame = frame
	return nil
}

//locate returns the offset of the line before the !DATE line of frame.
//The global PBC=ON/OFF/2D lines found on the way are applied to m.
func locate(lr *lineReader, frame int, m *chem.Model) (int64, error) {
	n := 0
	oldpos := lr.Tell()
	for {
		pos := lr.Tell()
		line, err := lr.ReadLine()
		if err == io.EOF {
			return 0, Error{FrameOutOfRange, lr.filename, []string{"locate"}, false, nil}
		}
		if err != nil {
			return 0, Error{ReadError, lr.filename, []string{"locate"}, true, err}
		}
		if directive(line, m) {
			oldpos = pos
			continue
		}
		if hasPrefixFold(line, "!date") {
			if n == frame {
				return oldpos, nil
			}
			n++
		}
		oldpos = pos
	}
}
