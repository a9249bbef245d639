/*
 * arc.go, part of biosym.
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
	"io"

	chem "github.com/rmera/biosym"
)

//ArcR is an ARC trajectory open for sequential reading.
type ArcR struct {
	closer   io.Closer
	lr       *lineReader
	filename string
	opts     *Options
	oldpos   int64
	frames   int
	natoms   int
	scratch  *chem.Model //for discarded frames
	readable bool
	periodic chem.Periodicity //from the last PBC=ON/OFF/2D line
	pbcSeen  bool
}

//New opens an ARC file for reading frame by frame, and returns a pointer
//to the handle or an error.
func New(filename string, opts *Options) (*ArcR, error) {
	A := new(ArcR)
	var err error
	var r io.ReadSeeker
	r, A.closer, err = open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"New"}, true, err}
	}
	A.lr, err = newLineReader(r, filename)
	if err != nil {
		A.closer.Close()
		return nil, Error{ReadError, filename, []string{"New"}, true, err}
	}
	A.filename = filename
	A.opts = opts.withDefaults()
	A.oldpos = A.lr.Tell()
	A.readable = true
	return A, nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (A *ArcR) Readable() bool {
	return A.readable
}

//Next reads the next frame into m, overwriting its cores and shells in order.
//The periodicity of m is set from the last global PBC=ON/OFF/2D line in the file
//so far, if any, so every frame can go into a fresh model.
//If m is nil, the frame is read and discarded.
//After the last frame, it returns a chem.LastFrameError and closes the handle.
//A truncated frame gives a non-critical error, and the reading can go on.
func (A *ArcR) Next(m *chem.Model) error {
	if !A.readable {
		return Error{TrajUnIniRead, A.filename, []string{"Next"}, true, nil}
	}
	if m == nil {
		if A.scratch == nil {
			A.scratch = chem.NewModel()
		}
		m = A.scratch
	}
	for {
		pos := A.lr.Tell()
		line, err := A.lr.ReadLine()
		if err == io.EOF {
			A.Close()
			return newlastFrameError(A.filename, "Next")
		}
		if err != nil {
			return Error{ReadError, A.filename, []string{"Next"}, true, err}
		}
		if p, ok := pbcDirective(line); ok {
			A.periodic = p
			A.pbcSeen = true
			A.oldpos = pos
			continue
		}
		if !hasPrefixFold(line, "!date") {
			A.oldpos = pos
			continue
		}
		if A.pbcSeen {
			m.Periodic = A.periodic
		}
		if err := A.lr.Seek(A.oldpos); err != nil {
			return Error{ReadError, A.filename, []string{"Seek", "Next"}, true, err}
		}
		err = readBlock(A.lr, m, A.opts)
		A.oldpos = A.lr.Tell()
		A.frames++
		A.natoms = len(m.Cores)
		if err != nil {
			return errDecorate(err, "Next")
		}
		m.CurFrame = A.frames - 1
		return nil
	}
}

//Close closes the object, and marks it as unreadable
func (A *ArcR) Close() {
	if !A.readable {
		return
	}
	A.closer.Close()
	A.readable = false
}

//Frames returns the number of frames read so far.
func (A *ArcR) Frames() int {
	return A.frames
}

//Len returns the number of cores in the last frame read.
func (A *ArcR) Len() int {
	return A.natoms
}
