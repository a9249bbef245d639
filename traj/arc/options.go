/*
 * options.go, part of biosym.
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
	"log"
	"time"

	chem "github.com/rmera/biosym"
)

// DefaultTitle is the title written in the header when none is given.
const DefaultTitle = "Created by biosym"

// ErrorSink shows error messages to the user. Structural problems in
// a frame (a truncated coordinate line) are reported here.
type ErrorSink interface {
	ShowError(msg string)
}

// LogSink is an ErrorSink that writes through the standard logger.
type LogSink struct{}

func (LogSink) ShowError(msg string) {
	log.Printf("ERROR: %s", msg)
}

// Options carries the collaborators used when reading and writing
// ARC files. A nil *Options, or a zero field, means the default.
type Options struct {
	Elements chem.ElementTester //Default chem.PeriodicTable
	Sink     ErrorSink          //Default LogSink
	Prep     chem.Preparer      //Default chem.DefaultPrep
	Now      func() time.Time   //Clock for the !DATE line. Default time.Now

	//Title for the header signature line. Default DefaultTitle.
	Title string
	//Writes the product signature after the PBC=ON/OFF line. Default is
	//one title line carrying the model energy at byte 65.
	Signature func(w io.Writer, m *chem.Model) error
	//Compression level for .gz (gzip levels) and .zst (zstd levels) output.
	//0 means the default level of each format.
	CompressionLevel int
}

//withDefaults returns a copy of O with every unset field filled.
func (O *Options) withDefaults() *Options {
	r := new(Options)
	if O != nil {
		*r = *O
	}
	if r.Elements == nil {
		r.Elements = chem.PeriodicTable
	}
	if r.Sink == nil {
		r.Sink = LogSink{}
	}
	if r.Prep == nil {
		r.Prep = chem.DefaultPrep
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	if r.Signature == nil {
		title := r.Title
		r.Signature = func(w io.Writer, m *chem.Model) error {
			return DefaultSignature(w, m, title)
		}
	}
	return r
}
