/*
 * errors.go, part of biosym.
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
	"errors"
	"fmt"

	chem "github.com/rmera/biosym"
)

const (
	TrajUnIniRead   = "Traj object uninitialized to read"
	UnableToOpen    = "Unable to open file"
	UnableToWrite   = "Unable to write file"
	ReadError       = "Error reading frame"
	TruncatedFrame  = "unexpected end of file reading arc file"
	FrameOutOfRange = "Requested frame not in file"
	EOF             = "EOF"
)

// Sentinels to be used with errors.Is. Any Error with the same
// message matches them.
var (
	ErrOpen       = errors.New(UnableToOpen)
	ErrWrite      = errors.New(UnableToWrite)
	ErrTruncated  = errors.New(TruncatedFrame)
	ErrFrameRange = errors.New(FrameOutOfRange)
)

//errDecorate is a helper function that asserts that the error is
//implements chem.Error and decorates the error with the caller's name before returning it.
//Errors that don't implement chem.Error are returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(chem.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for ARC file errors. It fullfills chem.Error and chem.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error //underlying cause, if any.
}

func (err Error) Error() string {
	if err.err != nil {
		return fmt.Sprintf("arc file %s error: %s: %s", err.filename, err.message, err.err.Error())
	}
	return fmt.Sprintf("arc file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "arc") associated to the error
func (err Error) Format() string { return "arc" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//Unwrap returns the underlying error, if any.
func (err Error) Unwrap() error { return err.err }

//Is reports whether target carries the same message as err.
func (err Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(Error); ok {
		return t.message == err.message
	}
	return target.Error() == err.message
}

//lastFrameError implements chem.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return EOF }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "arc" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
