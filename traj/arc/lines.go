/*
 * lines.go, part of biosym.
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
	"io"
	"strconv"
	"strings"
)

//lineReader reads lines from a seekable stream and keeps track
//of the offset at which the next line starts.
type lineReader struct {
	rs       io.ReadSeeker
	br       *bufio.Reader
	pos      int64
	filename string
}

func newLineReader(rs io.ReadSeeker, filename string) (*lineReader, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &lineReader{rs: rs, br: bufio.NewReader(rs), pos: pos, filename: filename}, nil
}

//ReadLine returns the next line without the line terminator.
//A last line without '\n' is still returned. io.EOF is returned only
//when there is nothing left.
func (L *lineReader) ReadLine() (string, error) {
	s, err := L.br.ReadString('\n')
	L.pos += int64(len(s))
	if err != nil && (err != io.EOF || len(s) == 0) {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

//Tell returns the offset of the next line.
func (L *lineReader) Tell() int64 {
	return L.pos
}

//Seek moves to the absolute offset pos, dropping anything buffered.
func (L *lineReader) Seek(pos int64) error {
	if _, err := L.rs.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	L.br.Reset(L.rs)
	L.pos = pos
	return nil
}

//hasPrefixFold is strings.HasPrefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

//floatPrefix parses the longest leading part of s that is a floating point
//number, the way C's strtod would. It returns the value and the number of bytes
//used, which is 0 if s doesn't start with a number.
func floatPrefix(s string) (float64, int) {
	end := 0
	for end < len(s) && strings.IndexByte("+-.0123456789eE", s[end]) >= 0 {
		end++
	}
	for ; end > 0; end-- {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f, end
		}
	}
	return 0, 0
}

//scanFloats parses up to max whitespace-separated numbers from the start of s.
//It stops at the first field that doesn't start with a number, or right after
//one that only partly is, and returns the values read and their count.
func scanFloats(s string, max int) ([]float64, int) {
	ret := make([]float64, 0, max)
	for _, field := range strings.Fields(s) {
		if len(ret) >= max {
			break
		}
		f, n := floatPrefix(field)
		if n == 0 {
			break
		}
		ret = append(ret, f)
		if n < len(field) {
			break
		}
	}
	return ret, len(ret)
}

//energyColumn is the byte offset of the energy in the line before !DATE.
//The first 64 columns are the (possibly empty) title.
const energyColumn = 65

//energyField returns the energy stored in line, or 0 if the line is too short
//or doesn't have a number there.
func energyField(line string) float64 {
	if len(line) <= energyColumn {
		return 0
	}
	f, _ := floatPrefix(strings.TrimLeft(line[energyColumn:], " \t"))
	return f
}
