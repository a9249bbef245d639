/*
 * compress.go, part of biosym.
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
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type compression int

const (
	plain compression = iota
	gzipped
	zstandard
)

//The compression is given by the file extension: .gz for gzip, .zst or .zstd for
//z-standard. Anything else is plain text.
func compressionFor(name string) compression {
	l := strings.ToLower(name)
	switch {
	case strings.HasSuffix(l, ".gz"):
		return gzipped
	case strings.HasSuffix(l, ".zst"), strings.HasSuffix(l, ".zstd"):
		return zstandard
	}
	return plain
}

//nopCloser is for the in-memory readers of decompressed files.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

//open returns a seekable reader for name. Compressed files are decompressed
//in memory, so offsets refer to the decompressed text.
func open(name string) (io.ReadSeeker, io.Closer, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	var dec io.Reader
	switch compressionFor(name) {
	case plain:
		return f, f, nil
	case gzipped:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		defer gz.Close()
		dec = gz
	case zstandard:
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		defer zs.Close()
		dec = zs
	}
	defer f.Close()
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, nil, err
	}
	return bytes.NewReader(data), nopCloser{}, nil
}

//stacked closes the compressor before the file under it.
type stacked struct {
	io.Writer
	closers []io.Closer
}

func (s *stacked) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//create creates name, compressing according to its extension.
func create(name string, level int) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch compressionFor(name) {
	case gzipped:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		gz, err := gzip.NewWriterLevel(f, level)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stacked{gz, []io.Closer{gz, f}}, nil
	case zstandard:
		zlevel := zstd.SpeedDefault
		if level != 0 {
			zlevel = zstd.EncoderLevelFromZstd(level)
		}
		zs, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zlevel))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stacked{zs, []io.Closer{zs, f}}, nil
	}
	return f, nil
}
