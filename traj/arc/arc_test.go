/*
 * arc_test.go, part of biosym.
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
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	chem "github.com/rmera/biosym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const date = "!DATE Mon Jan  2 15:04:05 2006\n"

func energyLine(title string, e float64) string {
	return fmt.Sprintf("%-64.64s%16.6f\n", title, e)
}

//frame returns the text of one ARC frame with the given energy and body.
func frame(e float64, body ...string) string {
	return energyLine("test", e) + date + strings.Join(body, "\n") + "\nend\nend\n"
}

func arcfile(pbc string, frames ...string) string {
	return "!BIOSYM archive 3\nPBC=" + pbc + "\n" + strings.Join(frames, "")
}

func writeFixture(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(path, []byte(content), 0644))
	return path
}

//recSink keeps every message it gets.
type recSink struct {
	msgs []string
}

func (R *recSink) ShowError(msg string) {
	R.msgs = append(R.msgs, msg)
}

func fixedNow() time.Time {
	return time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
}

var water = arcfile("OFF", frame(-10.5,
	"O1      0.000000000    0.000000000    0.000000000 CORE 1      o      O   -0.800",
	"H1      0.957000000    0.000000000    0.000000000 CORE 1      h      H    0.400",
	"end",
	"Na1     5.000000000    5.000000000    5.000000000 CORE 2      na     Na   1.000",
))

func TestReadNonPeriodic(Te *testing.T) {
	path := writeFixture(Te, "water.arc", water)
	m := chem.NewModel()
	require.NoError(Te, Read(path, m, nil))
	assert.Equal(Te, 1, m.NumFrames)
	assert.Nil(Te, m.Frames)
	assert.Equal(Te, chem.NonPeriodic, m.Periodic)
	assert.False(Te, m.Fractional)
	assert.Equal(Te, "water", m.Basename)
	assert.True(Te, filepath.IsAbs(m.Filename))
	require.Len(Te, m.Cores, 3)
	assert.Empty(Te, m.Shels)
	labels := []string{"O", "H", "Na"}
	types := []string{"o", "h", "na"}
	charges := []float64{-0.8, 0.4, 1.0}
	for i, c := range m.Cores {
		assert.Equal(Te, labels[i], c.Label)
		assert.Equal(Te, labels[i], c.Symbol())
		assert.Equal(Te, types[i], c.Type)
		assert.InDelta(Te, charges[i], c.Charge, 1e-9)
		assert.Equal(Te, 0, c.Region)
		assert.False(Te, c.LookupCharge)
	}
	assert.InDelta(Te, 0.957, m.Cores[1].X[0], 1e-9)
	e, ok := m.Property("Energy")
	require.True(Te, ok)
	assert.Equal(Te, "-10.500000 eV", e)
	assert.InDelta(Te, -10.5, Energy(m), 1e-9)
	//Prep puts everything in one molecule.
	require.Len(Te, m.Moles, 1)
	assert.Len(Te, m.Moles[0].Cores, 3)
	assert.Greater(Te, m.Rmax, 0.0)
}

func TestReadPeriodicCell(Te *testing.T) {
	content := arcfile("ON", frame(0,
		"PBC   10.0000   10.0000   10.0000   90.0000   90.0000  120.0000 (P1)",
		"Si1     0.000000000    4.330127019    5.000000000 CORE 1      si     Si   0.000",
		"Si2    10.200000000    0.000000000    0.000000000 CORE 1      si     Si   0.000",
		"Si3    -0.200000000    0.000000000    0.000000000 CORE 1      si     Si   0.000",
		"Si4    25.000000000    0.000000000    0.000000000 CORE 1      si     Si   0.000",
	))
	path := writeFixture(Te, "cell.arc", content)
	m := chem.NewModel()
	require.NoError(Te, Read(path, m, nil))
	assert.Equal(Te, chem.Periodic3D, m.Periodic)
	assert.True(Te, m.Fractional)
	assert.InDelta(Te, 10.0, m.PBC[2], 1e-9)
	assert.InDelta(Te, math.Pi/2, m.PBC[3], 1e-9)
	assert.InDelta(Te, math.Pi/2, m.PBC[4], 1e-9)
	assert.InDelta(Te, 2*math.Pi/3, m.PBC[5], 1e-9)
	require.Len(Te, m.Cores, 4)
	expected := [][3]float64{
		{0.25, 0.5, 0.5},
		{0.02, 0, 0},
		{0.98, 0, 0},
		{2.5, 0, 0}, //too far away to be wrapped
	}
	for i, c := range m.Cores {
		for j := 0; j < 3; j++ {
			assert.InDelta(Te, expected[i][j], c.X[j], 1e-6, "core %d coordinate %d", i, j)
		}
	}
}

func TestWrap(Te *testing.T) {
	x := [3]float64{1.02, -0.02, 2.5}
	wrap(&x)
	assert.InDelta(Te, 0.02, x[0], 1e-12)
	assert.InDelta(Te, 0.98, x[1], 1e-12)
	assert.Equal(Te, 2.5, x[2])
	x = [3]float64{0, 1, -1}
	wrap(&x)
	assert.Equal(Te, [3]float64{0, 0, 0}, x)
}

func TestImplicit2D(Te *testing.T) {
	m := chem.NewModel()
	m.Periodic = chem.Periodic3D
	setPBC(m, "   10.0000   12.0000    0.0000   80.0000   70.0000   60.0000 (P1)")
	assert.Equal(Te, chem.Periodic2D, m.Periodic)
	assert.Equal(Te, 1.0, m.PBC[2])
	assert.InDelta(Te, math.Pi/2, m.PBC[3], 1e-12)
	assert.InDelta(Te, math.Pi/2, m.PBC[4], 1e-12)
	assert.InDelta(Te, math.Pi/3, m.PBC[5], 1e-12)
	assert.True(Te, m.Fractional)
}

func TestShortPBC(Te *testing.T) {
	m := chem.NewModel()
	m.Periodic = chem.Periodic2D
	setPBC(m, " 10.0 12.0 60.0")
	assert.Equal(Te, chem.Periodic2D, m.Periodic)
	assert.Equal(Te, 10.0, m.PBC[0])
	assert.Equal(Te, 12.0, m.PBC[1])
	assert.Equal(Te, 1.0, m.PBC[2])
	assert.InDelta(Te, math.Pi/2, m.PBC[3], 1e-12)
	assert.InDelta(Te, math.Pi/2, m.PBC[4], 1e-12)
	assert.InDelta(Te, math.Pi/3, m.PBC[5], 1e-12)
}

func TestMarvin(Te *testing.T) {
	for _, c := range []struct {
		label  string
		marvin bool
		region int
		core   bool
	}{
		{"R2AC", true, 1, true},
		{"r1bs", true, 0, false},
		{"R2AS", true, 1, false},
		{"X2AC", false, 0, false},
		{"R2A", false, 0, false},
		{"RXAC", false, 0, false},
		{"R2CC", false, 0, false},
	} {
		region, core, ok := Marvin(c.label)
		assert.Equal(Te, c.marvin, ok, c.label)
		assert.Equal(Te, c.marvin, IsMarvinLabel(c.label), c.label)
		if !ok {
			continue
		}
		assert.Equal(Te, c.region, region, c.label)
		assert.Equal(Te, c.core, core, c.label)
	}
}

func TestReadMarvinAndShells(Te *testing.T) {
	content := arcfile("OFF", frame(0,
		"Mg1     1.000000000    0.000000000    0.000000000 R2AC 1      mg     Mg   2.000",
		"O1      2.000000000    0.000000000    0.000000000 R2AS 1      o      O   -2.000",
		"O2      3.000000000    0.000000000    0.000000000 X2AC 1      o      O    0.860",
		"O2      3.100000000    0.000000000    0.000000000 CORE 1      o_s    Xs  -2.860",
	))
	m := chem.NewModel()
	n, err := ReadStream(strings.NewReader(content), m, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 1, n)
	require.Len(Te, m.Cores, 2)
	assert.Equal(Te, "Mg", m.Cores[0].Label)
	assert.Equal(Te, 1, m.Cores[0].Region)
	assert.Equal(Te, "O", m.Cores[1].Label)
	assert.Equal(Te, 0, m.Cores[1].Region)
	assert.False(Te, m.RegionEmpty[1])
	assert.True(Te, m.RegionEmpty[0])
	require.Len(Te, m.Shels, 1)
	assert.Equal(Te, "Xs", m.Shels[0].Label)
	assert.InDelta(Te, -2.86, m.Shels[0].Charge, 1e-9)
	assert.InDelta(Te, 3.1, m.Shels[0].X[0], 1e-9)
}

var twoFrames = arcfile("OFF",
	frame(-1.0,
		"C1      0.000000000    0.000000000    0.000000000 CORE 1      c      C    0.000",
		"O1      1.200000000    0.000000000    0.000000000 CORE 1      o      O    0.000",
	),
	frame(-2.0,
		"C1      0.100000000    0.000000000    0.000000000 CORE 1      c      C    0.000",
		"O1      1.300000000    0.000000000    0.000000000 CORE 1      o      O    0.000",
		"H1      2.000000000    0.000000000    0.000000000 CORE 1      h      H    0.000",
	),
)

func TestFrameOverwrite(Te *testing.T) {
	path := writeFixture(Te, "two.arc", twoFrames)
	m := chem.NewModel()
	require.NoError(Te, Read(path, m, nil))
	assert.Equal(Te, 2, m.NumFrames)
	require.Len(Te, m.Frames, 2)
	require.Len(Te, m.Cores, 2)
	first, second := m.Cores[0], m.Cores[1]
	require.NoError(Te, ReadFrame(path, m, 1, nil))
	assert.Equal(Te, 1, m.CurFrame)
	require.Len(Te, m.Cores, 3)
	assert.Same(Te, first, m.Cores[0])
	assert.Same(Te, second, m.Cores[1])
	assert.InDelta(Te, 0.1, m.Cores[0].X[0], 1e-9)
	assert.InDelta(Te, 1.3, m.Cores[1].X[0], 1e-9)
	assert.Equal(Te, "H", m.Cores[2].Label)
	assert.InDelta(Te, -2.0, Energy(m), 1e-9)
	//back to the first frame, the extra core stays.
	require.NoError(Te, ReadFrame(path, m, 0, nil))
	assert.Len(Te, m.Cores, 3)
	assert.InDelta(Te, 0.0, m.Cores[0].X[0], 1e-9)
	err := ReadFrame(path, m, 2, nil)
	require.Error(Te, err)
	assert.ErrorIs(Te, err, ErrFrameRange)
}

func TestReadSelectedFrame(Te *testing.T) {
	path := writeFixture(Te, "two.arc", twoFrames)
	m := chem.NewModel()
	m.CurFrame = 1
	require.NoError(Te, Read(path, m, nil))
	assert.Equal(Te, 2, m.NumFrames)
	assert.Len(Te, m.Cores, 3)
	assert.InDelta(Te, -2.0, Energy(m), 1e-9)
}

func TestReadFrameWithoutIndex(Te *testing.T) {
	path := writeFixture(Te, "two.arc", twoFrames)
	m := chem.NewModel()
	require.NoError(Te, ReadFrame(path, m, 1, nil))
	assert.Len(Te, m.Cores, 3)
	err := ReadFrame(path, m, 5, nil)
	assert.ErrorIs(Te, err, ErrFrameRange)
}

func TestArcR(Te *testing.T) {
	path := writeFixture(Te, "two.arc", twoFrames)
	traj, err := New(path, nil)
	require.NoError(Te, err)
	defer traj.Close()
	var energies []float64
	var sizes []int
	for {
		m := chem.NewModel()
		err := traj.Next(m)
		if err != nil {
			_, ok := err.(chem.LastFrameError)
			require.True(Te, ok, "unexpected error: %v", err)
			break
		}
		energies = append(energies, Energy(m))
		sizes = append(sizes, len(m.Cores))
		assert.Equal(Te, traj.Frames()-1, m.CurFrame)
		assert.Equal(Te, len(m.Cores), traj.Len())
		//the random access read gives the same frame.
		m2 := chem.NewModel()
		require.NoError(Te, ReadFrame(path, m2, m.CurFrame, nil))
		require.Len(Te, m2.Cores, len(m.Cores))
		for i := range m.Cores {
			assert.Equal(Te, m.Cores[i].X, m2.Cores[i].X)
		}
	}
	assert.Equal(Te, []float64{-1, -2}, energies)
	assert.Equal(Te, []int{2, 3}, sizes)
	assert.False(Te, traj.Readable())
	err = traj.Next(nil)
	require.Error(Te, err)
	assert.True(Te, err.(Error).Critical())
}

func TestTruncatedFrame(Te *testing.T) {
	content := arcfile("OFF",
		frame(-1.0,
			"C1      0.000000000    0.000000000    0.000000000 CORE 1      c      C    0.000",
			"O1      1.200000000    0.000000000    0.000000000 CORE 1      o      O    0.000",
		),
		energyLine("test", -2)+date+
			"C1      0.500000000    0.000000000    0.000000000 CORE 1      c      C    0.000\n"+
			"O1      1.7000\n",
	)
	path := writeFixture(Te, "trunc.arc", content)
	sink := new(recSink)
	opts := &Options{Sink: sink}
	m := chem.NewModel()
	require.NoError(Te, Read(path, m, opts))
	assert.Equal(Te, 2, m.NumFrames)
	assert.Empty(Te, sink.msgs)
	err := ReadFrame(path, m, 1, opts)
	require.Error(Te, err)
	assert.ErrorIs(Te, err, ErrTruncated)
	assert.False(Te, err.(chem.TrajError).Critical())
	assert.Equal(Te, []string{TruncatedFrame}, sink.msgs)
	//what was read stays, the rest is untouched.
	require.Len(Te, m.Cores, 2)
	assert.InDelta(Te, 0.5, m.Cores[0].X[0], 1e-9)
	assert.InDelta(Te, 1.2, m.Cores[1].X[0], 1e-9)

	//the scan goes on after a truncated frame.
	m = chem.NewModel()
	m.CurFrame = 1
	n, err := ReadStream(strings.NewReader(content), m, opts)
	require.NoError(Te, err)
	assert.Equal(Te, 2, n)
	assert.Len(Te, sink.msgs, 2)
	assert.Len(Te, m.Cores, 1)
}

func TestOpenFailure(Te *testing.T) {
	m := chem.NewModel()
	err := Read(filepath.Join(Te.TempDir(), "nothere.arc"), m, nil)
	require.Error(Te, err)
	assert.ErrorIs(Te, err, ErrOpen)
	assert.True(Te, err.(chem.TrajError).Critical())
	_, err = New(filepath.Join(Te.TempDir(), "nothere.arc"), nil)
	assert.ErrorIs(Te, err, ErrOpen)
}

func TestWriteFrame(Te *testing.T) {
	m := chem.NewModel()
	o := chem.NewCore("O", "", chem.PeriodicTable)
	o.Type = "o"
	o.Charge = -0.8
	h := chem.NewCore("H", "", chem.PeriodicTable)
	h.X = [3]float64{0.957, 0, 0}
	h.Charge = 0.4
	gone := chem.NewCore("He", "", chem.PeriodicTable)
	gone.Deleted = true
	na := chem.NewCore("Na", "", chem.PeriodicTable)
	na.Type = "na"
	na.Charge = 1
	m.Cores = []*chem.Core{o, h, gone, na}
	m.Moles = []*chem.Mol{{Cores: []*chem.Core{o, h}}, {Cores: []*chem.Core{gone}}, {Cores: []*chem.Core{na}}}
	var buf bytes.Buffer
	require.NoError(Te, WriteFrame(&buf, m, &Options{Now: fixedNow}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(Te, lines, 7)
	assert.Equal(Te, "!DATE Mon Jan  2 15:04:05 2006", lines[0])
	assert.Equal(Te, []string{"O", "0.000000000", "0.000000000", "0.000000000", "CORE", "1", "o", "O", "-0.800"},
		strings.Fields(lines[1]))
	assert.Equal(Te, []string{"H", "0.957000000", "0.000000000", "0.000000000", "CORE", "1", "?", "H", "0.400"},
		strings.Fields(lines[2]))
	assert.Equal(Te, "end", lines[3])
	//the molecule with only a deleted core is skipped, numbering included.
	assert.Equal(Te, "2", strings.Fields(lines[4])[5])
	assert.Equal(Te, "end", lines[5])
	assert.Equal(Te, "end", lines[6])
	assert.True(Te, strings.HasSuffix(lines[1], " -0.800"))
	assert.True(Te, strings.HasSuffix(lines[2], "  0.400"))
}

func TestRoundTrip(Te *testing.T) {
	src := writeFixture(Te, "water.arc", water)
	m := chem.NewModel()
	require.NoError(Te, Read(src, m, nil))
	dir := Te.TempDir()
	for _, name := range []string{"out.arc", "out.arc.gz", "out.arc.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, Write(path, m, &Options{Now: fixedNow}), name)
		m2 := chem.NewModel()
		require.NoError(Te, Read(path, m2, nil), name)
		require.Len(Te, m2.Cores, len(m.Cores), name)
		for i := range m.Cores {
			assert.Equal(Te, m.Cores[i].Label, m2.Cores[i].Label, name)
			assert.Equal(Te, m.Cores[i].Type, m2.Cores[i].Type, name)
			assert.InDelta(Te, m.Cores[i].Charge, m2.Cores[i].Charge, 1e-3, name)
			for j := 0; j < 3; j++ {
				assert.InDelta(Te, m.Cores[i].X[j], m2.Cores[i].X[j], 1e-8, name)
			}
		}
		assert.InDelta(Te, -10.5, Energy(m2), 1e-6, name)
		assert.Equal(Te, chem.NonPeriodic, m2.Periodic, name)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "out.arc"))
	require.NoError(Te, err)
	text := string(raw)
	assert.True(Te, strings.HasPrefix(text, "!BIOSYM archive 3\nPBC=OFF\n"+DefaultTitle))
	assert.Equal(Te, 3, strings.Count(text, " CORE "))
	ends := 0
	for _, l := range strings.Split(text, "\n") {
		if l == "end" {
			ends++
		}
	}
	//one molecule plus the end of the frame.
	assert.Equal(Te, 2, ends)
}

func TestPeriodicRoundTrip(Te *testing.T) {
	m := chem.NewModel()
	m.Periodic = chem.Periodic3D
	m.PBC = [6]float64{10, 10, 12, chem.Deg2Rad(90), chem.Deg2Rad(90), chem.Deg2Rad(120)}
	m.LatticeInit()
	m.Fractional = true
	c := chem.NewCore("Si", "", chem.PeriodicTable)
	c.X = [3]float64{0.25, 0.5, 0.75}
	m.Cores = []*chem.Core{c}
	m.AddRankedProperty(3, "Energy", "-42.500000 eV")
	require.NoError(Te, m.Prep())
	path := filepath.Join(Te.TempDir(), "cell.arc")
	require.NoError(Te, Write(path, m, &Options{Title: "cell", Now: fixedNow}))
	m2 := chem.NewModel()
	require.NoError(Te, Read(path, m2, nil))
	assert.Equal(Te, chem.Periodic3D, m2.Periodic)
	for i := range m.PBC {
		assert.InDelta(Te, m.PBC[i], m2.PBC[i], 1e-4, "cell parameter %d", i)
	}
	require.Len(Te, m2.Cores, 1)
	for j := 0; j < 3; j++ {
		assert.InDelta(Te, c.X[j], m2.Cores[0].X[j], 1e-5)
	}
	assert.InDelta(Te, -42.5, Energy(m2), 1e-6)
}

func TestEnergyField(Te *testing.T) {
	assert.Equal(Te, 0.0, energyField("short title"))
	assert.Equal(Te, 0.0, energyField(""))
	assert.InDelta(Te, -123.456, energyField(strings.TrimSuffix(energyLine("", -123.456), "\n")), 1e-9)
	assert.InDelta(Te, 7.25, energyField(strings.Repeat(" ", 70)+"7.25"), 1e-12)
}

func TestScanFloats(Te *testing.T) {
	vals, n := scanFloats(" 10.0 12.0 0.0 90 90 120 (P1)", 6)
	assert.Equal(Te, 6, n)
	assert.Equal(Te, []float64{10, 12, 0, 90, 90, 120}, vals)
	_, n = scanFloats(" 10.0 12.0 60.0", 6)
	assert.Equal(Te, 3, n)
	vals, n = scanFloats("1.5 2.5x 3", 6)
	assert.Equal(Te, 2, n)
	assert.Equal(Te, []float64{1.5, 2.5}, vals)
	_, n = scanFloats("(P1)", 6)
	assert.Equal(Te, 0, n)
}

func TestNoFinalEnd(Te *testing.T) {
	content := "!BIOSYM archive 3\nPBC=OFF\n" + energyLine("", 1) + date +
		"\nC1      0.000000000    0.000000000    0.000000000 CORE 1      c      C    0.000"
	m := chem.NewModel()
	n, err := ReadStream(strings.NewReader(content), m, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 1, n)
	assert.Len(Te, m.Cores, 1)
}

func TestReadBlock(Te *testing.T) {
	m := chem.NewModel()
	block := frame(3.5, "C1      1.000000000    2.000000000    3.000000000 CORE 1      c      C    0.000")
	require.NoError(Te, ReadBlock(strings.NewReader(block), m, nil))
	require.Len(Te, m.Cores, 1)
	assert.Equal(Te, [3]float64{1, 2, 3}, m.Cores[0].X)
	assert.InDelta(Te, 3.5, Energy(m), 1e-9)

	sink := new(recSink)
	err := ReadBlock(strings.NewReader(energyLine("", 0)+date+"C1 1.0 2.0 x CORE 1 c C 0.0\n"), m, &Options{Sink: sink})
	assert.ErrorIs(Te, err, ErrTruncated)
	assert.Len(Te, sink.msgs, 1)

	err = ReadBlock(strings.NewReader(""), m, nil)
	_, ok := err.(chem.LastFrameError)
	assert.True(Te, ok)
}

var periodicFrames = arcfile("ON",
	frame(-1.0,
		"PBC   10.0000   10.0000   10.0000   90.0000   90.0000   90.0000 (P1)",
		"Si1     5.000000000    5.000000000    5.000000000 CORE 1      si     Si   0.000",
	),
	frame(-2.0,
		"PBC   10.0000   10.0000   10.0000   90.0000   90.0000   90.0000 (P1)",
		"Si1     2.000000000    3.000000000    4.000000000 CORE 1      si     Si   0.000",
	),
)

func TestArcRPeriodic(Te *testing.T) {
	path := writeFixture(Te, "periodic.arc", periodicFrames)
	expected := [][3]float64{{0.5, 0.5, 0.5}, {0.2, 0.3, 0.4}}
	traj, err := New(path, nil)
	require.NoError(Te, err)
	defer traj.Close()
	for i := range expected {
		m := chem.NewModel()
		require.NoError(Te, traj.Next(m), "frame %d", i)
		assert.Equal(Te, chem.Periodic3D, m.Periodic, "frame %d", i)
		assert.True(Te, m.Fractional, "frame %d", i)
		require.Len(Te, m.Cores, 1)
		for j := 0; j < 3; j++ {
			assert.InDelta(Te, expected[i][j], m.Cores[0].X[j], 1e-9, "frame %d", i)
		}
	}
	//a fresh model, without frame index, gets the same frame.
	for i := range expected {
		m := chem.NewModel()
		require.NoError(Te, ReadFrame(path, m, i, nil))
		assert.Equal(Te, chem.Periodic3D, m.Periodic, "frame %d", i)
		for j := 0; j < 3; j++ {
			assert.InDelta(Te, expected[i][j], m.Cores[0].X[j], 1e-9, "frame %d", i)
		}
	}
}

func TestReadPBC2DDirective(Te *testing.T) {
	content := arcfile("2D", frame(0,
		"PBC   10.0000   12.0000   60.0000",
		"Si1     5.000000000    5.000000000    0.500000000 CORE 1      si     Si   0.000",
	))
	path := writeFixture(Te, "surface.arc", content)
	m := chem.NewModel()
	require.NoError(Te, Read(path, m, nil))
	assert.Equal(Te, chem.Periodic2D, m.Periodic)
	assert.True(Te, m.Fractional)
	assert.Equal(Te, 10.0, m.PBC[0])
	assert.Equal(Te, 12.0, m.PBC[1])
	assert.Equal(Te, 1.0, m.PBC[2])
	assert.InDelta(Te, math.Pi/3, m.PBC[5], 1e-12)
	require.Len(Te, m.Cores, 1)
	assert.InDelta(Te, 0.5, m.Cores[0].X[2], 1e-9)
	x := m.Cores[0].X
	m.Cartesian(&x)
	assert.InDelta(Te, 5.0, x[0], 1e-9)
	assert.InDelta(Te, 5.0, x[1], 1e-9)
	assert.InDelta(Te, 0.5, x[2], 1e-9)

	traj, err := New(path, nil)
	require.NoError(Te, err)
	defer traj.Close()
	m2 := chem.NewModel()
	require.NoError(Te, traj.Next(m2))
	assert.Equal(Te, chem.Periodic2D, m2.Periodic)
}

func TestReadImplicit2D(Te *testing.T) {
	content := arcfile("ON", frame(0,
		"PBC   10.0000   10.0000    0.0000   90.0000   90.0000  120.0000 (P1)",
		"Si1     1.000000000    1.000000000    1.000000000 CORE 1      si     Si   0.000",
	))
	path := writeFixture(Te, "slab.arc", content)
	m := chem.NewModel()
	require.NoError(Te, Read(path, m, nil))
	assert.Equal(Te, chem.Periodic2D, m.Periodic)
	assert.Equal(Te, 1.0, m.PBC[2])
	assert.InDelta(Te, math.Pi/2, m.PBC[3], 1e-12)
	assert.InDelta(Te, math.Pi/2, m.PBC[4], 1e-12)
	assert.InDelta(Te, 2*math.Pi/3, m.PBC[5], 1e-12)
	assert.True(Te, m.Fractional)
}

func TestShellWrap(Te *testing.T) {
	content := arcfile("ON", frame(0,
		"PBC   10.0000   10.0000   10.0000   90.0000   90.0000   90.0000 (P1)",
		"Mg1     5.000000000    5.000000000    5.000000000 CORE 1      mg     Mg   2.000",
		"Xs1    10.200000000   -0.200000000    5.000000000 CORE 1      o_s    Xs  -2.000",
	))
	path := writeFixture(Te, "shells.arc", content)
	m := chem.NewModel()
	require.NoError(Te, Read(path, m, nil))
	require.Len(Te, m.Shels, 1)
	expected := [3]float64{0.02, 0.98, 0.5}
	for j := 0; j < 3; j++ {
		assert.InDelta(Te, expected[j], m.Shels[0].X[j], 1e-9)
	}
}

func TestWrite2D(Te *testing.T) {
	m := chem.NewModel()
	m.Periodic = chem.Periodic2D
	m.PBC = [6]float64{10, 10, 1, math.Pi / 2, math.Pi / 2, math.Pi / 2}
	m.LatticeInit()
	m.Fractional = true
	a := chem.NewCore("Si", "", chem.PeriodicTable)
	b := chem.NewCore("Si", "", chem.PeriodicTable)
	b.X = [3]float64{0.3, 0, 0}
	m.Cores = []*chem.Core{a, b}
	require.NoError(Te, m.Prep())
	require.InDelta(Te, 1.5, m.Rmax, 1e-9)
	var buf bytes.Buffer
	require.NoError(Te, WriteHeader(&buf, m, nil))
	require.NoError(Te, WriteFrame(&buf, m, &Options{Now: fixedNow}))
	var pbc []string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(l, "PBC ") {
			pbc = strings.Fields(l)
		}
	}
	assert.Contains(Te, buf.String(), "PBC=ON\n")
	//the depth of the pseudo-3D cell encloses the whole structure.
	assert.Equal(Te, []string{"PBC", "10.0000", "10.0000", "3.0000", "90.0000", "90.0000", "90.0000", "(P1)"}, pbc)
}

func TestLargeEnergyRoundTrip(Te *testing.T) {
	for _, e := range []float64{-12345678.5, -123456789.25, 98765432.125} {
		m := chem.NewModel()
		m.Cores = []*chem.Core{chem.NewCore("C", "", chem.PeriodicTable)}
		m.AddRankedProperty(3, "Energy", fmt.Sprintf("%f eV", e))
		var buf bytes.Buffer
		require.NoError(Te, DefaultSignature(&buf, m, DefaultTitle))
		line := strings.TrimSuffix(buf.String(), "\n")
		assert.Equal(Te, byte(' '), line[energyColumn-1])
		assert.InDelta(Te, e, energyField(line), 1e-6)

		path := filepath.Join(Te.TempDir(), "big.arc")
		require.NoError(Te, Write(path, m, &Options{Now: fixedNow}))
		m2 := chem.NewModel()
		require.NoError(Te, Read(path, m2, nil))
		assert.InDelta(Te, e, Energy(m2), 1e-6)
	}
}

//failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestWriteFailure(Te *testing.T) {
	m := chem.NewModel()
	m.Cores = []*chem.Core{chem.NewCore("C", "", chem.PeriodicTable)}
	require.NoError(Te, m.Prep())
	err := WriteFrame(failWriter{}, m, nil)
	assert.ErrorIs(Te, err, ErrWrite)
	assert.True(Te, err.(chem.TrajError).Critical())
	err = WriteHeader(failWriter{}, m, nil)
	assert.ErrorIs(Te, err, ErrWrite)
	err = Write(filepath.Join(Te.TempDir(), "nodir", "out.arc"), m, nil)
	assert.ErrorIs(Te, err, ErrOpen)
}

func TestBlankLineBetweenEnds(Te *testing.T) {
	block := energyLine("", 0) + date +
		"C1      0.000000000    0.000000000    0.000000000 CORE 1      c      C    0.000\n" +
		"end\n\nend\n" +
		"O1      1.200000000    0.000000000    0.000000000 CORE 1      o      O    0.000\nend\nend\n"
	m := chem.NewModel()
	require.NoError(Te, ReadBlock(strings.NewReader(block), m, nil))
	//blank lines don't count, so the two ends close the frame.
	assert.Len(Te, m.Cores, 1)
}
