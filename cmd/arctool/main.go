/*
 * main.go, part of biosym.
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

//arctool reads BIOSYM CAR/ARC files. It prints a summary of the file
//and the energy of each frame, and can re-write a frame, plot the
//energy profile and dump the cores of a frame as JSON.
//
//	arctool [-config file.toml] [-frame n] [-out file] [-plot file.png] [-json] input.arc
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	chem "github.com/rmera/biosym"
	"github.com/rmera/biosym/chemplot"
	"github.com/rmera/biosym/traj/arc"
	"gonum.org/v1/gonum/floats"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("arctool: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("arctool", flag.ContinueOnError)
	cfgfile := fs.String("config", "", "TOML configuration file")
	frame := fs.Int("frame", -1, "frame to select (0-based). Overrides the configuration")
	out := fs.String("out", "", "write the selected frame to this ARC file (.gz and .zst are compressed)")
	plotfile := fs.String("plot", "", "plot the energy of each frame to this file (png, svg, pdf)")
	dumpjson := fs.Bool("json", false, "dump the cores of the selected frame as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	input := fs.Arg(0)
	cfg, err := LoadConfig(*cfgfile)
	if err != nil {
		return err
	}
	if *frame >= 0 {
		cfg.Frame = *frame
	}
	opts := &arc.Options{Title: cfg.Title, CompressionLevel: cfg.CompressionLevel}

	m := chem.NewModel()
	m.CurFrame = cfg.Frame
	if err := arc.Read(input, m, opts); err != nil {
		return err
	}
	if cfg.Frame >= m.NumFrames {
		return fmt.Errorf("frame %d requested, but %s has %d frame(s)", cfg.Frame, input, m.NumFrames)
	}
	energies, err := frameEnergies(input, opts)
	if err != nil {
		return err
	}
	if *dumpjson {
		if err := dumpCores(stdout, m); err != nil {
			return err
		}
	} else {
		summary(stdout, m, energies)
	}
	if *out != "" {
		if err := arc.Write(*out, m, opts); err != nil {
			return err
		}
	}
	if *plotfile != "" && len(energies) > 0 {
		err := chemplot.EnergyPlotFile([][]float64{energies}, nil, m.Basename, *plotfile, cfg.PlotWidth, cfg.PlotHeight)
		if err != nil {
			return err
		}
	}
	return nil
}

//frameEnergies goes through every frame in the file and returns its energy.
//Truncated frames are reported and counted with whatever energy they had.
func frameEnergies(filename string, opts *arc.Options) ([]float64, error) {
	traj, err := arc.New(filename, opts)
	if err != nil {
		return nil, err
	}
	defer traj.Close()
	var ret []float64
	fm := chem.NewModel()
	for {
		err := traj.Next(fm)
		if err != nil {
			var last chem.LastFrameError
			if errors.As(err, &last) {
				break
			}
			if e, ok := err.(chem.TrajError); ok && !e.Critical() {
				log.Printf("frame %d: %s", traj.Frames()-1, err.Error())
			} else {
				return nil, err
			}
		}
		ret = append(ret, arc.Energy(fm))
	}
	return ret, nil
}

func summary(w io.Writer, m *chem.Model, energies []float64) {
	fmt.Fprintf(w, "File: %s\n", m.Filename)
	fmt.Fprintf(w, "Frames: %d (showing frame %d)\n", m.NumFrames, m.CurFrame)
	fmt.Fprintf(w, "Periodicity: %s\n", m.Periodic)
	if m.Periodic != chem.NonPeriodic {
		fmt.Fprintf(w, "Cell: %.4f %.4f %.4f %.2f %.2f %.2f\n", m.PBC[0], m.PBC[1], m.PBC[2],
			chem.Rad2Deg(m.PBC[3]), chem.Rad2Deg(m.PBC[4]), chem.Rad2Deg(m.PBC[5]))
	}
	fmt.Fprintf(w, "Cores: %d Shells: %d Molecules: %d\n", len(m.Cores), len(m.Shels), len(m.Moles))
	var used []string
	for i, e := range m.RegionEmpty {
		if !e {
			used = append(used, fmt.Sprint(i+1))
		}
	}
	if len(used) > 0 {
		fmt.Fprintf(w, "Regions: %s\n", strings.Join(used, " "))
	}
	fmt.Fprintf(w, "Rmax: %.4f\n", m.Rmax)
	if len(energies) == 0 {
		return
	}
	fmt.Fprintln(w, "Frame      Energy (eV)")
	for i, e := range energies {
		fmt.Fprintf(w, "%5d %16.6f\n", i, e)
	}
	fmt.Fprintf(w, "Min: %.6f Max: %.6f Mean: %.6f\n", floats.Min(energies), floats.Max(energies),
		floats.Sum(energies)/float64(len(energies)))
}

//jsonCore is what gets written for each core with -json.
type jsonCore struct {
	Label  string
	Symbol string
	Type   string
	Mass   float64
	Coords [3]float64 //cartesian
	Charge float64
	Region int
}

func dumpCores(w io.Writer, m *chem.Model) error {
	cores := make([]jsonCore, 0, len(m.Cores))
	for _, c := range m.Cores {
		if c.Deleted {
			continue
		}
		x := c.X
		if m.Fractional {
			m.Cartesian(&x)
		}
		cores = append(cores, jsonCore{
			Label:  c.Label,
			Symbol: c.Symbol(),
			Type:   c.Type,
			Mass:   chem.Mass(c.Code),
			Coords: x,
			Charge: c.Charge,
			Region: c.Region,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cores); err != nil {
		return fmt.Errorf("failed to encode cores as JSON: %w", err)
	}
	return nil
}
