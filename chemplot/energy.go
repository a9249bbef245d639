/*
 * energy.go, part of biosym.
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

//Package chemplot produces plots for data obtained from trajectories,
//currently the energy profile of an ARC trajectory.
package chemplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicEnergyPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Energy (eV)"
	p.Add(plotter.NewGrid())
	return p
}

//EnergyPlot builds a plot of energy vs. frame number for each series in data.
//names, if not nil, must have a name for each series, and they are used
//for the legend.
func EnergyPlot(data [][]float64, names []string, title string) (*plot.Plot, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("EnergyPlot: no data to plot")
	}
	if names != nil && len(names) < len(data) {
		return nil, fmt.Errorf("EnergyPlot: %d series but only %d names", len(data), len(names))
	}
	p := basicEnergyPlot(title)
	for key, energies := range data {
		pts := make(plotter.XYs, len(energies))
		for i, e := range energies {
			pts[i].X = float64(i)
			pts[i].Y = e
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		r, g, b := colors(key, len(data))
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		line.Color = c
		points.Color = c
		p.Add(line, points)
		if names != nil {
			p.Legend.Add(names[key], line, points)
		}
	}
	return p, nil
}

//EnergyPlotFile saves the plot of EnergyPlot as filename. The format is
//taken from the extension (png, svg, pdf...). width and height are in cm,
//and 0 means 12.
func EnergyPlotFile(data [][]float64, names []string, title, filename string, width, height float64) error {
	p, err := EnergyPlot(data, names, title)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = 12
	}
	if height <= 0 {
		height = 12
	}
	return p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, filename)
}
