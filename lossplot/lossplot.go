/*
 * lossplot.go, part of chemloss.
 *
 * Copyright 2024 Andres Aguilar <aaguilarq{at}gmailDOTcom>
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

//Package lossplot renders the evolution of the chemloss penalty terms along
//a refinement run. It is a convenience for callers; the core penalties do
//not depend on it.
package lossplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Convergence plots one line per series (a penalty term recorded at each
// refinement iteration) and saves the result as a PNG to filename, to which
// the .png extension is appended. names labels the series in the legend; it
// must have one name per series.
func Convergence(series [][]float64, names []string, title, filename string) error {
	if len(series) == 0 {
		return fmt.Errorf("lossplot: no series given")
	}
	if len(names) != len(series) {
		return fmt.Errorf("lossplot: %d names for %d series", len(names), len(series))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Loss"
	p.Add(plotter.NewGrid())
	for i, s := range series {
		pts := make(plotter.XYs, len(s))
		for k, v := range s {
			pts[k].X = float64(k)
			pts[k].Y = v
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(names[i], l)
	}
	p.Legend.Top = true
	return p.Save(6*vg.Inch, 4*vg.Inch, filename+".png")
}
