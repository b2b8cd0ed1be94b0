/*
 * numgrad.go, part of chemloss.
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

package chemloss

import (
	"github.com/aguilarq/chemloss/v3"
)

// NumericalGrad computes a brute-force central-difference approximation of
// the gradient of f with respect to the coordinates, displacing every
// coordinate by +-step (1e-5 A if not given). It is meant as a reference to
// validate analytic gradients, and for callers with custom penalty
// functions; the analytic gradients of this package are both exact and much
// cheaper.
func NumericalGrad(coord *v3.Matrix, f func(*v3.Matrix) (float64, error), step ...float64) (*v3.Matrix, error) {
	var h float64 = 1e-5
	if len(step) > 0 {
		h = step[0]
	}
	if coord == nil {
		return nil, Error{"chemloss: nil coordinates", []string{"NumericalGrad"}, true}
	}
	n := coord.NVecs()
	clone := v3.Zeros(n)
	clone.Copy(coord)
	grad := v3.Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			orig := clone.At(i, j)
			clone.Set(i, j, orig+h)
			fpos, err := f(clone)
			if err != nil {
				return nil, errDecorate(err, "NumericalGrad")
			}
			clone.Set(i, j, orig-h)
			fneg, err := f(clone)
			if err != nil {
				return nil, errDecorate(err, "NumericalGrad")
			}
			clone.Set(i, j, orig)
			grad.Set(i, j, (fpos-fneg)/(2*h))
		}
	}
	return grad, nil
}
