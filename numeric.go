/*
 * numeric.go, part of chemloss.
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

//Small shared numeric helpers for the loss functions. All of them work on
//plain float64 triplets to keep the inner loops free of allocations.

package chemloss

import (
	"fmt"
	"math"

	"github.com/aguilarq/chemloss/v3"
)

// epsilon floors the vector norms appearing in denominators, and keeps the
// acos argument away from the poles. Coordinates at that scale (1e-6 A) are
// well below any chemically meaningful precision.
const epsilon = 1e-6

// rowDiff returns the components of row i minus row j of coord.
func rowDiff(coord *v3.Matrix, i, j int) (x, y, z float64) {
	x = coord.At(i, 0) - coord.At(j, 0)
	y = coord.At(i, 1) - coord.At(j, 1)
	z = coord.At(i, 2) - coord.At(j, 2)
	return x, y, z
}

// norm3 returns the Euclidean norm of the vector (x,y,z).
func norm3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// clampCos brings c into [-1+epsilon, 1-epsilon] so acos stays in its domain
// and its derivative stays finite at (near) collinear geometries.
func clampCos(c float64) float64 {
	if c > 1-epsilon {
		return 1 - epsilon
	}
	if c < -1+epsilon {
		return -1 + epsilon
	}
	return c
}

// addToRow adds the vector (x,y,z) into row i of grad.
func addToRow(grad *v3.Matrix, i int, x, y, z float64) {
	grad.Set(i, 0, grad.At(i, 0)+x)
	grad.Set(i, 1, grad.At(i, 1)+y)
	grad.Set(i, 2, grad.At(i, 2)+z)
}

// checkCoordGrad validates coordinates and the optional gradient receiver.
// A nil grad is allowed and means "value only".
func checkCoordGrad(coord, grad *v3.Matrix) error {
	if coord == nil {
		return Error{"chemloss: nil coordinates", []string{"checkCoordGrad"}, true}
	}
	if _, c := coord.Dims(); c != 3 {
		return Error{fmt.Sprintf("chemloss: coordinates have %d columns, want 3", c), []string{"checkCoordGrad"}, true}
	}
	if grad == nil {
		return nil
	}
	gr, gc := grad.Dims()
	if gc != 3 || gr != coord.NVecs() {
		return Error{fmt.Sprintf("chemloss: gradient is %dx%d for %d atoms, want %dx3", gr, gc, coord.NVecs(), coord.NVecs()), []string{"checkCoordGrad"}, true}
	}
	return nil
}
