/*
 * chirality.go, part of chemloss.
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

// ChiralityLoss returns the sum, over the given stereocenters, of
// max(0, -V), where V is the signed volume (determinant) of the three
// vectors from the center to its first three neighbors. A center with the
// expected handedness (V >= 0) contributes nothing; an inverted center is
// penalized in proportion to the magnitude of the negative volume. An empty
// center list gives 0.
//
// The neighbor order is part of the chemical definition: swapping two
// neighbors flips the sign of V and therefore which handedness is enforced.
// The fourth neighbor completes the stereocenter but does not enter the
// signed volume, which is already fixed by the first three vectors. If grad
// is not nil the gradient is added into it; only inverted centers carry
// gradient.
func ChiralityLoss(coord *v3.Matrix, centers []Chiral, grad *v3.Matrix) (float64, error) {
	if err := checkCoordGrad(coord, grad); err != nil {
		return 0, errDecorate(err, "ChiralityLoss")
	}
	if err := checkChirals(centers, coord.NVecs()); err != nil {
		return 0, errDecorate(err, "ChiralityLoss")
	}
	var loss float64
	for _, c := range centers {
		n1, n2, n3 := c.Neighbors[0], c.Neighbors[1], c.Neighbors[2]
		x1, y1, z1 := rowDiff(coord, n1, c.Center)
		x2, y2, z2 := rowDiff(coord, n2, c.Center)
		x3, y3, z3 := rowDiff(coord, n3, c.Center)
		//cofactors: the cross products v2xv3, v3xv1 and v1xv2 are the
		//derivatives of the determinant on v1, v2 and v3 respectively.
		c1x, c1y, c1z := y2*z3-z2*y3, z2*x3-x2*z3, x2*y3-y2*x3
		c2x, c2y, c2z := y3*z1-z3*y1, z3*x1-x3*z1, x3*y1-y3*x1
		c3x, c3y, c3z := y1*z2-z1*y2, z1*x2-x1*z2, x1*y2-y1*x2
		vol := x1*c1x + y1*c1y + z1*c1z
		if vol >= 0 {
			continue
		}
		loss -= vol
		if grad == nil {
			continue
		}
		addToRow(grad, n1, -c1x, -c1y, -c1z)
		addToRow(grad, n2, -c2x, -c2y, -c2z)
		addToRow(grad, n3, -c3x, -c3y, -c3z)
		addToRow(grad, c.Center, c1x+c2x+c3x, c1y+c2y+c3y, c1z+c2z+c3z)
	}
	return loss, nil
}
