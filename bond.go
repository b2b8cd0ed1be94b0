/*
 * bond.go, part of chemloss.
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

// BondLengthLoss returns the mean, over the given bonds, of the squared
// difference between the distance of each bonded pair in coord and the
// bond's ideal length. An empty bond list gives 0.
//
// If grad is not nil it must be an Nx3 matrix; the gradient of the penalty
// with respect to the coordinates is added into it. The gradient on each
// bond is symmetric on the two atoms, as it comes from the distance alone.
func BondLengthLoss(coord *v3.Matrix, bonds []Bond, grad *v3.Matrix) (float64, error) {
	if err := checkCoordGrad(coord, grad); err != nil {
		return 0, errDecorate(err, "BondLengthLoss")
	}
	if err := checkBonds(bonds, coord.NVecs()); err != nil {
		return 0, errDecorate(err, "BondLengthLoss")
	}
	if len(bonds) == 0 {
		return 0, nil
	}
	inv := 1.0 / float64(len(bonds))
	var loss float64
	for _, b := range bonds {
		dx, dy, dz := rowDiff(coord, b.A, b.B)
		d := norm3(dx, dy, dz)
		diff := d - b.Eq
		loss += diff * diff
		if grad == nil {
			continue
		}
		//d(d)/dr_A = (r_A-r_B)/d; the floor keeps a collapsed bond from
		//producing NaNs.
		dn := d
		if dn < epsilon {
			dn = epsilon
		}
		f := 2 * inv * diff / dn
		addToRow(grad, b.A, f*dx, f*dy, f*dz)
		addToRow(grad, b.B, -f*dx, -f*dy, -f*dz)
	}
	return loss * inv, nil
}
