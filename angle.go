/*
 * angle.go, part of chemloss.
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
	"math"

	"github.com/aguilarq/chemloss/v3"
)

// BondAngleLoss returns the mean, over the given angle triples, of the
// squared difference between the angle formed at each Vertex in coord and
// the triple's ideal angle, both in radians. An empty angle list gives 0.
//
// The cosine of each angle is clamped away from +-1 before acos, so that
// collinear atoms neither crash nor produce unbounded gradients; vector
// norms are floored in the same spirit. If grad is not nil the gradient of
// the penalty is added into it.
func BondAngleLoss(coord *v3.Matrix, angles []Angle, grad *v3.Matrix) (float64, error) {
	if err := checkCoordGrad(coord, grad); err != nil {
		return 0, errDecorate(err, "BondAngleLoss")
	}
	if err := checkAngles(angles, coord.NVecs()); err != nil {
		return 0, errDecorate(err, "BondAngleLoss")
	}
	if len(angles) == 0 {
		return 0, nil
	}
	inv := 1.0 / float64(len(angles))
	var loss float64
	for _, an := range angles {
		ax, ay, az := rowDiff(coord, an.A, an.Vertex)
		bx, by, bz := rowDiff(coord, an.B, an.Vertex)
		na := norm3(ax, ay, az)
		nb := norm3(bx, by, bz)
		if na < epsilon {
			na = epsilon
		}
		if nb < epsilon {
			nb = epsilon
		}
		dot := ax*bx + ay*by + az*bz
		c := clampCos(dot / (na * nb))
		theta := math.Acos(c)
		diff := theta - an.Eq
		loss += diff * diff
		if grad == nil {
			continue
		}
		//dtheta/dc = -1/sqrt(1-c^2); finite thanks to the clamp.
		common := 2 * inv * diff * (-1.0 / math.Sqrt(1-c*c))
		//dc/da = b/(|a||b|) - c*a/|a|^2, and symmetrically for b.
		gax := common * (bx/(na*nb) - c*ax/(na*na))
		gay := common * (by/(na*nb) - c*ay/(na*na))
		gaz := common * (bz/(na*nb) - c*az/(na*na))
		gbx := common * (ax/(na*nb) - c*bx/(nb*nb))
		gby := common * (ay/(na*nb) - c*by/(nb*nb))
		gbz := common * (az/(na*nb) - c*bz/(nb*nb))
		addToRow(grad, an.A, gax, gay, gaz)
		addToRow(grad, an.B, gbx, gby, gbz)
		addToRow(grad, an.Vertex, -gax-gbx, -gay-gby, -gaz-gbz)
	}
	return loss * inv, nil
}
