/*
 * clash.go, part of chemloss.
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
	"fmt"

	"github.com/aguilarq/chemloss/v3"
)

// pairKey identifies an unordered atom pair, smaller index first.
type pairKey struct {
	i, j int
}

// exclusionSet builds the set of bonded pairs to be skipped by the clash
// scan, keyed with the smaller index first.
func exclusionSet(bonds []Bond) map[pairKey]bool {
	if len(bonds) == 0 {
		return nil
	}
	excl := make(map[pairKey]bool, len(bonds))
	for _, b := range bonds {
		i, j := b.A, b.B
		if i > j {
			i, j = j, i
		}
		excl[pairKey{i, j}] = true
	}
	return excl
}

// StericClashLoss returns the sum, over all unordered non-bonded atom pairs,
// of the squared clash amount max(0, threshold*(Ri+Rj) - dij), where Ri and
// Rj are the van der Waals radii of the pair and dij its distance in coord.
// Pairs listed in excl (normally the bond list; only the indexes are used,
// excl may be nil) and self pairs are always skipped, whatever their
// distance. A threshold of zero or less selects DefClashThreshold.
//
// The scan is quadratic on the atom count, which is fine for the single
// molecules, with tens to a few hundred atoms, this package is meant for.
// Only pairs actually clashing carry gradient; at the contact distance the
// penalty is flat zero. If grad is not nil the gradient is added into it.
func StericClashLoss(coord *v3.Matrix, vdw []float64, excl []Bond, threshold float64, grad *v3.Matrix) (float64, error) {
	if err := checkCoordGrad(coord, grad); err != nil {
		return 0, errDecorate(err, "StericClashLoss")
	}
	natoms := coord.NVecs()
	if err := checkVdW(vdw, natoms); err != nil {
		return 0, errDecorate(err, "StericClashLoss")
	}
	//only the indexes of the exclusion list matter here, so the ideal
	//lengths are not validated.
	for n, b := range excl {
		if badIndex(b.A, natoms) || badIndex(b.B, natoms) || b.A == b.B {
			return 0, Error{fmt.Sprintf("chemloss: excluded pair %d (%d-%d) invalid for %d atoms", n, b.A, b.B, natoms), []string{"StericClashLoss"}, true}
		}
	}
	if threshold <= 0 {
		threshold = DefClashThreshold
	}
	bonded := exclusionSet(excl)
	var loss float64
	for i := 0; i < natoms; i++ {
		for j := i + 1; j < natoms; j++ {
			if bonded[pairKey{i, j}] {
				continue
			}
			dx, dy, dz := rowDiff(coord, i, j)
			d := norm3(dx, dy, dz)
			clash := threshold*(vdw[i]+vdw[j]) - d
			if clash <= 0 {
				continue
			}
			loss += clash * clash
			if grad == nil {
				continue
			}
			dn := d
			if dn < epsilon {
				dn = epsilon
			}
			//d(clash)/dr_i = -(r_i-r_j)/d
			f := -2 * clash / dn
			addToRow(grad, i, f*dx, f*dy, f*dz)
			addToRow(grad, j, -f*dx, -f*dy, -f*dz)
		}
	}
	return loss, nil
}
