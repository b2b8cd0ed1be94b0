/*
 * planarity.go, part of chemloss.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// planeNormal returns the unit normal of the best-fit plane of the centered
// coordinates in c (the least-variance direction of their 3x3 scatter
// matrix) together with the smallest eigenvalue of that matrix.
func planeNormal(c *v3.Matrix) (nx, ny, nz, lambda float64, err error) {
	m := c.NVecs()
	var s [6]float64 //xx, xy, xz, yy, yz, zz
	for i := 0; i < m; i++ {
		x, y, z := c.At(i, 0), c.At(i, 1), c.At(i, 2)
		s[0] += x * x
		s[1] += x * y
		s[2] += x * z
		s[3] += y * y
		s[4] += y * z
		s[5] += z * z
	}
	scatter := mat.NewSymDense(3, []float64{
		s[0], s[1], s[2],
		s[1], s[3], s[4],
		s[2], s[4], s[5],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(scatter, true); !ok {
		return 0, 0, 0, 0, Error{"chemloss: eigendecomposition of the ring scatter matrix failed", []string{"planeNormal"}, true}
	}
	var evecs mat.Dense
	eig.VectorsTo(&evecs)
	//eigenvalues come out in ascending order, so the first column is the
	//normal of the best-fit plane.
	return evecs.At(0, 0), evecs.At(1, 0), evecs.At(2, 0), eig.Values(nil)[0], nil
}

// RingPlanarityLoss returns the mean squared perpendicular distance of ring
// atoms from each ring's best-fit plane, averaged first within each ring and
// then across rings. Rings may have different sizes. An empty ring list
// gives 0.
//
// For each ring the atoms are centered on their centroid and the plane
// normal is taken as the eigenvector of the smallest eigenvalue of the 3x3
// scatter matrix. The gradient (added into grad when non-nil) follows from
// first-order eigenvalue perturbation: the sum of squared projections onto
// the normal equals that smallest eigenvalue, so the normal can be treated
// as constant, and the centroid chain-rule term cancels because centered
// coordinates sum to zero.
//
// A ring with collinear or coincident atoms has an ill-defined normal; the
// computation will not crash on such input, but value and gradient are not
// meaningful there.
func RingPlanarityLoss(coord *v3.Matrix, rings []Ring, grad *v3.Matrix) (float64, error) {
	if err := checkCoordGrad(coord, grad); err != nil {
		return 0, errDecorate(err, "RingPlanarityLoss")
	}
	if err := checkRings(rings, coord.NVecs()); err != nil {
		return 0, errDecorate(err, "RingPlanarityLoss")
	}
	if len(rings) == 0 {
		return 0, nil
	}
	invR := 1.0 / float64(len(rings))
	perRing := make([]float64, 0, len(rings))
	for n, ring := range rings {
		m := len(ring)
		invM := 1.0 / float64(m)
		rc := v3.Zeros(m)
		rc.SomeVecs(coord, ring)
		var cx, cy, cz float64
		for i := 0; i < m; i++ {
			cx += rc.At(i, 0)
			cy += rc.At(i, 1)
			cz += rc.At(i, 2)
		}
		cx, cy, cz = cx*invM, cy*invM, cz*invM
		for i := 0; i < m; i++ {
			rc.Set(i, 0, rc.At(i, 0)-cx)
			rc.Set(i, 1, rc.At(i, 1)-cy)
			rc.Set(i, 2, rc.At(i, 2)-cz)
		}
		nx, ny, nz, _, err := planeNormal(rc)
		if err != nil {
			return 0, Error{fmt.Sprintf("chemloss: ring %d: %s", n, err.Error()), []string{"RingPlanarityLoss"}, true}
		}
		var rl float64
		for i, at := range ring {
			proj := rc.At(i, 0)*nx + rc.At(i, 1)*ny + rc.At(i, 2)*nz
			rl += proj * proj
			if grad != nil {
				f := 2 * invR * invM * proj
				addToRow(grad, at, f*nx, f*ny, f*nz)
			}
		}
		perRing = append(perRing, rl*invM)
	}
	return floats.Sum(perRing) * invR, nil
}
