/*
 * total.go, part of chemloss.
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

// Terms holds the weighted value of each penalty term of an aggregate
// evaluation, plus their sum. Terms whose topology was empty are zero and
// were never computed.
type Terms struct {
	BondLength    float64
	BondAngle     float64
	RingPlanarity float64
	StericClash   float64
	Chirality     float64
	Total         float64
}

// TotalLossTerms evaluates the aggregate penalty for the molecule described
// by top, returning the per-term breakdown along with the sum. A nil w
// selects DefaultWeights. Terms with empty topology (no rings, no chiral
// centers, and so on) are skipped outright, never evaluated and scaled by
// zero, so an absent feature introduces no spurious gradient path. The
// steric clash term runs whenever vdW radii are present, using the bond list
// as its exclusion set and the default threshold.
//
// If grad is not nil the weighted gradient of the aggregate is added into it.
func TotalLossTerms(coord *v3.Matrix, top *Topology, w *Weights, grad *v3.Matrix) (*Terms, error) {
	if err := checkCoordGrad(coord, grad); err != nil {
		return nil, errDecorate(err, "TotalLossTerms")
	}
	if top == nil {
		return nil, Error{"chemloss: nil topology", []string{"TotalLossTerms"}, true}
	}
	if w == nil {
		w = DefaultWeights()
	}
	if err := checkWeights(w); err != nil {
		return nil, errDecorate(err, "TotalLossTerms")
	}
	t := new(Terms)
	var buf *v3.Matrix
	if grad != nil {
		buf = v3.Zeros(coord.NVecs())
	}
	//accum evaluates one term through f, scales it by weight w and folds
	//value and gradient into the totals.
	accum := func(f func(g *v3.Matrix) (float64, error), weight float64) (float64, error) {
		var g *v3.Matrix
		if grad != nil {
			buf.Zero()
			g = buf
		}
		l, err := f(g)
		if err != nil {
			return 0, err
		}
		if grad != nil {
			buf.Scale(weight, buf)
			grad.Add(grad, buf)
		}
		return weight * l, nil
	}
	var err error
	if len(top.Bonds) > 0 {
		t.BondLength, err = accum(func(g *v3.Matrix) (float64, error) {
			return BondLengthLoss(coord, top.Bonds, g)
		}, w.BondLength)
		if err != nil {
			return nil, errDecorate(err, "TotalLossTerms")
		}
	}
	if len(top.Angles) > 0 {
		t.BondAngle, err = accum(func(g *v3.Matrix) (float64, error) {
			return BondAngleLoss(coord, top.Angles, g)
		}, w.BondAngle)
		if err != nil {
			return nil, errDecorate(err, "TotalLossTerms")
		}
	}
	if len(top.Rings) > 0 {
		t.RingPlanarity, err = accum(func(g *v3.Matrix) (float64, error) {
			return RingPlanarityLoss(coord, top.Rings, g)
		}, w.RingPlanarity)
		if err != nil {
			return nil, errDecorate(err, "TotalLossTerms")
		}
	}
	if len(top.VdW) > 0 {
		t.StericClash, err = accum(func(g *v3.Matrix) (float64, error) {
			return StericClashLoss(coord, top.VdW, top.Bonds, DefClashThreshold, g)
		}, w.StericClash)
		if err != nil {
			return nil, errDecorate(err, "TotalLossTerms")
		}
	}
	if len(top.Chirals) > 0 {
		t.Chirality, err = accum(func(g *v3.Matrix) (float64, error) {
			return ChiralityLoss(coord, top.Chirals, g)
		}, w.Chirality)
		if err != nil {
			return nil, errDecorate(err, "TotalLossTerms")
		}
	}
	t.Total = t.BondLength + t.BondAngle + t.RingPlanarity + t.StericClash + t.Chirality
	return t, nil
}

// TotalLoss is like TotalLossTerms but returns only the aggregate value.
// This is the objective a refinement loop minimizes.
func TotalLoss(coord *v3.Matrix, top *Topology, w *Weights, grad *v3.Matrix) (float64, error) {
	t, err := TotalLossTerms(coord, top, w, grad)
	if err != nil {
		return 0, errDecorate(err, "TotalLoss")
	}
	return t.Total, nil
}
