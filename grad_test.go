/*
 * grad_test.go, part of chemloss.
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

//Finite-difference checks of the analytic gradients, at configurations
//where every loss is away from zero.

package chemloss

import (
	"fmt"
	"math"
	"testing"

	"github.com/aguilarq/chemloss/v3"
)

const gradTol = 1e-6

// maxDiff returns the largest absolute difference between the entries of
// two equally sized matrices.
func maxDiff(a, b *v3.Matrix) float64 {
	var m float64
	for i := 0; i < a.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			d := math.Abs(a.At(i, j) - b.At(i, j))
			if d > m {
				m = d
			}
		}
	}
	return m
}

// checkGradient compares the gradient accumulated by f against the
// central-difference reference at the same coordinates.
func checkGradient(Te *testing.T, name string, coord *v3.Matrix, f func(c *v3.Matrix, g *v3.Matrix) (float64, error)) {
	analytic := v3.Zeros(coord.NVecs())
	l, err := f(coord, analytic)
	if err != nil {
		Te.Fatalf("%s: %v", name, err)
	}
	if l <= 0 {
		Te.Fatalf("%s: gradient check needs a non-zero loss, got %v", name, l)
	}
	numeric, err := NumericalGrad(coord, func(c *v3.Matrix) (float64, error) {
		return f(c, nil)
	})
	if err != nil {
		Te.Fatalf("%s: %v", name, err)
	}
	d := maxDiff(analytic, numeric)
	fmt.Println(name, "loss", l, "max gradient deviation", d)
	if d > gradTol {
		Te.Errorf("%s: analytic and numeric gradients disagree by %v", name, d)
	}
}

// distorted returns a methane-like geometry pushed away from ideality so
// bond and angle losses are clearly non-zero.
func distorted() *v3.Matrix {
	coord, _ := methane()
	coord.Set(1, 0, coord.At(1, 0)+0.21)
	coord.Set(2, 1, coord.At(2, 1)-0.13)
	coord.Set(3, 2, coord.At(3, 2)+0.07)
	return coord
}

func TestBondLengthGradient(Te *testing.T) {
	_, top := methane()
	checkGradient(Te, "BondLengthLoss", distorted(), func(c, g *v3.Matrix) (float64, error) {
		return BondLengthLoss(c, top.Bonds, g)
	})
}

func TestBondAngleGradient(Te *testing.T) {
	_, top := methane()
	checkGradient(Te, "BondAngleLoss", distorted(), func(c, g *v3.Matrix) (float64, error) {
		return BondAngleLoss(c, top.Angles, g)
	})
}

func TestRingPlanarityGradient(Te *testing.T) {
	//a puckered six-ring: alternating out-of-plane displacements keep the
	//eigenvalue gap of the plane fit wide open.
	data := make([]float64, 0, 18)
	for i := 0; i < 6; i++ {
		theta := float64(i) * math.Pi / 3
		z := 0.3
		if i%2 == 0 {
			z = -0.3
		}
		data = append(data, 1.4*math.Cos(theta), 1.4*math.Sin(theta), z)
	}
	coord, _ := v3.NewMatrix(data)
	rings := []Ring{{0, 1, 2, 3, 4, 5}}
	checkGradient(Te, "RingPlanarityLoss", coord, func(c, g *v3.Matrix) (float64, error) {
		return RingPlanarityLoss(c, rings, g)
	})
}

func TestStericClashGradient(Te *testing.T) {
	//three atoms packed well inside their contact distances.
	coord, _ := v3.NewMatrix([]float64{
		0, 0, 0,
		1.6, 0.2, 0,
		0.5, 1.4, 0.3,
	})
	vdw := []float64{1.70, 1.70, 1.20}
	checkGradient(Te, "StericClashLoss", coord, func(c, g *v3.Matrix) (float64, error) {
		return StericClashLoss(c, vdw, nil, 0, g)
	})
}

func TestChiralityGradient(Te *testing.T) {
	//an inverted center, slightly off-axis so no component vanishes.
	coord, _ := v3.NewMatrix([]float64{
		0.1, -0.05, 0.02,
		1.1, 0.1, -0.2,
		0.2, 1.0, 0.15,
		0.3, -0.1, 1.2,
		-0.6, -0.55, -0.5,
	})
	centers := []Chiral{{Center: 0, Neighbors: [4]int{2, 1, 3, 4}}}
	checkGradient(Te, "ChiralityLoss", coord, func(c, g *v3.Matrix) (float64, error) {
		return ChiralityLoss(c, centers, g)
	})
}

func TestTotalGradient(Te *testing.T) {
	coord, top := benzene()
	//bend the ring and squeeze a bond so every active term contributes.
	coord.Set(0, 2, 0.4)
	coord.Set(7, 0, coord.At(7, 0)*0.8)
	coord.Set(7, 1, coord.At(7, 1)*0.8)
	checkGradient(Te, "TotalLoss", coord, func(c, g *v3.Matrix) (float64, error) {
		return TotalLoss(c, top, nil, g)
	})
}
