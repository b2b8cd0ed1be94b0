/*
 * topology.go, part of chemloss.
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
	"math"
)

// Bond is a covalent connection between the atoms with indexes A and B,
// with an ideal (equilibrium) length Eq, in Angstroms.
type Bond struct {
	A, B int
	Eq   float64
}

// Angle is an atom triple defining the angle at Vertex between the
// Vertex-A and Vertex-B bond vectors, with an ideal value Eq, in radians.
type Angle struct {
	A, Vertex, B int
	Eq           float64
}

// Ring is an ordered cycle of at least 3 atom indexes whose atoms are
// constrained to be coplanar, as in an aromatic ring.
type Ring []int

// Chiral is a tetrahedral stereocenter: a center atom plus its four
// substituents, in the order that defines the expected handedness. Only the
// first three neighbors enter the signed-volume formula; swapping any two of
// them flips the handedness the penalty enforces.
type Chiral struct {
	Center    int
	Neighbors [4]int
}

// Topology bundles all the structural information TotalLoss needs for one
// molecule. Empty slices are valid and simply remove the corresponding
// penalty term. VdW must have one radius per atom, or be nil if the steric
// clash term is not wanted.
type Topology struct {
	Bonds   []Bond
	Angles  []Angle
	Rings   []Ring
	VdW     []float64
	Chirals []Chiral
}

// Weights holds the coefficients for the terms of the aggregate penalty.
// All must be non-negative.
type Weights struct {
	BondLength    float64
	BondAngle     float64
	RingPlanarity float64
	StericClash   float64
	Chirality     float64
}

// DefaultWeights returns the reference weighting of the penalty terms.
func DefaultWeights() *Weights {
	return &Weights{
		BondLength:    1.0,
		BondAngle:     0.5,
		RingPlanarity: 0.3,
		StericClash:   0.2,
		Chirality:     0.2,
	}
}

// DefClashThreshold is the default fraction of the sum of van der Waals radii
// below which two non-bonded atoms are considered to clash.
const DefClashThreshold = 0.75

func badIndex(i, natoms int) bool {
	return i < 0 || i >= natoms
}

// checkBonds validates a bond list against a molecule of natoms atoms.
func checkBonds(bonds []Bond, natoms int) error {
	for n, b := range bonds {
		if badIndex(b.A, natoms) || badIndex(b.B, natoms) {
			return Error{fmt.Sprintf("chemloss: bond %d (%d-%d): atom index out of range for %d atoms", n, b.A, b.B, natoms), []string{"checkBonds"}, true}
		}
		if b.A == b.B {
			return Error{fmt.Sprintf("chemloss: bond %d: atom %d bonded to itself", n, b.A), []string{"checkBonds"}, true}
		}
		if b.Eq <= 0 || math.IsNaN(b.Eq) || math.IsInf(b.Eq, 0) {
			return Error{fmt.Sprintf("chemloss: bond %d (%d-%d): ideal length %v is not a positive number", n, b.A, b.B, b.Eq), []string{"checkBonds"}, true}
		}
	}
	return nil
}

// checkAngles validates an angle list against a molecule of natoms atoms.
// The ideal angle must lie in the open interval (0, pi).
func checkAngles(angles []Angle, natoms int) error {
	for n, a := range angles {
		if badIndex(a.A, natoms) || badIndex(a.Vertex, natoms) || badIndex(a.B, natoms) {
			return Error{fmt.Sprintf("chemloss: angle %d (%d-%d-%d): atom index out of range for %d atoms", n, a.A, a.Vertex, a.B, natoms), []string{"checkAngles"}, true}
		}
		if a.A == a.Vertex || a.B == a.Vertex || a.A == a.B {
			return Error{fmt.Sprintf("chemloss: angle %d (%d-%d-%d): indexes must be distinct", n, a.A, a.Vertex, a.B), []string{"checkAngles"}, true}
		}
		if !(a.Eq > 0 && a.Eq < math.Pi) {
			return Error{fmt.Sprintf("chemloss: angle %d (%d-%d-%d): ideal angle %v outside (0,pi)", n, a.A, a.Vertex, a.B, a.Eq), []string{"checkAngles"}, true}
		}
	}
	return nil
}

// checkRings validates a ring list against a molecule of natoms atoms.
// Rings may differ in size, but each needs at least 3 atoms.
func checkRings(rings []Ring, natoms int) error {
	for n, r := range rings {
		if len(r) < 3 {
			return Error{fmt.Sprintf("chemloss: ring %d has %d atoms, need at least 3", n, len(r)), []string{"checkRings"}, true}
		}
		for _, at := range r {
			if badIndex(at, natoms) {
				return Error{fmt.Sprintf("chemloss: ring %d: atom index %d out of range for %d atoms", n, at, natoms), []string{"checkRings"}, true}
			}
		}
	}
	return nil
}

// checkChirals validates a chiral-center list against a molecule of natoms
// atoms. The four neighbors must be distinct from each other and from the
// center.
func checkChirals(centers []Chiral, natoms int) error {
	for n, c := range centers {
		if badIndex(c.Center, natoms) {
			return Error{fmt.Sprintf("chemloss: chiral center %d: center index %d out of range for %d atoms", n, c.Center, natoms), []string{"checkChirals"}, true}
		}
		for i, at := range c.Neighbors {
			if badIndex(at, natoms) {
				return Error{fmt.Sprintf("chemloss: chiral center %d: neighbor index %d out of range for %d atoms", n, at, natoms), []string{"checkChirals"}, true}
			}
			if at == c.Center {
				return Error{fmt.Sprintf("chemloss: chiral center %d: neighbor %d equals the center", n, at), []string{"checkChirals"}, true}
			}
			for j := 0; j < i; j++ {
				if c.Neighbors[j] == at {
					return Error{fmt.Sprintf("chemloss: chiral center %d: repeated neighbor %d", n, at), []string{"checkChirals"}, true}
				}
			}
		}
	}
	return nil
}

// checkVdW validates a per-atom radii slice.
func checkVdW(vdw []float64, natoms int) error {
	if len(vdw) != natoms {
		return Error{fmt.Sprintf("chemloss: %d van der Waals radii for %d atoms", len(vdw), natoms), []string{"checkVdW"}, true}
	}
	for i, r := range vdw {
		if r < 0 || math.IsNaN(r) {
			return Error{fmt.Sprintf("chemloss: negative or NaN van der Waals radius %v for atom %d", r, i), []string{"checkVdW"}, true}
		}
	}
	return nil
}

// checkWeights validates a Weights value.
func checkWeights(w *Weights) error {
	vals := []float64{w.BondLength, w.BondAngle, w.RingPlanarity, w.StericClash, w.Chirality}
	names := []string{"bond length", "bond angle", "ring planarity", "steric clash", "chirality"}
	for i, v := range vals {
		if v < 0 || math.IsNaN(v) {
			return Error{fmt.Sprintf("chemloss: negative or NaN weight %v for the %s term", v, names[i]), []string{"checkWeights"}, true}
		}
	}
	return nil
}
