/*
 * doc.go, part of chemloss.
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

/*Package chemloss implements smooth scalar penalties that measure how far a
candidate 3D molecular geometry deviates from chemically valid structure:
bond lengths, bond angles, aromatic ring planarity, steric (non-bonded)
clashes and tetrahedral chirality, plus a weighted aggregate of the five.

Each penalty is a differentiable function of the atomic coordinates. Along
with the scalar value, every function can produce the analytic gradient of
the penalty with respect to the coordinates, so an external optimizer can
refine a structure by gradient descent. The gradients are hand-derived in
closed form; there is no automatic differentiation involved.

The topology consumed by the penalties (bonds, angle triples, rings, van der
Waals radii, chiral centers) is assumed to be precomputed by the caller, say,
from a force field or a cheminformatics toolkit. chemloss does not read
molecular files nor derive connectivity from a molecular graph.

All functions are pure: they keep no state between calls and never retain
references to their inputs, so a refinement loop can call them repeatedly
with updated coordinates.

Distances are in Angstroms and angles in radians throughout.
*/
package chemloss
