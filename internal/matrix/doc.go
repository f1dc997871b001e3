// Package matrix assembles the dense matrices describing a
// one-dimensional spring-mass chain:
//
//   - [Difference]: the legacy difference matrix with its -1/+1 bands,
//     honoring the requested shape or, with [WithLegacyFixedShape],
//     reproducing the historical fixed 4x4 construction range.
//   - [Incidence]: the generalized banded spring-to-mass connectivity
//     matrix used by the solver.
//   - [SpringDiag] and [ForceVector]: the Hooke's law stiffness
//     diagonal and the gravity load vector.
//
// All constructors are pure and return recoverable errors for invalid
// shapes rather than writing out of bounds.
package matrix
