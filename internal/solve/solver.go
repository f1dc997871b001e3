// Package solve computes the static equilibrium of a hanging
// spring-mass chain from its incidence structure.
//
// The force balance is solved in three pseudo-inverse steps:
//
//	f = Aᵀw   (external load vs spring tensions)
//	w = C e   (tensions vs elongations, Hooke's law)
//	e = A u   (elongations vs mass displacements)
package solve

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/springlab/internal/chain"
	"github.com/san-kum/springlab/internal/matrix"
)

// Options tune a solve. The zero value uses standard gravity and an
// automatic singular value cutoff.
type Options struct {
	Gravity   float64
	Tolerance float64
}

// Solution holds the assembled system and the solved quantities.
type Solution struct {
	Incidence *mat.Dense // A, springs x masses
	Stiffness *mat.Dense // C, diagonal spring constants
	Force     *mat.VecDense

	Tensions      *mat.VecDense // w, one per spring
	Elongations   *mat.VecDense // e, one per spring
	Displacements *mat.VecDense // u, one per mass

	CondA  float64
	CondC  float64
	CondAT float64
}

// Solve assembles the chain's matrices and solves the force balance.
// It is pure: safe to call concurrently, no shared state.
func Solve(ch chain.Chain, opts Options) (*Solution, error) {
	g := opts.Gravity
	if g <= 0 {
		g = matrix.Gravity
	}

	a, err := matrix.Incidence(ch.NumSprings(), ch.NumMasses(), ch.Shift())
	if err != nil {
		return nil, err
	}
	c := matrix.SpringDiag(ch.SpringConstants)
	f := matrix.ForceVector(ch.Masses, g)

	sol := &Solution{Incidence: a, Stiffness: c, Force: f}

	if sol.CondA, err = cond2(a); err != nil {
		return nil, err
	}
	if sol.CondC, err = cond2(c); err != nil {
		return nil, err
	}
	if sol.CondAT, err = cond2(a.T()); err != nil {
		return nil, err
	}

	// f = Aᵀw
	pinvAT, err := pseudoInverse(a.T(), opts.Tolerance)
	if err != nil {
		return nil, err
	}
	w := mat.NewVecDense(ch.NumSprings(), nil)
	w.MulVec(pinvAT, f)
	sol.Tensions = w

	// w = Ce
	pinvC, err := pseudoInverse(c, opts.Tolerance)
	if err != nil {
		return nil, err
	}
	e := mat.NewVecDense(ch.NumSprings(), nil)
	e.MulVec(pinvC, w)
	sol.Elongations = e

	// e = Au
	pinvA, err := pseudoInverse(a, opts.Tolerance)
	if err != nil {
		return nil, err
	}
	u := mat.NewVecDense(ch.NumMasses(), nil)
	u.MulVec(pinvA, e)
	sol.Displacements = u

	return sol, nil
}
