package chain

import "fmt"

// Chain describes a one-dimensional hanging chain of point masses
// connected by springs. Spring constants and masses are positional:
// springs are counted from the top of the system downward. A Chain is
// built once per invocation and never mutated.
type Chain struct {
	SpringConstants []float64
	Masses          []float64
	FixTop          bool
	FixBottom       bool
}

// New validates and builds a Chain. Both value lists must be
// non-empty, and a bottom-fixed system must have a spring left over
// for the bottom anchor after the top anchor and the inter-mass
// springs are placed.
func New(constants, masses []float64, fixTop, fixBottom bool) (Chain, error) {
	if len(constants) == 0 {
		return Chain{}, fmt.Errorf("%w: spring constants", ErrEmptyList)
	}
	if len(masses) == 0 {
		return Chain{}, fmt.Errorf("%w: masses", ErrEmptyList)
	}

	c := Chain{
		SpringConstants: constants,
		Masses:          masses,
		FixTop:          fixTop,
		FixBottom:       fixBottom,
	}

	if fixBottom && c.SpringSurplus() < 1 {
		return Chain{}, fmt.Errorf("%w: %d springs supplied, %d needed",
			ErrImproperSystem, c.NumSprings(), c.springsNeeded())
	}
	return c, nil
}

func (c Chain) NumSprings() int { return len(c.SpringConstants) }
func (c Chain) NumMasses() int  { return len(c.Masses) }

// springsNeeded counts the springs the topology consumes: one per
// anchor plus one between each adjacent pair of masses.
func (c Chain) springsNeeded() int {
	n := c.NumMasses() - 1
	if c.FixTop {
		n++
	}
	if c.FixBottom {
		n++
	}
	return n
}

// SpringSurplus is the number of springs left after the anchors and
// inter-mass connections are placed. Negative when the system is
// under-supplied.
func (c Chain) SpringSurplus() int {
	surplus := c.NumSprings() - (c.NumMasses() - 1)
	if c.FixTop {
		surplus--
	}
	return surplus
}

// Shift selects the incidence matrix band placement: -1 when the
// system has at least as many springs as masses, 0 otherwise.
func (c Chain) Shift() int {
	if c.NumSprings() >= c.NumMasses() {
		return -1
	}
	return 0
}

// ValidateCounts cross-checks externally declared element counts
// against the parsed value lists.
func (c Chain) ValidateCounts(declSprings, declMasses int) error {
	if declSprings >= 0 && declSprings != c.NumSprings() {
		return fmt.Errorf("%w: num_springs=%d but %d spring constants supplied",
			ErrCountMismatch, declSprings, c.NumSprings())
	}
	if declMasses >= 0 && declMasses != c.NumMasses() {
		return fmt.Errorf("%w: num_masses=%d but %d masses supplied",
			ErrCountMismatch, declMasses, c.NumMasses())
	}
	return nil
}
