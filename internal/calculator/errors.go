package calculator

import "errors"

var (
	// ErrInsufficientHistory means the series is shorter than the requested window.
	ErrInsufficientHistory = errors.New("insufficient history")
	// ErrNonConvergentIRR means bisection could not bracket or converge on a root.
	ErrNonConvergentIRR = errors.New("irr did not converge")
	// ErrInvalidSimulationInputs means Monte Carlo preconditions are not met.
	ErrInvalidSimulationInputs = errors.New("invalid simulation inputs")
	// ErrEmptySeries means an analyzer received no data.
	ErrEmptySeries = errors.New("empty series")
)
