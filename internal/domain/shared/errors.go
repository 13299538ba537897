package shared

import "errors"

// Domain errors shared across round processing

var (
	// ErrNonFiniteState is returned when a computation would leave NaN or
	// Infinity in a team's state
	ErrNonFiniteState = errors.New("non-finite value in state")

	// ErrInvalidSeed is returned when a game is created without a usable seed
	ErrInvalidSeed = errors.New("invalid random seed")

	// ErrInvalidTeamID is returned when a team identifier is empty
	ErrInvalidTeamID = errors.New("invalid team ID")

	// ErrNilDecisions is returned when a round is processed without a
	// decisions bundle for a team
	ErrNilDecisions = errors.New("missing decisions bundle")
)
