package cluster

import "errors"

var (
	// ErrInvalidTeamSize is returned when a fork asks for zero or fewer cores.
	ErrInvalidTeamSize = errors.New("cluster: team size must be positive")

	// ErrTeamTooLarge is returned when a fork asks for more cores than the
	// cluster has. A barrier over more cores than can run at once would
	// never release.
	ErrTeamTooLarge = errors.New("cluster: team larger than cluster")

	// ErrOutOfScratch is returned when a scratch request exceeds the
	// remaining L1 budget.
	ErrOutOfScratch = errors.New("cluster: out of scratch memory")
)
