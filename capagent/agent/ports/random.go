package agentports

import "time"

// RandomSource supplies randomness to the simulated capabilities and the
// fallback responder. IntN returns a value in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}
