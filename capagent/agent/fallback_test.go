package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom always picks the same index, modulo n.
type fixedRandom int

func (r fixedRandom) IntN(n int) int { return int(r) % n }

func TestFallbackResponses(t *testing.T) {
	responses := FallbackResponses("zzz qqq")

	require.Len(t, responses, 5)
	assert.Equal(t, "I understand you're asking about: zzz qqq. How can I help you with that?", responses[0])
	for _, r := range responses[1:] {
		assert.NotContains(t, r, "zzz qqq")
	}
}

func TestFallbackResponder_Respond(t *testing.T) {
	responses := FallbackResponses("anything")
	for i := range responses {
		assert.Equal(t, responses[i], NewFallbackResponder(fixedRandom(i)).Respond("anything"))
	}
}
