package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(CSquared*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := newUCT(CSquared, 100).evaluate(5.0, 10)
		score2 := newUCT(CSquared, 1000).evaluate(5.0, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.evaluate(0, 10), policy.evaluate(0, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.evaluate(Win*5, 10), policy.evaluate(Loss*5, 10),
			"More rewards should increase exploitation term")
	})
}

func TestComputeReward(t *testing.T) {
	require.Equal(t, Win, computeReward("black", Win, "black"))
	require.Equal(t, Loss, computeReward("black", Win, "white"))
	require.Equal(t, -0.25, computeReward("black", 0.25, "white"))
	require.Zero(t, computeReward("draw", 0, "white"))
}
