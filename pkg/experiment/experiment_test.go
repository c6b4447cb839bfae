package experiment_test

import (
	"testing"

	"lintang/labyrinthx/pkg/experiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner(t *testing.T) {
	t.Run("A* never loses to UCS", func(t *testing.T) {
		s, err := experiment.NewRunner(4, nil).Run(60, 15, 0.65, 100)
		require.NoError(t, err)

		assert.Equal(t, 60, s.Trials)
		assert.Zero(t, s.Errors)
		assert.Zero(t, s.CostMismatches)
		assert.Zero(t, s.ExpansionViolations)
		assert.LessOrEqual(t, s.AStarExpansions, s.UCSExpansions)
		assert.Greater(t, s.Solvable, 0)
		assert.Contains(t, s.String(), "trials:               60")
	})

	t.Run("same seeds same summary", func(t *testing.T) {
		a, err := experiment.NewRunner(3, nil).Run(20, 10, 0.7, 7)
		require.NoError(t, err)
		b, err := experiment.NewRunner(1, nil).Run(20, 10, 0.7, 7)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		_, err := experiment.NewRunner(1, nil).Run(0, 10, 0.5, 1)
		assert.ErrorIs(t, err, experiment.ErrInvalidExperiment)
		_, err = experiment.NewRunner(1, nil).Run(5, 1, 0.5, 1)
		assert.ErrorIs(t, err, experiment.ErrInvalidExperiment)
		_, err = experiment.NewRunner(1, nil).Run(5, 10, 2, 1)
		assert.ErrorIs(t, err, experiment.ErrInvalidExperiment)
	})
}

func TestRunTrial(t *testing.T) {
	res := experiment.RunTrial(experiment.Trial{Seed: 5, N: 8, P: 1})
	require.NoError(t, res.Err)
	assert.True(t, res.Solvable)
	assert.Equal(t, res.UCSCost, res.AStarCost)
	assert.LessOrEqual(t, res.AStarExpansions, res.UCSExpansions)
}
