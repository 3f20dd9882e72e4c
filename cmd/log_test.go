package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcunha/anvil/internal/models"
)

func TestParseSetList(t *testing.T) {
	sets, err := parseSetList("175x5, 205x5,230x5")
	require.NoError(t, err)
	assert.Equal(t, []models.ActualSet{
		{Weight: 175, Reps: 5},
		{Weight: 205, Reps: 5},
		{Weight: 230, Reps: 5},
	}, sets)

	sets, err = parseSetList("102.5x8")
	require.NoError(t, err)
	assert.Equal(t, []models.ActualSet{{Weight: 102.5, Reps: 8}}, sets)

	sets, err = parseSetList("")
	require.NoError(t, err)
	assert.Nil(t, sets)

	_, err = parseSetList("175")
	assert.Error(t, err)
	_, err = parseSetList("heavyx5")
	assert.Error(t, err)
	_, err = parseSetList("175xfive")
	assert.Error(t, err)
}
