package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("trims names and keeps order", func(t *testing.T) {
		cfg, err := NewConfig(Config{PlayerNames: []string{" Ana", "Berto ", " Carla "}, ImpostorCount: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Berto", "Carla"}, cfg.PlayerNames)
		assert.Equal(t, 3, cfg.TotalPlayers())
		assert.Equal(t, 2, cfg.MaxImpostors())
	})

	t.Run("does not alias the draft", func(t *testing.T) {
		draft := Config{PlayerNames: namesN(4), ImpostorCount: 1}
		cfg, err := NewConfig(draft)
		require.NoError(t, err)
		draft.PlayerNames[0] = "Zoe"
		assert.Equal(t, "Ana", cfg.PlayerNames[0])
	})

	tests := []struct {
		name      string
		draft     Config
		wantField string
	}{
		{"two players", Config{PlayerNames: namesN(2), ImpostorCount: 1}, "players"},
		{"no players", Config{ImpostorCount: 1}, "players"},
		{"blank name", Config{PlayerNames: []string{"Ana", "  ", "Carla"}, ImpostorCount: 1}, "players"},
		{"zero impostors", Config{PlayerNames: namesN(4), ImpostorCount: 0}, "impostors"},
		{"impostors equal players", Config{PlayerNames: namesN(4), ImpostorCount: 4}, "impostors"},
		{"impostors exceed players", Config{PlayerNames: namesN(4), ImpostorCount: 7}, "impostors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.draft)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestParseNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Ana", "Berto", "Carla"}, ParseNames("  Ana\n\nBerto  \n \nCarla\n"))
	assert.Nil(t, ParseNames("\n \n"))
}
