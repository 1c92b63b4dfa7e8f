package game

import (
	"errors"
	"testing"

	"github.com/lox/impostor/internal/randutil"
	"github.com/lox/impostor/internal/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRolesScenarioFourPlayers(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, Config{
		PlayerNames:   []string{"Ana", "Berto", "Carla", "David"},
		ImpostorCount: 1,
		HintsEnabled:  true,
	})
	entry := airport()

	a, err := AssignRoles(cfg, entry, &scriptedSource{})
	require.NoError(t, err)
	require.Len(t, a.Players, 4)

	ana := a.Players[0]
	assert.Equal(t, 1, ana.ID)
	assert.Equal(t, "Ana", ana.Name)
	assert.True(t, ana.IsImpostor)
	assert.Nil(t, ana.Word)
	require.NotNil(t, ana.Hint)
	assert.Contains(t, entry.Hints(), *ana.Hint)

	for i, p := range a.Players[1:] {
		assert.Equal(t, i+2, p.ID)
		assert.Equal(t, cfg.PlayerNames[i+1], p.Name)
		assert.False(t, p.IsImpostor)
		require.NotNil(t, p.Word)
		assert.Equal(t, "Aeropuerto", *p.Word)
		assert.Nil(t, p.Hint)
	}
	assert.Equal(t, ChaosNone, a.Chaos)
}

func TestAssignRolesCounts(t *testing.T) {
	t.Parallel()

	entry := airport()
	rng := randutil.New(2024)
	for n := MinPlayers; n <= 10; n++ {
		for c := 1; c < n; c++ {
			for _, hints := range []bool{true, false} {
				cfg := mustConfig(t, Config{PlayerNames: namesN(n), ImpostorCount: c, HintsEnabled: hints})
				a, err := AssignRoles(cfg, entry, rng)
				require.NoError(t, err)
				require.Len(t, a.Players, n)
				assert.Equal(t, c, a.Impostors(), "n=%d c=%d", n, c)
				assert.Len(t, a.Hints, c)

				seen := map[string]bool{}
				for i, p := range a.Players {
					assert.Equal(t, i+1, p.ID)
					assert.Equal(t, cfg.PlayerNames[i], p.Name)
					if !p.IsImpostor {
						require.NotNil(t, p.Word)
						assert.Equal(t, entry.Word(), *p.Word)
						assert.Nil(t, p.Hint)
						continue
					}
					assert.Nil(t, p.Word)
					if !hints {
						assert.Nil(t, p.Hint, "hints disabled but %s got one", p.Name)
						continue
					}
					require.NotNil(t, p.Hint)
					if c <= entry.HintCount() {
						assert.False(t, seen[*p.Hint], "duplicate hint %q with n=%d c=%d", *p.Hint, n, c)
					}
					seen[*p.Hint] = true
				}
			}
		}
	}
}

func TestAssignRolesHintPool(t *testing.T) {
	t.Parallel()

	small := words.MustNew("Barco", "Cubierta", "Ancla", "Mar")

	t.Run("pool exactly matches impostors", func(t *testing.T) {
		pool := words.MustNew("Cine", "Palomitas", "Pantalla", "Oscuro")
		pool3, err := words.New(pool.Word(), pool.Hints()[:3])
		require.NoError(t, err)

		cfg := mustConfig(t, Config{PlayerNames: namesN(4), ImpostorCount: 3, HintsEnabled: true})
		for seed := int64(0); seed < 50; seed++ {
			a, err := AssignRoles(cfg, pool3, randutil.New(seed))
			require.NoError(t, err)

			var got []string
			for _, p := range a.Players {
				if p.IsImpostor {
					require.NotNil(t, p.Hint)
					got = append(got, *p.Hint)
				}
			}
			assert.ElementsMatch(t, pool3.Hints(), got)
		}
	})

	t.Run("more impostors than hints", func(t *testing.T) {
		three, err := words.New(small.Word(), small.Hints()[:3])
		require.NoError(t, err)

		cfg := mustConfig(t, Config{PlayerNames: namesN(6), ImpostorCount: 5, HintsEnabled: true})
		for seed := int64(0); seed < 50; seed++ {
			a, err := AssignRoles(cfg, three, randutil.New(seed))
			require.NoError(t, err)

			counts := map[string]int{}
			for _, p := range a.Players {
				if !p.IsImpostor {
					continue
				}
				require.NotNil(t, p.Hint, "impostor %s got no hint", p.Name)
				assert.Contains(t, three.Hints(), *p.Hint)
				counts[*p.Hint]++
			}
			// The first three draws are distinct, the remaining two repeat.
			assert.Len(t, counts, 3)
			repeated := false
			for _, c := range counts {
				repeated = repeated || c > 1
			}
			assert.True(t, repeated)
		}
	})

	t.Run("disabled hints are still drawn", func(t *testing.T) {
		cfg := mustConfig(t, Config{PlayerNames: namesN(5), ImpostorCount: 2})
		a, err := AssignRoles(cfg, airport(), randutil.New(3))
		require.NoError(t, err)
		require.Len(t, a.Hints, 2)
		assert.NotEqual(t, a.Hints[0], a.Hints[1])
		for _, p := range a.Players {
			assert.Nil(t, p.Hint)
		}
	})
}

func TestAssignRolesChaos(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, Config{PlayerNames: namesN(4), ImpostorCount: 1, HintsEnabled: true, ChaosMode: true})

	t.Run("all impostors", func(t *testing.T) {
		a, err := AssignRoles(cfg, airport(), &scriptedSource{floats: []float64{0.1}, ints: []int{0}})
		require.NoError(t, err)
		assert.Equal(t, ChaosAllImpostors, a.Chaos)
		assert.Equal(t, 4, a.Impostors())

		seen := map[string]bool{}
		for _, p := range a.Players {
			assert.Nil(t, p.Word)
			require.NotNil(t, p.Hint)
			assert.False(t, seen[*p.Hint])
			seen[*p.Hint] = true
		}
	})

	t.Run("all innocent", func(t *testing.T) {
		a, err := AssignRoles(cfg, airport(), &scriptedSource{floats: []float64{0.1}, ints: []int{1}})
		require.NoError(t, err)
		assert.Equal(t, ChaosAllInnocent, a.Chaos)
		assert.Zero(t, a.Impostors())
		assert.Empty(t, a.Hints)
		for _, p := range a.Players {
			require.NotNil(t, p.Word)
			assert.Equal(t, "Aeropuerto", *p.Word)
		}
	})

	t.Run("no trigger above threshold", func(t *testing.T) {
		a, err := AssignRoles(cfg, airport(), &scriptedSource{floats: []float64{ChaosProbability}})
		require.NoError(t, err)
		assert.Equal(t, ChaosNone, a.Chaos)
		assert.Equal(t, 1, a.Impostors())
	})

	t.Run("chaos off never samples the trigger", func(t *testing.T) {
		plain := cfg
		plain.ChaosMode = false
		a, err := AssignRoles(plain, airport(), &scriptedSource{floats: []float64{0.0}})
		require.NoError(t, err)
		assert.Equal(t, ChaosNone, a.Chaos)
	})

	t.Run("trigger rate and split converge", func(t *testing.T) {
		rng := randutil.New(77)
		const trials = 20000
		var chaos, allImpostors int
		for i := 0; i < trials; i++ {
			a, err := AssignRoles(cfg, airport(), rng)
			require.NoError(t, err)
			switch a.Chaos {
			case ChaosAllImpostors:
				chaos++
				allImpostors++
			case ChaosAllInnocent:
				chaos++
			case ChaosNone:
				assert.Equal(t, 1, a.Impostors())
			}
		}
		assert.InDelta(t, ChaosProbability, float64(chaos)/trials, 0.015)
		assert.InDelta(t, 0.5, float64(allImpostors)/float64(chaos), 0.04)
	})
}

func TestAssignRolesUniformSeats(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, Config{PlayerNames: namesN(4), ImpostorCount: 1})
	rng := randutil.New(5)
	counts := make([]int, 4)
	const trials = 20000
	for i := 0; i < trials; i++ {
		a, err := AssignRoles(cfg, airport(), rng)
		require.NoError(t, err)
		for j, p := range a.Players {
			if p.IsImpostor {
				counts[j]++
			}
		}
	}
	for seat, c := range counts {
		assert.InDelta(t, 0.25, float64(c)/trials, 0.02, "seat %d", seat+1)
	}
}

func TestAssignRolesConfigError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"impostors equal players", Config{PlayerNames: namesN(4), ImpostorCount: 4}},
		{"zero impostors", Config{PlayerNames: namesN(4)}},
		{"negative impostors", Config{PlayerNames: namesN(4), ImpostorCount: -1}},
		{"too few players", Config{PlayerNames: namesN(2), ImpostorCount: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssignRoles(tt.cfg, airport(), randutil.New(1))
			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "expected ConfigError, got %v", err)
			assert.Equal(t, tt.cfg.ImpostorCount, cerr.ImpostorCount)
		})
	}
}
