// Package game implements the round lifecycle of a pass-and-play impostor game.
//
// A round is driven by a Controller, which walks a closed set of phases:
//
//	SETUP -> CUSTOM_WORDS (optional) -> ROLE_DISTRIBUTION -> GAME_ACTIVE -> VOTING
//
// with VOTING -> ROLE_DISTRIBUTION for a new round and any phase -> SETUP for a
// restart.
//
// # Basic Usage
//
//	c := game.NewController(words.NewStaticBank())
//	err := c.SubmitConfig(game.Config{
//	    PlayerNames:   []string{"Ana", "Berto", "Carla", "David"},
//	    ImpostorCount: 1,
//	    HintsEnabled:  true,
//	})
//	for c.Phase() == game.PhaseRoleDistribution {
//	    p, _ := c.CurrentPlayer() // show p's private card
//	    c.NextPlayer()
//	}
//	c.ProceedToVoting()
//	c.RevealResult()
//
// # Deterministic Testing
//
// Role assignment is a pure function of its inputs and a randutil.Source, so
// tests inject a seeded source:
//
//	a, err := game.AssignRoles(cfg, entry, randutil.New(42))
//
// The Controller takes the same source plus a quartz.Clock for the round timer:
//
//	c := game.NewController(bank, game.WithRand(randutil.New(42)), game.WithClock(quartz.NewMock(t)))
package game
