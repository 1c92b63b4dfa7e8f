// Package simulator plays rounds headlessly through the game controller and
// aggregates how roles, hints and chaos rounds were distributed.
package simulator

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/impostor/internal/game"
	"github.com/lox/impostor/internal/randutil"
	"github.com/lox/impostor/internal/words"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int
	Seed    int64
	Game    game.Config
	Bank    words.Bank
	Logger  *log.Logger
}

// Stats aggregates the outcome of simulated rounds.
type Stats struct {
	Rounds            int
	ChaosRounds       int
	AllImpostorRounds int
	AllInnocentRounds int
	FallbackRounds    int
	// DistinctHintRounds counts rounds where every hinted impostor got a
	// different hint. Rounds with fewer than two hinted impostors count too.
	DistinctHintRounds int
	ImpostorsBySeat    []int
	StartsBySeat       []int
	Words              map[string]int
}

func newStats(players int) *Stats {
	return &Stats{
		ImpostorsBySeat: make([]int, players),
		StartsBySeat:    make([]int, players),
		Words:           map[string]int{},
	}
}

// ChaosRate returns the fraction of rounds that were chaos rounds.
func (s *Stats) ChaosRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.ChaosRounds) / float64(s.Rounds)
}

// AllImpostorShare returns the fraction of chaos rounds with every player an impostor.
func (s *Stats) AllImpostorShare() float64 {
	if s.ChaosRounds == 0 {
		return 0
	}
	return float64(s.AllImpostorRounds) / float64(s.ChaosRounds)
}

// SeatImpostorRate returns how often the seat (0-based) was an impostor.
func (s *Stats) SeatImpostorRate(seat int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.ImpostorsBySeat[seat]) / float64(s.Rounds)
}

func (s *Stats) merge(o *Stats) {
	s.Rounds += o.Rounds
	s.ChaosRounds += o.ChaosRounds
	s.AllImpostorRounds += o.AllImpostorRounds
	s.AllInnocentRounds += o.AllInnocentRounds
	s.FallbackRounds += o.FallbackRounds
	s.DistinctHintRounds += o.DistinctHintRounds
	for i := range s.ImpostorsBySeat {
		s.ImpostorsBySeat[i] += o.ImpostorsBySeat[i]
		s.StartsBySeat[i] += o.StartsBySeat[i]
	}
	for w, n := range o.Words {
		s.Words[w] += n
	}
}

func (s *Stats) record(sess *game.RoundSession) {
	s.Rounds++
	switch sess.Chaos {
	case game.ChaosAllImpostors:
		s.ChaosRounds++
		s.AllImpostorRounds++
	case game.ChaosAllInnocent:
		s.ChaosRounds++
		s.AllInnocentRounds++
	case game.ChaosNone:
	default:
		panic(fmt.Sprintf("simulator: unhandled chaos kind %v", sess.Chaos))
	}
	if sess.UsedFallback {
		s.FallbackRounds++
	}

	seen := map[string]bool{}
	distinct := true
	for i, p := range sess.Players {
		if p.IsImpostor {
			s.ImpostorsBySeat[i]++
		}
		if p.Name == sess.StartingPlayerName {
			s.StartsBySeat[i]++
		}
		if p.Hint != nil {
			distinct = distinct && !seen[*p.Hint]
			seen[*p.Hint] = true
		}
	}
	if distinct {
		s.DistinctHintRounds++
	}
	s.Words[sess.SelectedWord.Word()]++
}

// String renders a short report.
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds:           %d\n", s.Rounds)
	fmt.Fprintf(&b, "Chaos rounds:     %d (%.2f%%)\n", s.ChaosRounds, 100*s.ChaosRate())
	fmt.Fprintf(&b, "  all impostors:  %d (%.1f%% of chaos)\n", s.AllImpostorRounds, 100*s.AllImpostorShare())
	fmt.Fprintf(&b, "  all innocent:   %d\n", s.AllInnocentRounds)
	fmt.Fprintf(&b, "Distinct hints:   %d\n", s.DistinctHintRounds)
	if s.FallbackRounds > 0 {
		fmt.Fprintf(&b, "Default fallback: %d\n", s.FallbackRounds)
	}
	b.WriteString("Impostor rate by seat:\n")
	for i := range s.ImpostorsBySeat {
		fmt.Fprintf(&b, "  seat %d: %.3f\n", i+1, s.SeatImpostorRate(i))
	}
	return b.String()
}

// Run plays cfg.Rounds rounds split across cfg.Workers goroutines. Each worker
// owns its controller and a source seeded from cfg.Seed, so results are
// reproducible for a given seed and worker count.
func Run(ctx context.Context, cfg Config) (*Stats, error) {
	draft, err := game.NewConfig(cfg.Game)
	if err != nil {
		return nil, err
	}
	// Interactive custom-word confirmation has no place in a headless run.
	draft.CustomWordsMode = false
	if cfg.Bank == nil {
		cfg.Bank = words.NewStaticBank()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	workers := max(1, cfg.Workers)
	if workers > cfg.Rounds {
		workers = max(1, cfg.Rounds)
	}

	started := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	results := make([]*Stats, workers)
	perWorker := cfg.Rounds / workers
	remainder := cfg.Rounds % workers

	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		seed := cfg.Seed + int64(w)
		g.Go(func() error {
			stats, err := runWorker(ctx, cfg, draft, rounds, seed)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := newStats(draft.TotalPlayers())
	for _, r := range results {
		total.merge(r)
	}
	cfg.Logger.Info("Simulation complete",
		"rounds", total.Rounds,
		"workers", workers,
		"chaosRate", fmt.Sprintf("%.4f", total.ChaosRate()),
		"elapsed", time.Since(started))
	return total, nil
}

func runWorker(ctx context.Context, cfg Config, draft game.Config, rounds int, seed int64) (*Stats, error) {
	stats := newStats(draft.TotalPlayers())
	if rounds == 0 {
		return stats, nil
	}

	c := game.NewController(cfg.Bank,
		game.WithRand(randutil.New(seed)),
		game.WithLogger(cfg.Logger))

	if err := c.SubmitConfig(draft); err != nil {
		return nil, err
	}
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 {
			if err := c.NewRound(); err != nil {
				return nil, err
			}
		}
		stats.record(c.Session())

		for c.Phase() == game.PhaseRoleDistribution {
			if err := c.NextPlayer(); err != nil {
				return nil, err
			}
		}
		if err := c.ProceedToVoting(); err != nil {
			return nil, err
		}
		if err := c.RevealResult(); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
