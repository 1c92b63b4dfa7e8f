package game

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/impostor/internal/randutil"
	"github.com/lox/impostor/internal/words"
)

// Option configures a Controller during creation.
type Option func(*Controller)

// WithClock sets the clock used for the round timer.
func WithClock(clock quartz.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithRand sets the randomness source. Default is time seeded.
func WithRand(rng randutil.Source) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithLogger sets the logger. Default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller drives the round lifecycle. It owns the current RoundSession
// exclusively; callers read copies and change state only through the
// transition methods. A Controller is not safe for concurrent use.
type Controller struct {
	bank   words.Bank
	rng    randutil.Source
	clock  quartz.Clock
	logger *log.Logger

	phase     Phase
	config    *Config
	session   *RoundSession
	suspect   string
	listeners []Listener
}

// NewController creates a controller in SETUP that draws words from bank.
func NewController(bank words.Bank, opts ...Option) *Controller {
	c := &Controller{
		bank:   bank,
		rng:    randutil.NewTime(),
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
		phase:  PhaseSetup,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithPrefix("game")
	return c
}

// Subscribe registers a listener for phase changes.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Config returns the active round configuration, if one was submitted.
func (c *Controller) Config() (Config, bool) {
	if c.config == nil {
		return Config{}, false
	}
	cfg := *c.config
	cfg.PlayerNames = slices.Clone(c.config.PlayerNames)
	return cfg, true
}

// Session returns a copy of the current round, or nil outside a round.
func (c *Controller) Session() *RoundSession {
	if c.session == nil {
		return nil
	}
	return c.session.clone()
}

// SubmitConfig validates draft and leaves SETUP. Validation errors are
// returned before any round exists.
func (c *Controller) SubmitConfig(draft Config) error {
	if err := c.require(PhaseSetup, "submit config"); err != nil {
		return err
	}
	cfg, err := NewConfig(draft)
	if err != nil {
		return err
	}
	c.config = &cfg
	c.logger.Info("Config accepted",
		"players", cfg.TotalPlayers(),
		"impostors", cfg.ImpostorCount,
		"hints", cfg.HintsEnabled,
		"custom", cfg.CustomWordsMode,
		"chaos", cfg.ChaosMode)

	if cfg.CustomWordsMode {
		c.setPhase(PhaseCustomWords)
		return nil
	}
	return c.startRound()
}

// ConfirmCustomWords starts the round once the custom list has words in it.
func (c *Controller) ConfirmCustomWords() error {
	if err := c.require(PhaseCustomWords, "confirm custom words"); err != nil {
		return err
	}
	custom, err := c.bank.CustomEntries()
	if err != nil {
		return fmt.Errorf("failed to load custom words: %w", err)
	}
	if len(custom) == 0 {
		return ErrNoCustomWords
	}
	return c.startRound()
}

// CurrentPlayer returns the player whose private card is being shown.
func (c *Controller) CurrentPlayer() (Player, bool) {
	if c.phase != PhaseRoleDistribution || c.session.DistributionDone() {
		return Player{}, false
	}
	return c.session.Players[c.session.CurrentPlayerIndex].clone(), true
}

// NextPlayer passes the device on. After the last player the round timer
// starts and the round enters GAME_ACTIVE.
func (c *Controller) NextPlayer() error {
	if err := c.require(PhaseRoleDistribution, "advance player"); err != nil {
		return err
	}
	c.session.CurrentPlayerIndex++
	if !c.session.DistributionDone() {
		return nil
	}

	now := c.clock.Now()
	c.session.RoundStart = &now
	c.logger.Debug("All cards seen", "session", c.session.ID, "starter", c.session.StartingPlayerName)
	c.setPhase(PhaseGameActive)
	return nil
}

// Elapsed returns the time since the discussion started, or zero before that.
func (c *Controller) Elapsed() time.Duration {
	if c.session == nil || c.session.RoundStart == nil {
		return 0
	}
	return c.clock.Since(*c.session.RoundStart)
}

// ProceedToVoting ends the discussion.
func (c *Controller) ProceedToVoting() error {
	return c.toVoting("proceed to voting")
}

// RevealNow skips the rest of the discussion. It lands in VOTING like
// ProceedToVoting; the reveal itself still happens via RevealResult.
func (c *Controller) RevealNow() error {
	return c.toVoting("reveal now")
}

func (c *Controller) toVoting(action string) error {
	if err := c.require(PhaseGameActive, action); err != nil {
		return err
	}
	c.session.RevealDone = false
	c.suspect = ""
	c.setPhase(PhaseVoting)
	return nil
}

// SetSuspect records the group's vote before the reveal. An empty name clears it.
func (c *Controller) SetSuspect(name string) error {
	if err := c.require(PhaseVoting, "vote"); err != nil {
		return err
	}
	if c.session.RevealDone {
		return &TransitionError{Phase: c.phase, Action: "vote after reveal"}
	}
	if name != "" && !slices.ContainsFunc(c.session.Players, func(p Player) bool { return p.Name == name }) {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	c.suspect = name
	return nil
}

// RevealResult discloses the word and the impostors. The round stays in VOTING.
func (c *Controller) RevealResult() error {
	if err := c.require(PhaseVoting, "reveal result"); err != nil {
		return err
	}
	c.session.RevealDone = true
	c.logger.Info("Result revealed",
		"session", c.session.ID,
		"word", c.session.SelectedWord.Word(),
		"impostors", len(c.session.Impostors()),
		"suspect", c.suspect)
	return nil
}

// Reveal describes the outcome of a revealed round.
type Reveal struct {
	Word          string
	Impostors     []Player
	Innocents     []Player
	Suspect       string
	SuspectCaught bool
	Chaos         ChaosKind
}

// Reveal returns the outcome after RevealResult.
func (c *Controller) Reveal() (Reveal, error) {
	if c.phase != PhaseVoting || !c.session.RevealDone {
		return Reveal{}, ErrNotRevealed
	}
	r := Reveal{
		Word:      c.session.SelectedWord.Word(),
		Impostors: c.session.Impostors(),
		Innocents: c.session.Innocents(),
		Suspect:   c.suspect,
		Chaos:     c.session.Chaos,
	}
	r.SuspectCaught = slices.ContainsFunc(r.Impostors, func(p Player) bool { return p.Name == c.suspect })
	return r, nil
}

// NewRound replaces the finished round with a fresh one using the same config.
func (c *Controller) NewRound() error {
	if err := c.require(PhaseVoting, "start new round"); err != nil {
		return err
	}
	return c.startRound()
}

// Restart abandons everything and returns to SETUP. It is legal in any phase.
func (c *Controller) Restart() {
	c.session = nil
	c.config = nil
	c.suspect = ""
	c.setPhase(PhaseSetup)
}

// startRound builds a brand new session from the current config.
func (c *Controller) startRound() error {
	sel, err := words.Select(c.bank, c.config.CustomWordsMode, c.rng)
	if err != nil {
		return fmt.Errorf("failed to select word: %w", err)
	}
	if sel.Fallback {
		c.logger.Warn("Custom word list is empty, using default words")
	}

	assignment, err := AssignRoles(*c.config, sel.Entry, c.rng)
	if err != nil {
		return fmt.Errorf("failed to assign roles: %w", err)
	}

	c.session = &RoundSession{
		ID:                 uuid.NewString(),
		Players:            assignment.Players,
		SelectedWord:       sel.Entry,
		StartingPlayerName: randutil.Choice(c.rng, assignment.Players).Name,
		Chaos:              assignment.Chaos,
		UsedFallback:       sel.Fallback,
		Hints:              assignment.Hints,
	}
	c.suspect = ""

	c.logger.Debug("Round started",
		"session", c.session.ID,
		"chaos", assignment.Chaos,
		"impostors", assignment.Impostors(),
		"custom", sel.Custom)
	c.setPhase(PhaseRoleDistribution)
	return nil
}

func (c *Controller) require(phase Phase, action string) error {
	if c.phase != phase {
		return &TransitionError{Phase: c.phase, Action: action}
	}
	return nil
}

func (c *Controller) setPhase(to Phase) {
	if !to.Valid() {
		panic(fmt.Sprintf("game: unknown phase %v", to))
	}
	from := c.phase
	c.phase = to
	if to == PhaseRoleDistribution {
		c.session.CurrentPlayerIndex = 0
	}

	ev := Event{From: from, To: to, Timestamp: c.clock.Now()}
	if c.session != nil {
		ev.SessionID = c.session.ID
	}
	c.logger.Debug("Phase change", "from", from, "to", to, "session", ev.SessionID)
	for _, l := range c.listeners {
		l(ev)
	}
}
