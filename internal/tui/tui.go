// Package tui is the pass-and-play terminal front end. It renders whatever the
// game controller reports and turns key presses into controller transitions;
// it never edits round state itself.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/impostor/internal/game"
	"github.com/lox/impostor/internal/store"
	"github.com/lox/impostor/internal/words"
)

// WordBank is the editable custom word list shown on the custom words screen.
type WordBank interface {
	List() ([]words.Entry, error)
	Add(word string, hints []string) (words.Entry, error)
	Remove(word string) (bool, error)
}

// GroupSource lists saved player groups for the setup screen.
type GroupSource interface {
	List() ([]store.Group, error)
}

// Defaults prefill the setup screen.
type Defaults struct {
	Players   []string
	Impostors int
	Hints     bool
	Chaos     bool
	Custom    bool
}

// Options configures the model.
type Options struct {
	Words    WordBank
	Groups   GroupSource
	Logger   *log.Logger
	Defaults Defaults
}

type setupFocus int

const (
	focusNames setupFocus = iota
	focusOptions
)

type wordFocus int

const (
	focusWord wordFocus = iota
	focusHints
)

// tickMsg refreshes the discussion timer.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model for a game night on one device
type Model struct {
	ctrl   *game.Controller
	words  WordBank
	groups GroupSource
	logger *log.Logger

	// Setup form
	names      textarea.Model
	impostors  int
	hints      bool
	chaos      bool
	custom     bool
	focus      setupFocus
	groupIndex int

	// Custom words form
	wordInput    textinput.Model
	hintsInput   textinput.Model
	wordFocus    wordFocus
	customList   []words.Entry
	customCursor int

	// Role distribution: whether the current player's card is face up
	cardRevealed bool

	// Voting: 0 means no suspect, i means player i
	suspectCursor int

	status    string
	statusErr bool

	width    int
	height   int
	quitting bool
}

// New creates a model driving ctrl.
func New(ctrl *game.Controller, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ta := textarea.New()
	ta.Placeholder = "Ana\nBerto\nCarla\nDavid..."
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetWidth(40)
	ta.SetValue(strings.Join(opts.Defaults.Players, "\n"))
	ta.Focus()

	wi := textinput.New()
	wi.Placeholder = "Palabra secreta"
	wi.Prompt = "Palabra > "
	wi.CharLimit = 60
	wi.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	hi := textinput.New()
	hi.Placeholder = "Pista 1, Pista 2, Pista 3"
	hi.Prompt = "Pistas  > "
	hi.CharLimit = 300
	hi.PromptStyle = wi.PromptStyle

	return &Model{
		ctrl:       ctrl,
		words:      opts.Words,
		groups:     opts.Groups,
		logger:     logger.WithPrefix("tui"),
		names:      ta,
		impostors:  max(1, opts.Defaults.Impostors),
		hints:      opts.Defaults.Hints,
		chaos:      opts.Defaults.Chaos,
		custom:     opts.Defaults.Custom,
		wordInput:  wi,
		hintsInput: hi,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.names.SetWidth(min(60, max(20, msg.Width-4)))
		return m, nil

	case tickMsg:
		// Keep ticking only while the discussion is running.
		if m.ctrl.Phase() == game.PhaseGameActive {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch phase := m.ctrl.Phase(); phase {
	case game.PhaseSetup:
		return m.updateSetup(msg)
	case game.PhaseCustomWords:
		return m.updateCustomWords(msg)
	case game.PhaseRoleDistribution:
		return m.updateDistribution(msg)
	case game.PhaseGameActive:
		return m.updateGameActive(msg)
	case game.PhaseVoting:
		return m.updateVoting(msg)
	default:
		panic(fmt.Sprintf("tui: unhandled phase %v", phase))
	}
}

// updateInputs forwards non-key messages such as cursor blinks to whichever
// input is focused.
func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ctrl.Phase() {
	case game.PhaseSetup:
		if m.focus == focusNames {
			m.names, cmd = m.names.Update(msg)
		}
	case game.PhaseCustomWords:
		if m.wordFocus == focusWord {
			m.wordInput, cmd = m.wordInput.Update(msg)
		} else {
			m.hintsInput, cmd = m.hintsInput.Update(msg)
		}
	case game.PhaseRoleDistribution, game.PhaseGameActive, game.PhaseVoting:
	default:
		panic(fmt.Sprintf("tui: unhandled phase %v", m.ctrl.Phase()))
	}
	return m, cmd
}

func (m *Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusNames {
		switch msg.String() {
		case "tab":
			m.focus = focusOptions
			m.names.Blur()
			return m, nil
		case "esc":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.names, cmd = m.names.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		m.focus = focusNames
		return m, m.names.Focus()
	case "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "-":
		m.impostors = max(1, m.impostors-1)
	case "right", "+":
		m.impostors = min(m.maxImpostors(), m.impostors+1)
	case "h":
		m.hints = !m.hints
	case "x":
		m.chaos = !m.chaos
	case "w":
		m.custom = !m.custom
	case "g":
		m.loadNextGroup()
	case "enter":
		return m, m.submitSetup()
	}
	return m, nil
}

func (m *Model) maxImpostors() int {
	return max(1, len(game.ParseNames(m.names.Value()))-1)
}

// setupProblems mirrors config validation so problems show before submitting.
func (m *Model) setupProblems() []string {
	n := len(game.ParseNames(m.names.Value()))
	var problems []string
	if n < game.MinPlayers {
		problems = append(problems, fmt.Sprintf("Se necesitan al menos %d jugadores.", game.MinPlayers))
	}
	if n > 0 && m.impostors >= n {
		problems = append(problems, "Los impostores no pueden igualar o superar el total de jugadores.")
	}
	return problems
}

func (m *Model) loadNextGroup() {
	if m.groups == nil {
		m.setStatus("No hay grupos guardados.", false)
		return
	}
	groups, err := m.groups.List()
	if err != nil {
		m.logger.Error("Failed to load player groups", "error", err)
		m.setStatus("No se pudieron cargar los grupos: "+err.Error(), true)
		return
	}
	if len(groups) == 0 {
		m.setStatus("No hay grupos guardados.", false)
		return
	}
	g := groups[m.groupIndex%len(groups)]
	m.groupIndex++
	m.names.SetValue(strings.Join(g.Players, "\n"))
	m.impostors = min(m.impostors, m.maxImpostors())
	m.setStatus(fmt.Sprintf("Grupo '%s' cargado.", g.Name), false)
}

func (m *Model) submitSetup() tea.Cmd {
	err := m.ctrl.SubmitConfig(game.Config{
		PlayerNames:     game.ParseNames(m.names.Value()),
		ImpostorCount:   m.impostors,
		HintsEnabled:    m.hints,
		CustomWordsMode: m.custom,
		ChaosMode:       m.chaos,
	})
	if err != nil {
		m.logger.Debug("Setup rejected", "error", err)
		m.setStatus(err.Error(), true)
		return nil
	}
	m.clearStatus()
	m.cardRevealed = false

	if m.ctrl.Phase() == game.PhaseCustomWords {
		m.refreshCustomList()
		m.wordFocus = focusWord
		m.hintsInput.Blur()
		return m.wordInput.Focus()
	}
	return nil
}

func (m *Model) updateCustomWords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.restart()
		return m, m.names.Focus()
	case "tab":
		return m, m.toggleWordFocus()
	case "up":
		m.customCursor = max(0, m.customCursor-1)
		return m, nil
	case "down":
		m.customCursor = max(0, min(len(m.customList)-1, m.customCursor+1))
		return m, nil
	case "ctrl+x":
		m.removeSelectedWord()
		return m, nil
	case "ctrl+s":
		m.confirmCustomWords()
		return m, nil
	case "enter":
		if m.wordFocus == focusWord {
			return m, m.toggleWordFocus()
		}
		m.addCustomWord()
		return m, m.focusWordInput()
	}

	var cmd tea.Cmd
	if m.wordFocus == focusWord {
		m.wordInput, cmd = m.wordInput.Update(msg)
	} else {
		m.hintsInput, cmd = m.hintsInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleWordFocus() tea.Cmd {
	if m.wordFocus == focusWord {
		m.wordFocus = focusHints
		m.wordInput.Blur()
		return m.hintsInput.Focus()
	}
	return m.focusWordInput()
}

func (m *Model) focusWordInput() tea.Cmd {
	m.wordFocus = focusWord
	m.hintsInput.Blur()
	return m.wordInput.Focus()
}

func (m *Model) refreshCustomList() {
	if m.words == nil {
		m.customList = nil
		return
	}
	list, err := m.words.List()
	if err != nil {
		m.logger.Error("Failed to load custom words", "error", err)
		m.setStatus("No se pudieron cargar las palabras: "+err.Error(), true)
		return
	}
	m.customList = list
	m.customCursor = max(0, min(m.customCursor, len(list)-1))
}

func (m *Model) addCustomWord() {
	if m.words == nil {
		m.setStatus("No hay banco de palabras configurado.", true)
		return
	}
	entry, err := m.words.Add(m.wordInput.Value(), words.ParseHints(m.hintsInput.Value()))
	if err != nil {
		var verr *words.ValidationError
		switch {
		case errors.As(err, &verr):
			m.setStatus(verr.Error(), true)
		case errors.Is(err, store.ErrDuplicateWord):
			m.setStatus("Esa palabra ya existe.", true)
		default:
			m.logger.Error("Failed to add custom word", "error", err)
			m.setStatus("Error al guardar: "+err.Error(), true)
		}
		return
	}
	m.logger.Info("Custom word added", "word", entry.Word(), "hints", entry.HintCount())
	m.wordInput.Reset()
	m.hintsInput.Reset()
	m.refreshCustomList()
	m.setStatus(fmt.Sprintf("'%s' guardada.", entry.Word()), false)
}

func (m *Model) removeSelectedWord() {
	if m.words == nil || len(m.customList) == 0 {
		return
	}
	word := m.customList[m.customCursor].Word()
	if _, err := m.words.Remove(word); err != nil {
		m.logger.Error("Failed to remove custom word", "word", word, "error", err)
		m.setStatus("Error al borrar: "+err.Error(), true)
		return
	}
	m.refreshCustomList()
	m.setStatus(fmt.Sprintf("'%s' eliminada.", word), false)
}

func (m *Model) confirmCustomWords() {
	err := m.ctrl.ConfirmCustomWords()
	switch {
	case errors.Is(err, game.ErrNoCustomWords):
		m.setStatus("Añade al menos una palabra.", true)
	case err != nil:
		m.logger.Error("Failed to start round", "error", err)
		m.setStatus(err.Error(), true)
	default:
		m.clearStatus()
		m.cardRevealed = false
	}
}

func (m *Model) updateDistribution(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.restart()
		return m, m.names.Focus()
	case " ", "enter":
		if !m.cardRevealed {
			m.cardRevealed = true
			return m, nil
		}
		m.cardRevealed = false
		if err := m.ctrl.NextPlayer(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		if m.ctrl.Phase() == game.PhaseGameActive {
			return m, tick()
		}
	}
	return m, nil
}

func (m *Model) updateGameActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch msg.String() {
	case "esc":
		m.restart()
		return m, m.names.Focus()
	case "enter", "v":
		err = m.ctrl.ProceedToVoting()
	case "r":
		err = m.ctrl.RevealNow()
	default:
		return m, nil
	}
	if err != nil {
		m.setStatus(err.Error(), true)
	}
	m.suspectCursor = 0
	return m, nil
}

func (m *Model) updateVoting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess := m.ctrl.Session()
	if sess.RevealDone {
		switch msg.String() {
		case "n":
			if err := m.ctrl.NewRound(); err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			m.clearStatus()
			m.cardRevealed = false
			m.suspectCursor = 0
		case "h", "esc":
			m.restart()
			return m, m.names.Focus()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.restart()
		return m, m.names.Focus()
	case "up":
		m.suspectCursor = max(0, m.suspectCursor-1)
	case "down":
		m.suspectCursor = min(len(sess.Players), m.suspectCursor+1)
	case "enter":
		suspect := ""
		if m.suspectCursor > 0 {
			suspect = sess.Players[m.suspectCursor-1].Name
		}
		if err := m.ctrl.SetSuspect(suspect); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		if err := m.ctrl.RevealResult(); err != nil {
			m.setStatus(err.Error(), true)
		}
	}
	return m, nil
}

func (m *Model) restart() {
	m.ctrl.Restart()
	m.focus = focusNames
	m.cardRevealed = false
	m.suspectCursor = 0
	m.clearStatus()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// formatElapsed renders a duration as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func onOff(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

func itoa(n int) string { return strconv.Itoa(n) }
