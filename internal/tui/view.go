package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/impostor/internal/game"
)

const noHint = "Sin pista"

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch phase := m.ctrl.Phase(); phase {
	case game.PhaseSetup:
		body = m.viewSetup()
	case game.PhaseCustomWords:
		body = m.viewCustomWords()
	case game.PhaseRoleDistribution:
		body = m.viewDistribution()
	case game.PhaseGameActive:
		body = m.viewGameActive()
	case game.PhaseVoting:
		body = m.viewVoting()
	default:
		panic(fmt.Sprintf("tui: unhandled phase %v", phase))
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("EL IMPOSTOR"))
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusErr {
			b.WriteString(ErrorStyle.Render(m.status))
		} else {
			b.WriteString(SuccessStyle.Render(m.status))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("Jugadores (uno por línea)"))
	b.WriteString("\n")
	b.WriteString(m.names.View())
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d jugadores", len(game.ParseNames(m.names.Value())))))
	b.WriteString("\n")

	b.WriteString(SectionStyle.Render("Opciones"))
	b.WriteString("\n")
	opts := []string{
		fmt.Sprintf("Impostores: ◀ %d ▶", m.impostors),
		"Pistas para impostores: " + onOff(m.hints),
		"Modo caos: " + onOff(m.chaos),
		"Palabras personalizadas: " + onOff(m.custom),
	}
	style := InfoStyle
	if m.focus == focusOptions {
		style = SelectedStyle
	}
	for _, o := range opts {
		b.WriteString(style.Render("  " + o))
		b.WriteString("\n")
	}

	for _, p := range m.setupProblems() {
		b.WriteString(WarningStyle.Render("⚠ " + p))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.focus == focusNames {
		b.WriteString(InfoStyle.Render("tab: opciones • esc: salir"))
	} else {
		b.WriteString(InfoStyle.Render("←/→ impostores • h pistas • x caos • w palabras • g grupo • enter empezar • tab nombres • q salir"))
	}
	return b.String()
}

func (m *Model) viewCustomWords() string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("Añadir palabra personalizada"))
	b.WriteString("\n")
	b.WriteString(m.wordInput.View())
	b.WriteString("\n")
	b.WriteString(m.hintsInput.View())
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Al menos 3 pistas separadas por comas"))
	b.WriteString("\n")

	b.WriteString(SectionStyle.Render(fmt.Sprintf("Palabras guardadas (%d)", len(m.customList))))
	b.WriteString("\n")
	if len(m.customList) == 0 {
		b.WriteString(WarningStyle.Render("No hay palabras personalizadas todavía."))
		b.WriteString("\n")
	}
	for i, e := range m.customList {
		line := fmt.Sprintf("%s: %s", e.Word(), strings.Join(e.Hints(), ", "))
		if i == m.customCursor {
			b.WriteString(SelectedStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("tab cambiar campo • enter añadir • ↑/↓ elegir • ctrl+x borrar • ctrl+s jugar • esc volver"))
	return b.String()
}

func (m *Model) viewDistribution() string {
	sess := m.ctrl.Session()
	player, ok := m.ctrl.CurrentPlayer()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d / %d jugadores", sess.CurrentPlayerIndex+1, len(sess.Players))))
	b.WriteString("\n\n")

	if !m.cardRevealed {
		b.WriteString(CardStyle.Render(fmt.Sprintf("Pasa el dispositivo a\n\n%s", SecretStyle.Render(player.Name))))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("espacio: ver mi rol • esc: reiniciar"))
		return b.String()
	}

	var card string
	if player.IsImpostor {
		hint := noHint
		if player.Hint != nil {
			hint = *player.Hint
		}
		card = ImpostorCardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			player.Name,
			"",
			ImpostorStyle.Render("ERES EL IMPOSTOR"),
			"",
			"Pista: "+SecretStyle.Render(hint),
		))
	} else {
		word := ""
		if player.Word != nil {
			word = *player.Word
		}
		card = InnocentCardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			player.Name,
			"",
			InnocentStyle.Render("AGENTE REGULAR"),
			"",
			"Palabra: "+SecretStyle.Render(word),
		))
	}
	b.WriteString(card)
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("enter: ocultar y pasar"))
	return b.String()
}

func (m *Model) viewGameActive() string {
	sess := m.ctrl.Session()

	var b strings.Builder
	b.WriteString(SectionStyle.Render("FASE DE DISCUSIÓN"))
	b.WriteString("\n\n")
	b.WriteString(TimerStyle.Render(formatElapsed(m.ctrl.Elapsed())))
	b.WriteString("\n\n")
	b.WriteString("Empieza: " + SelectedStyle.Render(sess.StartingPlayerName))
	b.WriteString("\n")
	if sess.UsedFallback {
		b.WriteString(WarningStyle.Render("No había palabras personalizadas; se usó una palabra por defecto."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("enter: votar • r: revelar ya • esc: inicio"))
	return b.String()
}

func (m *Model) viewVoting() string {
	sess := m.ctrl.Session()
	if !sess.RevealDone {
		var b strings.Builder
		b.WriteString(SectionStyle.Render("VOTACIÓN"))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("¿Quién es el impostor?"))
		b.WriteString("\n\n")
		options := make([]string, 0, len(sess.Players)+1)
		options = append(options, "(sin sospechoso)")
		for _, p := range sess.Players {
			options = append(options, p.Name)
		}
		for i, o := range options {
			if i == m.suspectCursor {
				b.WriteString(SelectedStyle.Render("▶ " + o))
			} else {
				b.WriteString("  " + o)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("↑/↓ elegir • enter revelar • esc inicio"))
		return b.String()
	}

	r, err := m.ctrl.Reveal()
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(SectionStyle.Render("Palabra secreta"))
	b.WriteString("\n")
	b.WriteString(SecretStyle.Render(r.Word))
	b.WriteString("\n")

	switch r.Chaos {
	case game.ChaosAllImpostors:
		b.WriteString(WarningStyle.Render("¡CAOS! Todos eran impostores."))
		b.WriteString("\n")
	case game.ChaosAllInnocent:
		b.WriteString(WarningStyle.Render("¡CAOS! No había ningún impostor."))
		b.WriteString("\n")
	case game.ChaosNone:
	default:
		panic(fmt.Sprintf("tui: unhandled chaos kind %v", r.Chaos))
	}

	b.WriteString(SectionStyle.Render("IMPOSTORES"))
	b.WriteString("\n")
	if len(r.Impostors) == 0 {
		b.WriteString(InfoStyle.Render("  ninguno"))
		b.WriteString("\n")
	}
	for _, p := range r.Impostors {
		hint := noHint
		if p.Hint != nil {
			hint = *p.Hint
		}
		b.WriteString(ImpostorStyle.Render("  "+p.Name) + InfoStyle.Render(" ("+hint+")"))
		b.WriteString("\n")
	}

	b.WriteString(SectionStyle.Render("AGENTES REGULARES"))
	b.WriteString("\n")
	if len(r.Innocents) == 0 {
		b.WriteString(InfoStyle.Render("  ninguno"))
		b.WriteString("\n")
	}
	for _, p := range r.Innocents {
		b.WriteString(InnocentStyle.Render("  " + p.Name))
		b.WriteString("\n")
	}

	if r.Suspect != "" {
		b.WriteString("\n")
		if r.SuspectCaught {
			b.WriteString(SuccessStyle.Render(fmt.Sprintf("¡%s era un impostor!", r.Suspect)))
		} else {
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("%s era inocente.", r.Suspect)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("n: nueva ronda (" + itoa(len(sess.Players)) + " jugadores) • h: inicio"))
	return b.String()
}
