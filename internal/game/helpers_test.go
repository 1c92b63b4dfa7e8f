package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/impostor/internal/words"
)

// scriptedSource replays fixed random values. Shuffle is the identity, so role
// vectors keep their "impostors first" construction order.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Shuffle(int, func(i, j int)) {}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func airport() words.Entry {
	return words.MustNew("Aeropuerto", "Pista", "Sala de embarque", "Control", "Tiendas", "Torre")
}

func namesN(n int) []string {
	all := []string{"Ana", "Berto", "Carla", "David", "Elena", "Fede", "Gala", "Hugo", "Irene", "Javi"}
	return append([]string(nil), all[:n]...)
}

func mustConfig(t *testing.T, draft Config) Config {
	t.Helper()
	cfg, err := NewConfig(draft)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	return cfg
}
