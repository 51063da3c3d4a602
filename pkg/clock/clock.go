// Package clock provee la fuente de tiempo inyectable del ledger. Las marcas
// de tiempo deben distinguir llamadas sucesivas para fines de auditoría, por
// eso el reloj de sistema fuerza crecimiento estricto entre llamadas.
package clock

import (
	"sync"
	"time"
)

// Clock fuente de tiempo. El Ledger la recibe por constructor; los tests
// pueden inyectar una implementación controlada.
type Clock interface {
	Now() time.Time
}

// System reloj de sistema en UTC, estrictamente creciente: si dos llamadas
// caen en el mismo instante del sistema operativo, la segunda se adelanta un
// nanosegundo respecto de la anterior.
type System struct {
	mu   sync.Mutex
	last time.Time
}

// NewSystem crea el reloj de sistema.
func NewSystem() *System {
	return &System{}
}

// Now devuelve la hora actual en UTC, siempre posterior a la devuelta en la
// llamada anterior.
func (s *System) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if !now.After(s.last) {
		now = s.last.Add(time.Nanosecond)
	}
	s.last = now
	return now
}
