package procurement

import "sync"

// Sessions guarda en memoria el asistente en curso por operador. El estado de
// un registro vive solo durante su sesión: sin durabilidad, un operador por
// registro (no se modela edición concurrente dentro de una sesión).
type Sessions struct {
	mu         sync.Mutex
	byOperator map[string]*Workflow
}

// NewSessions construye el almacén de sesiones vacío.
func NewSessions() *Sessions {
	return &Sessions{byOperator: make(map[string]*Workflow)}
}

// Get devuelve el asistente del operador, creándolo en etapa 1 si no existe.
func (s *Sessions) Get(operatorID string) *Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.byOperator[operatorID]
	if !ok {
		w = NewWorkflow()
		s.byOperator[operatorID] = w
	}
	return w
}

// Start descarta cualquier asistente previo del operador y arranca uno fresco.
func (s *Sessions) Start(operatorID string) *Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := NewWorkflow()
	s.byOperator[operatorID] = w
	return w
}

// End elimina la sesión del operador.
func (s *Sessions) End(operatorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byOperator, operatorID)
}
