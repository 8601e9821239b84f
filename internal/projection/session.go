package projection

import (
	"sync"

	"github.com/cloud-ru/feasibility-go/internal/metrics"
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Session хранит последний базовый расчёт для отчётов и сценариев.
// Сам движок состояния не хранит; Session нужна транспортному слою.
type Session struct {
	engine *Engine

	mu   sync.RWMutex
	last *model.ProjectionResult
}

// NewSession создаёт сессию поверх движка
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine}
}

// Engine возвращает движок сессии
func (s *Session) Engine() *Engine {
	return s.engine
}

// Calculate выполняет базовый расчёт и запоминает его как последний
func (s *Session) Calculate(in *model.ProjectInputs) *model.ProjectionResult {
	res := s.engine.Calculate(in, nil)
	metrics.ProjectionRuns.WithLabelValues("base").Inc()

	s.mu.Lock()
	s.last = res
	s.mu.Unlock()
	return res
}

// Last возвращает последний базовый расчёт или nil
func (s *Session) Last() *model.ProjectionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Simulate рассчитывает сценарий относительно последнего базового расчёта.
// Сохранённый результат не меняется.
func (s *Session) Simulate(in *model.ProjectInputs, events []model.SimulationEvent) *Simulation {
	metrics.ProjectionRuns.WithLabelValues("simulation").Inc()
	return s.engine.Simulate(s.Last(), in, events)
}

// Sensitivity выполняет анализ чувствительности; без in используются
// параметры последнего расчёта
func (s *Session) Sensitivity(in *model.ProjectInputs) *SensitivityResult {
	if in == nil {
		if last := s.Last(); last != nil {
			in = last.Inputs
		}
	}
	metrics.ProjectionRuns.WithLabelValues("sensitivity").Inc()
	return s.engine.Sensitivity(in)
}
