package storage

import (
	"sync"

	"github.com/darkseear/tinylink/internal/models"
)

// MemoryStorage - хранит копию состояния в памяти. Для тестов и случаев,
// когда данные не должны переживать перезапуск.
type MemoryStorage struct {
	mu      sync.Mutex
	state   *models.State
	saves   int
	saveErr error
	loadErr error
}

// NewMemoryStorage - пустое хранилище в памяти.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{state: models.NewState()}
}

// Load возвращает копию хранимого состояния.
func (m *MemoryStorage) Load() (*models.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.state.Clone(), nil
}

// Save сохраняет копию state.
func (m *MemoryStorage) Save(state *models.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = state.Clone()
	m.saves++
	return nil
}

// Close ничего не делает.
func (m *MemoryStorage) Close() error {
	return nil
}

// Saves - число успешных сохранений.
func (m *MemoryStorage) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FailSaves заставляет следующие Save возвращать err; nil возвращает обычную работу.
func (m *MemoryStorage) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// FailLoads заставляет следующие Load возвращать err.
func (m *MemoryStorage) FailLoads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}
