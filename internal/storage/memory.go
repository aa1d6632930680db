package storage

import (
	"sync"

	"github.com/vovakirdan/flappy-dash/internal/core"
)

// Memory is a ScoreStore that forgets everything when the process exits.
// It backs sessions that run without a database, such as SSH guests.
type Memory struct {
	mu   sync.Mutex
	best map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{best: make(map[string]int)}
}

// BestScore returns the best score for the game, or 0.
func (m *Memory) BestScore(gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best[gameID], nil
}

// SaveBestScore keeps score if it beats the current best.
func (m *Memory) SaveBestScore(gameID string, score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if score <= 0 || score <= m.best[gameID] {
		return false, nil
	}
	m.best[gameID] = score
	return true, nil
}

var _ core.ScoreStore = (*Memory)(nil)
