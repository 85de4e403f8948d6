package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/myhien-tailor/engagement/internal/models"
)

// Memory is an in-process KeyValueStore plus user registry. It backs tests
// and DSN-less development runs; production uses the Postgres implementation
// in internal/database.
type Memory struct {
	mu    sync.RWMutex
	data  map[string]map[string][]byte
	users map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{
		data:  make(map[string]map[string][]byte),
		users: make(map[string]models.User),
	}
}

func (m *Memory) Get(_ context.Context, namespace, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ns, ok := m.data[namespace]
	if !ok {
		return nil, nil
	}

	value, ok := ns[key]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.data[namespace]
	if !ok {
		ns = make(map[string][]byte)
		m.data[namespace] = ns
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	ns[key] = stored
	return nil
}

func (m *Memory) List(_ context.Context, namespace string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string][]byte, len(m.data[namespace]))
	for key, value := range m.data[namespace] {
		out := make([]byte, len(value))
		copy(out, value)
		result[key] = out
	}
	return result, nil
}

// CreateUser registers a user, assigning an ID when absent.
func (m *Memory) CreateUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Login]; ok {
		return ErrDuplicateUser
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users[user.Login] = user
	return nil
}

// FindUser returns (nil, nil) when the login is unknown.
func (m *Memory) FindUser(_ context.Context, login string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[login]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
