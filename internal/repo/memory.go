package repo

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"
)

// Memory is a Repository held in process memory. It backs DATABASE_URL=memory
// for local runs and the handler tests.
type Memory struct {
	mu      sync.Mutex
	nextID  int
	users   map[string]memUser
	drivers map[int]Driver
}

type memUser struct {
	id    int
	email string
	hash  string
}

func NewMemory() *Memory {
	return &Memory{users: map[string]memUser{}, drivers: map[int]Driver{}}
}

// detached copies d so neither the caller nor the store sees the other's
// later edits to Fields.
func detached(d Driver) Driver {
	d.Fields = maps.Clone(d.Fields)
	return d
}

func (m *Memory) id() int {
	m.nextID++
	return m.nextID
}

func (m *Memory) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for l, u := range m.users {
		if l == login || u.email == email {
			return 0, ErrDuplicate
		}
	}
	u := memUser{id: m.id(), email: email, hash: password}
	m.users[login] = u
	return u.id, nil
}

func (m *Memory) GetBylogin(ctx context.Context, login string) (int, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[login]
	if !ok {
		return 0, "", ErrNotFound
	}
	return u.id, u.hash, nil
}

func (m *Memory) duplicate(d *Driver) bool {
	for _, o := range m.drivers {
		if o.UserID == d.UserID && o.Name == d.Name && o.ID != d.ID {
			return true
		}
	}
	return false
}

func (m *Memory) CreateDriver(ctx context.Context, d *Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = 0
	if m.duplicate(d) {
		return ErrDuplicate
	}
	d.ID = m.id()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	m.drivers[d.ID] = detached(*d)
	return nil
}

func (m *Memory) ListDrivers(ctx context.Context, userID int) ([]Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Driver{}
	for _, d := range m.drivers {
		if d.UserID == userID {
			out = append(out, detached(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetDriver(ctx context.Context, userID, id int) (Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
	if !ok || d.UserID != userID {
		return Driver{}, ErrNotFound
	}
	return detached(d), nil
}

func (m *Memory) UpdateDriver(ctx context.Context, d *Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.drivers[d.ID]
	if !ok || old.UserID != d.UserID {
		return ErrNotFound
	}
	if m.duplicate(d) {
		return ErrDuplicate
	}
	d.CreatedAt = old.CreatedAt
	d.UpdatedAt = time.Now()
	m.drivers[d.ID] = detached(*d)
	return nil
}

func (m *Memory) DeleteDriver(ctx context.Context, userID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
	if !ok || d.UserID != userID {
		return ErrNotFound
	}
	delete(m.drivers, id)
	return nil
}
