package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ProfileKV is the key-value store of one profile.
type ProfileKV struct {
	db      *sql.DB
	profile string
}

// Get returns the value stored under key, or ErrNotFound.
func (p *ProfileKV) Get(key string) (string, error) {
	var value string
	err := p.db.QueryRow(
		"SELECT value FROM kv WHERE profile = ? AND key = ?",
		p.profile, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (p *ProfileKV) Put(key, value string) error {
	_, err := p.db.Exec(
		`INSERT INTO kv (profile, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		p.profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (p *ProfileKV) Delete(key string) error {
	if _, err := p.db.Exec("DELETE FROM kv WHERE profile = ? AND key = ?", p.profile, key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// Memory is an in-process stand-in for the database, used when the SQLite
// file cannot be opened and in tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	games  []GameRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key, or ErrNotFound.
func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Put stores value under key.
func (m *Memory) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// RecordGame keeps a finished game in memory. Duplicate game IDs are ignored.
func (m *Memory) RecordGame(rec GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, g := range m.games {
		if g.GameID == rec.GameID {
			return nil
		}
	}
	rec.ID = int64(len(m.games) + 1)
	m.games = append(m.games, rec)
	return nil
}

// Games returns the recorded games, highest score first.
func (m *Memory) Games() []GameRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]GameRecord, len(m.games))
	copy(out, m.games)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
