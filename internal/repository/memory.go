package repository

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps entity records in process memory.
// Used for local development and tests; state is lost on restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]map[string][]byte
	alarms  map[string]time.Time
	legacy  map[string]string
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]map[string][]byte),
		alarms:  make(map[string]time.Time),
		legacy:  make(map[string]string),
	}
}

// Entity returns storage scoped to entityID
func (r *MemoryRepository) Entity(entityID string) EntityStorage {
	return Scope(r, entityID)
}

// GetRecord reads one field of an entity
func (r *MemoryRepository) GetRecord(_ context.Context, entityID, field string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.records[entityID][field]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// PutRecord writes one field of an entity
func (r *MemoryRepository) PutRecord(_ context.Context, entityID, field string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields, ok := r.records[entityID]
	if !ok {
		fields = make(map[string][]byte)
		r.records[entityID] = fields
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	fields[field] = stored
	return nil
}

// SetAlarm replaces the alarm of an entity
func (r *MemoryRepository) SetAlarm(_ context.Context, entityID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alarms[entityID] = at
	return nil
}

// DueAlarms returns entity ids whose alarm time has passed, oldest first
func (r *MemoryRepository) DueAlarms(_ context.Context, now time.Time, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []string
	for id, at := range r.alarms {
		if !at.After(now) {
			due = append(due, id)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		ai, aj := r.alarms[due[i]], r.alarms[due[j]]
		if ai.Equal(aj) {
			return due[i] < due[j]
		}
		return ai.Before(aj)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// SetLegacyCount seeds a legacy flat counter
func (r *MemoryRepository) SetLegacyCount(hashedKey, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.legacy[hashedKey] = value
}

// GetLegacyCount reads a legacy flat counter
func (r *MemoryRepository) GetLegacyCount(_ context.Context, hashedKey string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.legacy[hashedKey]
	return val, ok, nil
}

// Close is a no-op
func (r *MemoryRepository) Close() error {
	return nil
}
