package repository

import (
	"context"
	"errors"
	"time"

	"visitorbadge/internal/model"
)

// ErrNotFound is returned when an entity field has never been written
var ErrNotFound = errors.New("record not found")

// EntityStorage is durable key-value storage scoped to one entity instance
type EntityStorage interface {
	Get(ctx context.Context, field string) ([]byte, error)
	Put(ctx context.Context, field string, value []byte) error
	SetAlarm(ctx context.Context, at time.Time) error
}

// StorageProvider hands out entity-scoped storage and reports due alarms
type StorageProvider interface {
	Entity(entityID string) EntityStorage
	DueAlarms(ctx context.Context, now time.Time, limit int) ([]string, error)
	Close() error
}

// RecordBackend is the raw record store behind every StorageProvider
type RecordBackend interface {
	GetRecord(ctx context.Context, entityID, field string) ([]byte, error)
	PutRecord(ctx context.Context, entityID, field string, value []byte) error
	SetAlarm(ctx context.Context, entityID string, at time.Time) error
}

// LegacyStore is the read-only legacy flat counter store
type LegacyStore interface {
	GetLegacyCount(ctx context.Context, hashedKey string) (string, bool, error)
}

// HitLogRepository persists hit audit rows
type HitLogRepository interface {
	SaveHitLog(ctx context.Context, hit *model.HitLog) error
}

// entityStorage binds a RecordBackend to one entity id
type entityStorage struct {
	backend  RecordBackend
	entityID string
}

// Scope returns EntityStorage for entityID on backend
func Scope(backend RecordBackend, entityID string) EntityStorage {
	return &entityStorage{backend: backend, entityID: entityID}
}

func (s *entityStorage) Get(ctx context.Context, field string) ([]byte, error) {
	return s.backend.GetRecord(ctx, s.entityID, field)
}

func (s *entityStorage) Put(ctx context.Context, field string, value []byte) error {
	return s.backend.PutRecord(ctx, s.entityID, field, value)
}

func (s *entityStorage) SetAlarm(ctx context.Context, at time.Time) error {
	return s.backend.SetAlarm(ctx, s.entityID, at)
}
