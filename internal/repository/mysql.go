package repository

import (
	"context"
	"errors"
	"time"

	"visitorbadge/internal/config"
	"visitorbadge/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MySQLRepository stores entity records, alarms and hit logs in MySQL
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) (*MySQLRepository, error) {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.EntityRecord{}, &model.EntityAlarm{}, &model.HitLog{}); err != nil {
		return nil, err
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}, nil
}

// Entity returns storage scoped to entityID
func (r *MySQLRepository) Entity(entityID string) EntityStorage {
	return Scope(r, entityID)
}

// GetRecord reads one field of an entity
func (r *MySQLRepository) GetRecord(ctx context.Context, entityID, field string) ([]byte, error) {
	var rec model.EntityRecord
	err := r.db.WithContext(ctx).
		Where("entity_id = ? AND field = ?", entityID, field).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

// PutRecord upserts one field of an entity
func (r *MySQLRepository) PutRecord(ctx context.Context, entityID, field string, value []byte) error {
	rec := &model.EntityRecord{
		EntityID: entityID,
		Field:    field,
		Value:    value,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(rec).Error
}

// SetAlarm upserts the next callback time of an entity
func (r *MySQLRepository) SetAlarm(ctx context.Context, entityID string, at time.Time) error {
	alarm := &model.EntityAlarm{
		EntityID: entityID,
		FireAt:   at.UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(alarm).Error
}

// DueAlarms returns entity ids whose alarm time has passed, oldest first
func (r *MySQLRepository) DueAlarms(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.EntityAlarm{}).
		Where("fire_at <= ?", now.UTC()).
		Order("fire_at").
		Limit(limit).
		Pluck("entity_id", &ids).Error
	return ids, err
}

// SaveHitLog saves a hit audit row; redelivered messages are ignored
func (r *MySQLRepository) SaveHitLog(ctx context.Context, hit *model.HitLog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(hit).Error
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
