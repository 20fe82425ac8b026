package model

import (
	"time"
)

// EntityRecord is one durable field of a per-entity instance (badge or limiter key)
type EntityRecord struct {
	EntityID  string    `json:"entity_id" gorm:"primaryKey;type:varchar(512)"`
	Field     string    `json:"field" gorm:"primaryKey;type:varchar(64)"`
	Value     []byte    `json:"value" gorm:"type:longblob;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for EntityRecord
func (EntityRecord) TableName() string {
	return "entity_records"
}

// EntityAlarm is the next scheduled callback of an entity
type EntityAlarm struct {
	EntityID string    `json:"entity_id" gorm:"primaryKey;type:varchar(512)"`
	FireAt   time.Time `json:"fire_at" gorm:"index;not null"`
}

// TableName returns the table name for EntityAlarm
func (EntityAlarm) TableName() string {
	return "entity_alarms"
}

// HitLog is an audit row for an accepted hit, written by the MQ consumer
type HitLog struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MessageID  string    `json:"message_id" gorm:"type:varchar(36);uniqueIndex"`
	PageID     string    `json:"page_id" gorm:"type:varchar(512);index;not null"`
	VisitorKey string    `json:"visitor_key" gorm:"type:varchar(32)"`
	Referrer   string    `json:"referrer" gorm:"type:varchar(255)"`
	Country    string    `json:"country" gorm:"type:varchar(16)"`
	UserAgent  string    `json:"user_agent" gorm:"type:varchar(64)"`
	Platform   string    `json:"platform" gorm:"type:varchar(32)"`
	Count      int64     `json:"count"`
	HitTime    time.Time `json:"hit_time" gorm:"index"`
}

// TableName returns the table name for HitLog
func (HitLog) TableName() string {
	return "hit_logs"
}
