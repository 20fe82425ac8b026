package mq

import (
	"time"
)

// HitTag is the message tag of accepted badge hits
const HitTag = "badge_hit"

// HitMessage represents an accepted badge hit
type HitMessage struct {
	MessageID  string    `json:"message_id"`
	PageID     string    `json:"page_id"`
	VisitorKey string    `json:"visitor_key"`
	Referrer   string    `json:"referrer"`
	Country    string    `json:"country"`
	UserAgent  string    `json:"user_agent"`
	Platform   string    `json:"platform"`
	Count      int64     `json:"count"`
	HitTime    time.Time `json:"hit_time"`
}
