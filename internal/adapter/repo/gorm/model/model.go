// Package model holds the table mappings for the postgres adapter.
// Kept in sync with the SQL under migrations/; tools/modelgen can
// regenerate them from a live database instead.
package model

import "time"

type Profile struct {
	ProfileID string    `gorm:"column:profile_id;primaryKey" json:"profile_id"`
	Save      []byte    `gorm:"column:save_payload" json:"save_payload"`
	Day       int32     `gorm:"column:day" json:"day"`
	Phase     string    `gorm:"column:phase" json:"phase"`
	Version   int64     `gorm:"column:version" json:"version"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

type Battle struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID string    `gorm:"column:profile_id" json:"profile_id"`
	Day       int32     `gorm:"column:day" json:"day"`
	Seed      int64     `gorm:"column:seed" json:"seed"`
	Result    []byte    `gorm:"column:result" json:"result"`
	FoughtAt  time.Time `gorm:"column:fought_at" json:"fought_at"`
}

func (Battle) TableName() string { return "battles" }

type Command struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID      string    `gorm:"column:profile_id" json:"profile_id"`
	IdempotencyKey string    `gorm:"column:idempotency_key" json:"idempotency_key"`
	Kind           string    `gorm:"column:kind" json:"kind"`
	Response       []byte    `gorm:"column:response" json:"response"`
	AppliedAt      time.Time `gorm:"column:applied_at" json:"applied_at"`
}

func (Command) TableName() string { return "commands" }

type Event struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID  string    `gorm:"column:profile_id" json:"profile_id"`
	Type       string    `gorm:"column:type" json:"type"`
	OccurredAt time.Time `gorm:"column:occurred_at" json:"occurred_at"`
	Payload    []byte    `gorm:"column:payload" json:"payload"`
}

func (Event) TableName() string { return "events" }
