package models

import (
	"time"
)

// RecordType classifies a daily record.
type RecordType string

const (
	RecordSymptom RecordType = "SYMPTOM"
	RecordEmotion RecordType = "EMOTION"
	RecordMeal    RecordType = "MEAL"
)

// Valid reports whether t is a known record type.
func (t RecordType) Valid() bool {
	switch t {
	case RecordSymptom, RecordEmotion, RecordMeal:
		return true
	}
	return false
}

// Record is a timestamped symptom, emotion or meal entry for a child.
type Record struct {
	BaseModel
	ChildID   string     `gorm:"size:36;index;not null" json:"childId"`
	Type      RecordType `gorm:"size:20;index;not null" json:"type"`
	StartTime time.Time  `gorm:"index;not null" json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Symptom   *string    `gorm:"size:100" json:"symptom"`
	Severity  *string    `gorm:"size:20" json:"severity"`
	Emotion   *string    `gorm:"size:100" json:"emotion"`
	Memo      *string    `gorm:"type:text" json:"memo"`

	// Relations
	Child Child `gorm:"foreignKey:ChildID" json:"-"`
}

// OwnerID implements Owner. The Child relation must be preloaded.
func (r *Record) OwnerID() string { return r.Child.UserID }
