package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the defined priority levels.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Task belongs to a project and is accessible to exactly the project's owner.
// Concurrent updates to the same task are last-write-wins; no version column
// is kept.
type Task struct {
	ID           uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	ProjectID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Deadline     *time.Time `gorm:"index" json:"deadline"`
	Priority     Priority   `gorm:"not null;default:2;index" json:"priority"`
	IsDone       bool       `gorm:"not null;default:false;index" json:"is_done"`
	AssignedToID *uuid.UUID `gorm:"type:uuid" json:"assigned_to_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Project    Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssignedTo *User   `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Priority == 0 {
		t.Priority = PriorityMedium
	}
	return nil
}
