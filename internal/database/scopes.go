package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectOwnedBy restricts a project query to records owned by the given
// user. Every project read and write in the repositories goes through this
// scope; a project belonging to someone else is indistinguishable from one
// that does not exist.
func ProjectOwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("projects.owner_id = ?", userID)
	}
}

// TaskOwnedBy restricts a task query to tasks whose parent project is owned
// by the given user.
func TaskOwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN projects ON projects.id = tasks.project_id").
			Where("projects.owner_id = ?", userID)
	}
}

// TaskOrder applies the canonical task ordering: priority high to low,
// deadline soonest first with missing deadlines last, newest created first.
func TaskOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("tasks.priority DESC").
			Order("CASE WHEN tasks.deadline IS NULL THEN 1 ELSE 0 END, tasks.deadline ASC").
			Order("tasks.created_at DESC")
	}
}
