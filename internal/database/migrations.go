package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes creates the composite indexes that the single-column tags on the
// models cannot express. Uses the migrator so it works on every supported
// driver.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Composite index backing the canonical task ordering
		{"tasks", "idx_tasks_priority_deadline", "priority DESC, deadline"},
		// Filtering tasks by project and completion status
		{"tasks", "idx_tasks_project_done", "project_id, is_done"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
