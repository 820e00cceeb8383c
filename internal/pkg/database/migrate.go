package database

import (
	"NovaAff/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// Migrate 按依赖顺序建表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
