package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate cria ou atualiza as tabelas items, points e point_items
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ItemModel{}, &PointModel{}, &PointItemModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
