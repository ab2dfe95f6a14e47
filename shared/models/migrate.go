package models

import "gorm.io/gorm"

// AutoMigrate creates the schema for every registry entity if absent.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Company{},
		&Client{},
		&ClientUser{},
	)
}
