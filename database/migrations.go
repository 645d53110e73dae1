package database

import (
	"log"

	"taskdeck/taskdeck/models"

	"gorm.io/gorm"
)

// RunMigrations keeps the schema in sync with the row models.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Task{},
		&models.TaskTag{},
	)
	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
