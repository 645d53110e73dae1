package database

import (
	"log"
	"time"

	"taskdeck/taskdeck/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var seedCategories = []struct {
	Name  string
	Color string
}{
	{"Desarrollo Web", "#45B7D1"},
	{"Marketing Digital", "#FF6B6B"},
	{"QA Testing", "#96CEB4"},
	{"DevOps", "#F8C471"},
}

var seedTags = []struct {
	Name  string
	Color string
}{
	{"Bug Fix", "#FF6B6B"},
	{"Code Review", "#4ECDC4"},
	{"Documentación", "#FFEAA7"},
	{"Deploy", "#BB8FCE"},
}

var seedTaskTitles = []string{
	"Implementar autenticación de usuarios",
	"Crear dashboard de métricas",
	"Optimizar consultas de base de datos",
	"Escribir tests unitarios para módulo",
	"Configurar pipeline de CI/CD",
	"Revisar código de pull request",
}

// Seed populates a development database with a demo account and sample data.
// It is a no-op when the demo user already exists.
func Seed(db *Database) error {
	var count int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", "demo@taskdeck.dev").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed data already present, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Demo123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         "Demo User",
		Email:        "demo@taskdeck.dev",
		PasswordHash: string(hash),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return err
	}

	categories := make([]models.Category, len(seedCategories))
	for i, c := range seedCategories {
		color := c.Color
		categories[i] = models.Category{
			ID:     uuid.New(),
			Name:   c.Name,
			Color:  &color,
			UserID: user.ID,
		}
	}
	if err := db.DB.Create(&categories).Error; err != nil {
		return err
	}

	tags := make([]models.Tag, len(seedTags))
	for i, t := range seedTags {
		color := t.Color
		tags[i] = models.Tag{
			ID:     uuid.New(),
			Name:   t.Name,
			Color:  &color,
			UserID: user.ID,
		}
	}
	if err := db.DB.Create(&tags).Error; err != nil {
		return err
	}

	priorities := []string{"LOW", "MEDIUM", "HIGH"}
	for i, title := range seedTaskTitles {
		due := time.Now().AddDate(0, 0, i+1)
		task := models.Task{
			ID:         uuid.New(),
			Title:      title,
			Priority:   priorities[i%len(priorities)],
			DueDate:    &due,
			UserID:     user.ID,
			CategoryID: categories[i%len(categories)].ID,
		}
		if err := db.DB.Create(&task).Error; err != nil {
			return err
		}
		join := models.TaskTag{TaskID: task.ID, TagID: tags[i%len(tags)].ID}
		if err := db.DB.Create(&join).Error; err != nil {
			return err
		}
	}

	log.Println("Seed data created (demo@taskdeck.dev / Demo123!)")
	return nil
}
