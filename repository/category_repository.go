package repository

import (
	"errors"

	"taskdeck/taskdeck/database"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormCategoryRepository struct {
	db *database.Database
}

func NewGormCategoryRepository(db *database.Database) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func categoryToRow(category domain.Category) models.Category {
	row := models.Category{
		ID:     category.ID,
		Name:   string(category.Name),
		UserID: category.UserID,
	}
	if category.Color != "" {
		color := string(category.Color)
		row.Color = &color
	}
	return row
}

func categoryToDomain(row models.Category) domain.Category {
	color := ""
	if row.Color != nil {
		color = *row.Color
	}
	return domain.CategoryFromPrimitives(row.ID, row.Name, color, row.UserID, row.CreatedAt, row.UpdatedAt)
}

func (r *GormCategoryRepository) Create(category domain.Category) (domain.Category, error) {
	row := categoryToRow(category)
	if err := r.db.DB.Create(&row).Error; err != nil {
		return domain.Category{}, err
	}
	return r.GetOneByID(row.ID, row.UserID)
}

func (r *GormCategoryRepository) GetAll(userID uuid.UUID) ([]domain.Category, error) {
	var rows []models.Category
	if err := r.db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryToDomain(row)
	}
	return categories, nil
}

func (r *GormCategoryRepository) GetOneByID(id, userID uuid.UUID) (domain.Category, error) {
	var row models.Category
	if err := r.db.DB.First(&row, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return categoryToDomain(row), nil
}

func (r *GormCategoryRepository) Update(category domain.Category) (domain.Category, error) {
	var color *string
	if category.Color != "" {
		c := string(category.Color)
		color = &c
	}
	result := r.db.DB.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", category.ID, category.UserID).
		Updates(map[string]interface{}{
			"name":  string(category.Name),
			"color": color,
		})
	if result.Error != nil {
		return domain.Category{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return r.GetOneByID(category.ID, category.UserID)
}

func (r *GormCategoryRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *GormCategoryRepository) HasTasks(id, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.DB.Model(&models.Task{}).
		Where("category_id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
