package repository

import (
	"errors"

	"taskdeck/taskdeck/database"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *database.Database
}

func NewGormUserRepository(db *database.Database) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func userToRow(user domain.User) models.User {
	return models.User{
		ID:           user.ID,
		Name:         string(user.Name),
		Email:        string(user.Email),
		PasswordHash: user.PasswordHash,
	}
}

func userToDomain(row models.User) domain.User {
	return domain.UserFromPrimitives(row.ID, row.Name, row.Email, row.PasswordHash, row.CreatedAt, row.UpdatedAt)
}

func (r *GormUserRepository) Create(user domain.User) (domain.User, error) {
	row := userToRow(user)
	if err := r.db.DB.Create(&row).Error; err != nil {
		return domain.User{}, err
	}
	return r.GetOneByID(row.ID)
}

func (r *GormUserRepository) GetOneByID(id uuid.UUID) (domain.User, error) {
	var row models.User
	if err := r.db.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return userToDomain(row), nil
}

func (r *GormUserRepository) GetByEmail(email string) (domain.User, error) {
	var row models.User
	if err := r.db.DB.First(&row, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return userToDomain(row), nil
}

func (r *GormUserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUserRepository) Update(user domain.User) (domain.User, error) {
	result := r.db.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"name":  string(user.Name),
		"email": string(user.Email),
	})
	if result.Error != nil {
		return domain.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.User{}, domain.ErrUserNotFound
	}
	return r.GetOneByID(user.ID)
}
