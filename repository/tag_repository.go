package repository

import (
	"errors"

	"taskdeck/taskdeck/database"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTagRepository struct {
	db *database.Database
}

func NewGormTagRepository(db *database.Database) *GormTagRepository {
	return &GormTagRepository{db: db}
}

func tagToRow(tag domain.Tag) models.Tag {
	row := models.Tag{
		ID:     tag.ID,
		Name:   string(tag.Name),
		UserID: tag.UserID,
	}
	if tag.Color != "" {
		color := string(tag.Color)
		row.Color = &color
	}
	return row
}

func tagToDomain(row models.Tag) domain.Tag {
	color := ""
	if row.Color != nil {
		color = *row.Color
	}
	return domain.TagFromPrimitives(row.ID, row.Name, color, row.UserID, row.CreatedAt, row.UpdatedAt)
}

func (r *GormTagRepository) Create(tag domain.Tag) (domain.Tag, error) {
	row := tagToRow(tag)
	if err := r.db.DB.Create(&row).Error; err != nil {
		return domain.Tag{}, err
	}
	return r.GetOneByID(row.ID, row.UserID)
}

func (r *GormTagRepository) GetAll(userID uuid.UUID) ([]domain.Tag, error) {
	var rows []models.Tag
	if err := r.db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, len(rows))
	for i, row := range rows {
		tags[i] = tagToDomain(row)
	}
	return tags, nil
}

func (r *GormTagRepository) GetOneByID(id, userID uuid.UUID) (domain.Tag, error) {
	var row models.Tag
	if err := r.db.DB.First(&row, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tag{}, domain.ErrTagNotFound
		}
		return domain.Tag{}, err
	}
	return tagToDomain(row), nil
}

func (r *GormTagRepository) Update(tag domain.Tag) (domain.Tag, error) {
	var color *string
	if tag.Color != "" {
		c := string(tag.Color)
		color = &c
	}
	result := r.db.DB.Model(&models.Tag{}).
		Where("id = ? AND user_id = ?", tag.ID, tag.UserID).
		Updates(map[string]interface{}{
			"name":  string(tag.Name),
			"color": color,
		})
	if result.Error != nil {
		return domain.Tag{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Tag{}, domain.ErrTagNotFound
	}
	return r.GetOneByID(tag.ID, tag.UserID)
}

func (r *GormTagRepository) Delete(id, userID uuid.UUID) error {
	tx := r.db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Tag{})
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return domain.ErrTagNotFound
	}

	if err := tx.Where("tag_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormTagRepository) GetByTaskID(taskID, userID uuid.UUID) ([]domain.Tag, error) {
	var rows []models.Tag
	err := r.db.DB.
		Joins("JOIN task_tags ON task_tags.tag_id = tags.id").
		Where("task_tags.task_id = ? AND tags.user_id = ?", taskID, userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, len(rows))
	for i, row := range rows {
		tags[i] = tagToDomain(row)
	}
	return tags, nil
}

// AssignToTask inserts the join row. Re-assigning an already assigned tag is
// a no-op thanks to the conflict clause on the composite key.
func (r *GormTagRepository) AssignToTask(tagID, taskID, userID uuid.UUID) error {
	if err := r.checkTaskOwnership(taskID, userID); err != nil {
		return err
	}
	join := models.TaskTag{TaskID: taskID, TagID: tagID}
	return r.db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&join).Error
}

// UnassignFromTask deletes the join row if present; removing a tag that was
// never assigned is a no-op.
func (r *GormTagRepository) UnassignFromTask(tagID, taskID, userID uuid.UUID) error {
	if err := r.checkTaskOwnership(taskID, userID); err != nil {
		return err
	}
	return r.db.DB.Where("task_id = ? AND tag_id = ?", taskID, tagID).Delete(&models.TaskTag{}).Error
}

func (r *GormTagRepository) checkTaskOwnership(taskID, userID uuid.UUID) error {
	var count int64
	err := r.db.DB.Model(&models.Task{}).Where("id = ? AND user_id = ?", taskID, userID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
