package repository

import (
	"errors"
	"strings"
	"time"

	"taskdeck/taskdeck/database"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormTaskRepository struct {
	db *database.Database
}

func NewGormTaskRepository(db *database.Database) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Sortable columns, whitelisted so user input never reaches the ORDER BY
// clause directly.
var taskSortColumns = map[string]string{
	"created_at": "created_at",
	"due_date":   "due_date",
	"priority":   "priority",
	"title":      "title",
}

func taskToRow(task domain.Task) models.Task {
	row := models.Task{
		ID:          task.ID,
		Title:       string(task.Title),
		Completed:   task.Completed,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		UserID:      task.UserID,
		CategoryID:  task.CategoryID,
	}
	if task.Description != "" {
		description := string(task.Description)
		row.Description = &description
	}
	return row
}

func taskToDomain(row models.Task) TaskWithTags {
	description := ""
	if row.Description != nil {
		description = *row.Description
	}

	tagIDs := make([]uuid.UUID, 0, len(row.TaskTags))
	tagInfos := make([]domain.TagInfo, 0, len(row.TaskTags))
	for _, join := range row.TaskTags {
		tagIDs = append(tagIDs, join.TagID)
		info := domain.TagInfo{ID: join.Tag.ID, Name: join.Tag.Name}
		if join.Tag.Color != nil {
			info.Color = *join.Tag.Color
		}
		tagInfos = append(tagInfos, info)
	}

	task := domain.TaskFromPrimitives(
		row.ID, row.Title, description, row.Completed, row.Priority,
		row.DueDate, row.CompletedAt, row.UserID, row.CategoryID,
		tagIDs, row.CreatedAt, row.UpdatedAt,
	)
	return TaskWithTags{Task: task, Tags: tagInfos}
}

// Create writes the task row and its tag joins in one transaction so a
// failed join insert never leaves a task with partial tag state.
func (r *GormTaskRepository) Create(task domain.Task) (TaskWithTags, error) {
	row := taskToRow(task)

	tx := r.db.DB.Begin()
	if tx.Error != nil {
		return TaskWithTags{}, tx.Error
	}

	if err := tx.Create(&row).Error; err != nil {
		tx.Rollback()
		return TaskWithTags{}, err
	}

	if err := insertTaskTags(tx, row.ID, task.TagIDs); err != nil {
		tx.Rollback()
		return TaskWithTags{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return TaskWithTags{}, err
	}

	return r.GetOneByID(row.ID, row.UserID)
}

func (r *GormTaskRepository) GetAll(userID uuid.UUID, filters TaskFilters) ([]TaskWithTags, error) {
	query := r.db.DB.Model(&models.Task{}).Where("tasks.user_id = ?", userID)

	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", string(*filters.Priority))
	}
	if filters.DueDateFrom != nil {
		query = query.Where("due_date >= ?", *filters.DueDateFrom)
	}
	if filters.DueDateTo != nil {
		query = query.Where("due_date <= ?", *filters.DueDateTo)
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if len(filters.Tags) > 0 {
		matching := r.db.DB.Table("task_tags").
			Select("task_tags.task_id").
			Joins("JOIN tags ON tags.id = task_tags.tag_id").
			Where("tags.name IN ?", filters.Tags)
		query = query.Where("tasks.id IN (?)", matching)
	}

	column, ok := taskSortColumns[filters.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if strings.EqualFold(filters.SortDirection, "asc") {
		direction = "asc"
	}
	query = query.Order(column + " " + direction)

	var rows []models.Task
	if err := query.Preload("TaskTags.Tag").Find(&rows).Error; err != nil {
		return nil, err
	}

	tasks := make([]TaskWithTags, len(rows))
	for i, row := range rows {
		tasks[i] = taskToDomain(row)
	}
	return tasks, nil
}

func (r *GormTaskRepository) GetOneByID(id, userID uuid.UUID) (TaskWithTags, error) {
	var row models.Task
	err := r.db.DB.Preload("TaskTags.Tag").
		First(&row, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskWithTags{}, domain.ErrTaskNotFound
		}
		return TaskWithTags{}, err
	}
	return taskToDomain(row), nil
}

// Update replaces the row and reconciles the tag joins (delete all, then
// insert the new set) inside one transaction.
func (r *GormTaskRepository) Update(task domain.Task) (TaskWithTags, error) {
	var description *string
	if task.Description != "" {
		d := string(task.Description)
		description = &d
	}

	tx := r.db.DB.Begin()
	if tx.Error != nil {
		return TaskWithTags{}, tx.Error
	}

	result := tx.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":        string(task.Title),
			"description":  description,
			"completed":    task.Completed,
			"priority":     string(task.Priority),
			"due_date":     task.DueDate,
			"completed_at": task.CompletedAt,
			"category_id":  task.CategoryID,
		})
	if result.Error != nil {
		tx.Rollback()
		return TaskWithTags{}, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return TaskWithTags{}, domain.ErrTaskNotFound
	}

	if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskTag{}).Error; err != nil {
		tx.Rollback()
		return TaskWithTags{}, err
	}
	if err := insertTaskTags(tx, task.ID, task.TagIDs); err != nil {
		tx.Rollback()
		return TaskWithTags{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return TaskWithTags{}, err
	}

	return r.GetOneByID(task.ID, task.UserID)
}

func (r *GormTaskRepository) Delete(id, userID uuid.UUID) error {
	tx := r.db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return domain.ErrTaskNotFound
	}

	if err := tx.Where("task_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormTaskRepository) MarkAsCompleted(id, userID uuid.UUID) (TaskWithTags, error) {
	return r.setCompletion(id, userID, true)
}

func (r *GormTaskRepository) MarkAsIncomplete(id, userID uuid.UUID) (TaskWithTags, error) {
	return r.setCompletion(id, userID, false)
}

func (r *GormTaskRepository) setCompletion(id, userID uuid.UUID, completed bool) (TaskWithTags, error) {
	var completedAt *time.Time
	if completed {
		now := time.Now().UTC()
		completedAt = &now
	}

	result := r.db.DB.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"completed":    completed,
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return TaskWithTags{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TaskWithTags{}, domain.ErrTaskNotFound
	}

	return r.GetOneByID(id, userID)
}

func insertTaskTags(tx *gorm.DB, taskID uuid.UUID, tagIDs domain.TagIDs) error {
	if len(tagIDs) == 0 {
		return nil
	}
	joins := make([]models.TaskTag, len(tagIDs))
	for i, tagID := range tagIDs {
		joins[i] = models.TaskTag{TaskID: taskID, TagID: tagID}
	}
	return tx.Create(&joins).Error
}
