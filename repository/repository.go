package repository

import (
	"time"

	"taskdeck/taskdeck/domain"

	"github.com/google/uuid"
)

// Persistence contracts. Every read and write is scoped by the owning user;
// a row owned by someone else is indistinguishable from a missing row.

type UserRepository interface {
	Create(user domain.User) (domain.User, error)
	GetOneByID(id uuid.UUID) (domain.User, error)
	GetByEmail(email string) (domain.User, error)
	ExistsByEmail(email string) (bool, error)
	Update(user domain.User) (domain.User, error)
}

type CategoryRepository interface {
	Create(category domain.Category) (domain.Category, error)
	GetAll(userID uuid.UUID) ([]domain.Category, error)
	GetOneByID(id, userID uuid.UUID) (domain.Category, error)
	Update(category domain.Category) (domain.Category, error)
	Delete(id, userID uuid.UUID) error
	HasTasks(id, userID uuid.UUID) (bool, error)
}

type TagRepository interface {
	Create(tag domain.Tag) (domain.Tag, error)
	GetAll(userID uuid.UUID) ([]domain.Tag, error)
	GetOneByID(id, userID uuid.UUID) (domain.Tag, error)
	Update(tag domain.Tag) (domain.Tag, error)
	Delete(id, userID uuid.UUID) error
	GetByTaskID(taskID, userID uuid.UUID) ([]domain.Tag, error)
	AssignToTask(tagID, taskID, userID uuid.UUID) error
	UnassignFromTask(tagID, taskID, userID uuid.UUID) error
}

// TaskWithTags pairs a task with the summaries of its assigned tags, the
// shape every task read returns.
type TaskWithTags struct {
	Task domain.Task
	Tags []domain.TagInfo
}

// TaskFilters narrows and orders task listings. Nil pointer fields mean
// "not filtered".
type TaskFilters struct {
	Completed     *bool
	CategoryID    *uuid.UUID
	Priority      *domain.Priority
	DueDateFrom   *time.Time
	DueDateTo     *time.Time
	Search        string
	Tags          []string
	SortBy        string
	SortDirection string
}

type TaskRepository interface {
	Create(task domain.Task) (TaskWithTags, error)
	GetAll(userID uuid.UUID, filters TaskFilters) ([]TaskWithTags, error)
	GetOneByID(id, userID uuid.UUID) (TaskWithTags, error)
	Update(task domain.Task) (TaskWithTags, error)
	Delete(id, userID uuid.UUID) error
	MarkAsCompleted(id, userID uuid.UUID) (TaskWithTags, error)
	MarkAsIncomplete(id, userID uuid.UUID) (TaskWithTags, error)
}
