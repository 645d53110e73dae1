package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID
	Title       TaskTitle
	Description TaskDescription
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	CompletedAt *time.Time
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	TagIDs      TagIDs
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a task in its initial state: not completed, MEDIUM
// priority unless the caller chose one.
func NewTask(title TaskTitle, userID, categoryID uuid.UUID, description TaskDescription, priority Priority, dueDate *time.Time, tagIDs TagIDs) Task {
	if priority == "" {
		priority = PriorityMedium
	}
	return Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    priority,
		DueDate:     dueDate,
		UserID:      userID,
		CategoryID:  categoryID,
		TagIDs:      tagIDs,
	}
}

// TaskFromPrimitives reconstructs a task from storage without re-validating.
func TaskFromPrimitives(id uuid.UUID, title, description string, completed bool, priority string, dueDate, completedAt *time.Time, userID, categoryID uuid.UUID, tagIDs []uuid.UUID, createdAt, updatedAt time.Time) Task {
	return Task{
		ID:          id,
		Title:       TaskTitle(title),
		Description: TaskDescription(description),
		Completed:   completed,
		Priority:    Priority(priority),
		DueDate:     dueDate,
		CompletedAt: completedAt,
		UserID:      userID,
		CategoryID:  categoryID,
		TagIDs:      tagIDs,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// MarkAsCompleted stamps completedAt with the current time. completedAt must
// only ever change through this method and MarkAsIncomplete.
func (t *Task) MarkAsCompleted() {
	now := time.Now().UTC()
	t.Completed = true
	t.CompletedAt = &now
}

func (t *Task) MarkAsIncomplete() {
	t.Completed = false
	t.CompletedAt = nil
}

func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return time.Now().After(*t.DueDate)
}

// DaysUntilDue returns the day difference rounded up, negative when overdue,
// nil when the task has no due date.
func (t *Task) DaysUntilDue() *int {
	if t.DueDate == nil {
		return nil
	}
	days := int(math.Ceil(time.Until(*t.DueDate).Hours() / 24))
	return &days
}
