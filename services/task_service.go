package services

import (
	"strconv"
	"time"

	"taskdeck/taskdeck/broker"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/repository"

	"github.com/google/uuid"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	CategoryID  string
	TagIDs      []string
}

// UpdateTaskInput carries a partial update. Nil fields stay untouched; an
// empty DueDate string clears the due date.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *string
	CategoryID  *string
	TagIDs      *[]string
}

// ReplaceTaskInput carries a full replacement. Every field is taken as the
// new value; omitted optional fields reset to their zero state.
type ReplaceTaskInput struct {
	Title       string
	Description string
	Completed   bool
	Priority    string
	DueDate     string
	CategoryID  string
	TagIDs      []string
}

type ListTasksInput struct {
	Completed     string
	CategoryID    string
	Priority      string
	DueDateFrom   string
	DueDateTo     string
	Search        string
	Tags          []string
	SortBy        string
	SortDirection string
}

type TaskServiceInterface interface {
	Create(userID uuid.UUID, input CreateTaskInput) (repository.TaskWithTags, error)
	GetAll(userID uuid.UUID, input ListTasksInput) ([]repository.TaskWithTags, error)
	GetOneByID(id, userID uuid.UUID) (repository.TaskWithTags, error)
	Update(id, userID uuid.UUID, input UpdateTaskInput) (repository.TaskWithTags, error)
	Replace(id, userID uuid.UUID, input ReplaceTaskInput) (repository.TaskWithTags, error)
	Delete(id, userID uuid.UUID) error
	ToggleComplete(id, userID uuid.UUID) (repository.TaskWithTags, error)
	SetCompleted(id, userID uuid.UUID, completed bool) (repository.TaskWithTags, error)
}

type TaskService struct {
	tasks      repository.TaskRepository
	categories repository.CategoryRepository
	producer   *broker.Producer
}

func NewTaskService(tasks repository.TaskRepository, categories repository.CategoryRepository, producer *broker.Producer) *TaskService {
	return &TaskService{tasks: tasks, categories: categories, producer: producer}
}

func (s *TaskService) Create(userID uuid.UUID, input CreateTaskInput) (repository.TaskWithTags, error) {
	title, err := domain.NewTaskTitle(input.Title)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	description, err := domain.NewTaskDescription(input.Description)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	priority := domain.Priority("")
	if input.Priority != "" {
		priority, err = domain.NewPriority(input.Priority)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
	}
	var dueDate *time.Time
	if input.DueDate != "" {
		due, err := domain.ParseDate("dueDate", input.DueDate)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
		dueDate = &due
	}
	categoryID, err := domain.ParseID("categoryId", input.CategoryID)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	tagIDs, err := domain.NewTagIDs(input.TagIDs)
	if err != nil {
		return repository.TaskWithTags{}, err
	}

	// The category must exist and belong to the caller before a task can
	// reference it.
	if _, err := s.categories.GetOneByID(categoryID, userID); err != nil {
		return repository.TaskWithTags{}, err
	}

	created, err := s.tasks.Create(domain.NewTask(title, userID, categoryID, description, priority, dueDate, tagIDs))
	if err != nil {
		return repository.TaskWithTags{}, err
	}

	s.producer.Publish(broker.TaskCreated, userID, map[string]interface{}{
		"id":    created.Task.ID.String(),
		"title": string(created.Task.Title),
	})
	return created, nil
}

func (s *TaskService) GetAll(userID uuid.UUID, input ListTasksInput) ([]repository.TaskWithTags, error) {
	filters, err := buildTaskFilters(input)
	if err != nil {
		return nil, err
	}
	return s.tasks.GetAll(userID, filters)
}

func (s *TaskService) GetOneByID(id, userID uuid.UUID) (repository.TaskWithTags, error) {
	return s.tasks.GetOneByID(id, userID)
}

// Update applies a partial update: only the provided fields change, and the
// completion timestamp is re-derived when the completed flag flips.
func (s *TaskService) Update(id, userID uuid.UUID, input UpdateTaskInput) (repository.TaskWithTags, error) {
	existing, err := s.tasks.GetOneByID(id, userID)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	task := existing.Task

	if input.Title != nil {
		title, err := domain.NewTaskTitle(*input.Title)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
		task.Title = title
	}
	if input.Description != nil {
		description, err := domain.NewTaskDescription(*input.Description)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
		task.Description = description
	}
	if input.Priority != nil {
		priority, err := domain.NewPriority(*input.Priority)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
		task.Priority = priority
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := domain.ParseDate("dueDate", *input.DueDate)
			if err != nil {
				return repository.TaskWithTags{}, err
			}
			task.DueDate = &due
		}
	}
	if input.CategoryID != nil {
		categoryID, err := domain.ParseID("categoryId", *input.CategoryID)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
		if _, err := s.categories.GetOneByID(categoryID, userID); err != nil {
			return repository.TaskWithTags{}, err
		}
		task.CategoryID = categoryID
	}
	if input.TagIDs != nil {
		tagIDs, err := domain.NewTagIDs(*input.TagIDs)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
		task.TagIDs = tagIDs
	}
	if input.Completed != nil && *input.Completed != task.Completed {
		if *input.Completed {
			task.MarkAsCompleted()
		} else {
			task.MarkAsIncomplete()
		}
	}

	updated, err := s.tasks.Update(task)
	if err != nil {
		return repository.TaskWithTags{}, err
	}

	s.producer.Publish(broker.TaskUpdated, userID, map[string]interface{}{
		"id": updated.Task.ID.String(),
	})
	return updated, nil
}

// Replace swaps the task for the given state wholesale, keeping only the
// creation timestamp and re-deriving the completion timestamp from the flag
// transition.
func (s *TaskService) Replace(id, userID uuid.UUID, input ReplaceTaskInput) (repository.TaskWithTags, error) {
	existing, err := s.tasks.GetOneByID(id, userID)
	if err != nil {
		return repository.TaskWithTags{}, err
	}

	title, err := domain.NewTaskTitle(input.Title)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	description, err := domain.NewTaskDescription(input.Description)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority, err = domain.NewPriority(input.Priority)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
	}
	var dueDate *time.Time
	if input.DueDate != "" {
		due, err := domain.ParseDate("dueDate", input.DueDate)
		if err != nil {
			return repository.TaskWithTags{}, err
		}
		dueDate = &due
	}
	categoryID, err := domain.ParseID("categoryId", input.CategoryID)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	tagIDs, err := domain.NewTagIDs(input.TagIDs)
	if err != nil {
		return repository.TaskWithTags{}, err
	}

	if _, err := s.categories.GetOneByID(categoryID, userID); err != nil {
		return repository.TaskWithTags{}, err
	}

	task := domain.Task{
		ID:          existing.Task.ID,
		Title:       title,
		Description: description,
		Completed:   existing.Task.Completed,
		Priority:    priority,
		DueDate:     dueDate,
		CompletedAt: existing.Task.CompletedAt,
		UserID:      userID,
		CategoryID:  categoryID,
		TagIDs:      tagIDs,
		CreatedAt:   existing.Task.CreatedAt,
	}
	if input.Completed != existing.Task.Completed {
		if input.Completed {
			task.MarkAsCompleted()
		} else {
			task.MarkAsIncomplete()
		}
	}

	updated, err := s.tasks.Update(task)
	if err != nil {
		return repository.TaskWithTags{}, err
	}

	s.producer.Publish(broker.TaskUpdated, userID, map[string]interface{}{
		"id": updated.Task.ID.String(),
	})
	return updated, nil
}

func (s *TaskService) Delete(id, userID uuid.UUID) error {
	if err := s.tasks.Delete(id, userID); err != nil {
		return err
	}

	s.producer.Publish(broker.TaskDeleted, userID, map[string]interface{}{
		"id": id.String(),
	})
	return nil
}

// ToggleComplete flips the completion state of the task.
func (s *TaskService) ToggleComplete(id, userID uuid.UUID) (repository.TaskWithTags, error) {
	existing, err := s.tasks.GetOneByID(id, userID)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	return s.setCompleted(id, userID, !existing.Task.Completed)
}

// SetCompleted forces the completion state to the given value. Setting the
// state it already has is a no-op write with the same result.
func (s *TaskService) SetCompleted(id, userID uuid.UUID, completed bool) (repository.TaskWithTags, error) {
	return s.setCompleted(id, userID, completed)
}

func (s *TaskService) setCompleted(id, userID uuid.UUID, completed bool) (repository.TaskWithTags, error) {
	var updated repository.TaskWithTags
	var err error
	if completed {
		updated, err = s.tasks.MarkAsCompleted(id, userID)
	} else {
		updated, err = s.tasks.MarkAsIncomplete(id, userID)
	}
	if err != nil {
		return repository.TaskWithTags{}, err
	}

	event := broker.TaskUpdated
	if updated.Task.Completed {
		event = broker.TaskCompleted
	}
	s.producer.Publish(event, userID, map[string]interface{}{
		"id":        updated.Task.ID.String(),
		"completed": updated.Task.Completed,
	})
	return updated, nil
}

func buildTaskFilters(input ListTasksInput) (repository.TaskFilters, error) {
	filters := repository.TaskFilters{
		Search:        input.Search,
		Tags:          input.Tags,
		SortBy:        input.SortBy,
		SortDirection: input.SortDirection,
	}

	if input.Completed != "" {
		completed, err := strconv.ParseBool(input.Completed)
		if err != nil {
			return repository.TaskFilters{}, &domain.ValidationError{Field: "completed", Message: "must be true or false"}
		}
		filters.Completed = &completed
	}
	if input.CategoryID != "" {
		categoryID, err := domain.ParseID("categoryId", input.CategoryID)
		if err != nil {
			return repository.TaskFilters{}, err
		}
		filters.CategoryID = &categoryID
	}
	if input.Priority != "" {
		priority, err := domain.NewPriority(input.Priority)
		if err != nil {
			return repository.TaskFilters{}, err
		}
		filters.Priority = &priority
	}
	if input.DueDateFrom != "" {
		from, err := domain.ParseDate("dueDateFrom", input.DueDateFrom)
		if err != nil {
			return repository.TaskFilters{}, err
		}
		filters.DueDateFrom = &from
	}
	if input.DueDateTo != "" {
		to, err := domain.ParseDate("dueDateTo", input.DueDateTo)
		if err != nil {
			return repository.TaskFilters{}, err
		}
		filters.DueDateTo = &to
	}

	return filters, nil
}
