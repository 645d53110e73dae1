package services

import (
	"time"

	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/repository"

	"github.com/google/uuid"
)

func zeroTime() time.Time { return time.Time{} }

// Hand-rolled repository fakes. Each method delegates to an optional
// function field so tests only stub what they exercise.

type fakeUserRepo struct {
	CreateFn        func(user domain.User) (domain.User, error)
	GetOneByIDFn    func(id uuid.UUID) (domain.User, error)
	GetByEmailFn    func(email string) (domain.User, error)
	ExistsByEmailFn func(email string) (bool, error)
	UpdateFn        func(user domain.User) (domain.User, error)
}

func (f *fakeUserRepo) Create(user domain.User) (domain.User, error) { return f.CreateFn(user) }
func (f *fakeUserRepo) GetOneByID(id uuid.UUID) (domain.User, error) { return f.GetOneByIDFn(id) }
func (f *fakeUserRepo) GetByEmail(email string) (domain.User, error) { return f.GetByEmailFn(email) }
func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error)     { return f.ExistsByEmailFn(email) }
func (f *fakeUserRepo) Update(user domain.User) (domain.User, error) { return f.UpdateFn(user) }

type fakeCategoryRepo struct {
	CreateFn     func(category domain.Category) (domain.Category, error)
	GetAllFn     func(userID uuid.UUID) ([]domain.Category, error)
	GetOneByIDFn func(id, userID uuid.UUID) (domain.Category, error)
	UpdateFn     func(category domain.Category) (domain.Category, error)
	DeleteFn     func(id, userID uuid.UUID) error
	HasTasksFn   func(id, userID uuid.UUID) (bool, error)
}

func (f *fakeCategoryRepo) Create(category domain.Category) (domain.Category, error) {
	return f.CreateFn(category)
}
func (f *fakeCategoryRepo) GetAll(userID uuid.UUID) ([]domain.Category, error) {
	return f.GetAllFn(userID)
}
func (f *fakeCategoryRepo) GetOneByID(id, userID uuid.UUID) (domain.Category, error) {
	return f.GetOneByIDFn(id, userID)
}
func (f *fakeCategoryRepo) Update(category domain.Category) (domain.Category, error) {
	return f.UpdateFn(category)
}
func (f *fakeCategoryRepo) Delete(id, userID uuid.UUID) error { return f.DeleteFn(id, userID) }
func (f *fakeCategoryRepo) HasTasks(id, userID uuid.UUID) (bool, error) {
	return f.HasTasksFn(id, userID)
}

type fakeTagRepo struct {
	CreateFn           func(tag domain.Tag) (domain.Tag, error)
	GetAllFn           func(userID uuid.UUID) ([]domain.Tag, error)
	GetOneByIDFn       func(id, userID uuid.UUID) (domain.Tag, error)
	UpdateFn           func(tag domain.Tag) (domain.Tag, error)
	DeleteFn           func(id, userID uuid.UUID) error
	GetByTaskIDFn      func(taskID, userID uuid.UUID) ([]domain.Tag, error)
	AssignToTaskFn     func(tagID, taskID, userID uuid.UUID) error
	UnassignFromTaskFn func(tagID, taskID, userID uuid.UUID) error
}

func (f *fakeTagRepo) Create(tag domain.Tag) (domain.Tag, error)     { return f.CreateFn(tag) }
func (f *fakeTagRepo) GetAll(userID uuid.UUID) ([]domain.Tag, error) { return f.GetAllFn(userID) }
func (f *fakeTagRepo) GetOneByID(id, userID uuid.UUID) (domain.Tag, error) {
	return f.GetOneByIDFn(id, userID)
}
func (f *fakeTagRepo) Update(tag domain.Tag) (domain.Tag, error) { return f.UpdateFn(tag) }
func (f *fakeTagRepo) Delete(id, userID uuid.UUID) error         { return f.DeleteFn(id, userID) }
func (f *fakeTagRepo) GetByTaskID(taskID, userID uuid.UUID) ([]domain.Tag, error) {
	return f.GetByTaskIDFn(taskID, userID)
}
func (f *fakeTagRepo) AssignToTask(tagID, taskID, userID uuid.UUID) error {
	return f.AssignToTaskFn(tagID, taskID, userID)
}
func (f *fakeTagRepo) UnassignFromTask(tagID, taskID, userID uuid.UUID) error {
	return f.UnassignFromTaskFn(tagID, taskID, userID)
}

type fakeTaskRepo struct {
	CreateFn           func(task domain.Task) (repository.TaskWithTags, error)
	GetAllFn           func(userID uuid.UUID, filters repository.TaskFilters) ([]repository.TaskWithTags, error)
	GetOneByIDFn       func(id, userID uuid.UUID) (repository.TaskWithTags, error)
	UpdateFn           func(task domain.Task) (repository.TaskWithTags, error)
	DeleteFn           func(id, userID uuid.UUID) error
	MarkAsCompletedFn  func(id, userID uuid.UUID) (repository.TaskWithTags, error)
	MarkAsIncompleteFn func(id, userID uuid.UUID) (repository.TaskWithTags, error)
}

func (f *fakeTaskRepo) Create(task domain.Task) (repository.TaskWithTags, error) {
	return f.CreateFn(task)
}
func (f *fakeTaskRepo) GetAll(userID uuid.UUID, filters repository.TaskFilters) ([]repository.TaskWithTags, error) {
	return f.GetAllFn(userID, filters)
}
func (f *fakeTaskRepo) GetOneByID(id, userID uuid.UUID) (repository.TaskWithTags, error) {
	return f.GetOneByIDFn(id, userID)
}
func (f *fakeTaskRepo) Update(task domain.Task) (repository.TaskWithTags, error) {
	return f.UpdateFn(task)
}
func (f *fakeTaskRepo) Delete(id, userID uuid.UUID) error { return f.DeleteFn(id, userID) }
func (f *fakeTaskRepo) MarkAsCompleted(id, userID uuid.UUID) (repository.TaskWithTags, error) {
	return f.MarkAsCompletedFn(id, userID)
}
func (f *fakeTaskRepo) MarkAsIncomplete(id, userID uuid.UUID) (repository.TaskWithTags, error) {
	return f.MarkAsIncompleteFn(id, userID)
}
