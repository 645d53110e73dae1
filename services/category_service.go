package services

import (
	"taskdeck/taskdeck/broker"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/repository"

	"github.com/google/uuid"
)

type CreateCategoryInput struct {
	Name  string
	Color string
}

type UpdateCategoryInput struct {
	Name  *string
	Color *string
}

type CategoryServiceInterface interface {
	Create(userID uuid.UUID, input CreateCategoryInput) (domain.Category, error)
	GetAll(userID uuid.UUID) ([]domain.Category, error)
	GetOneByID(id, userID uuid.UUID) (domain.Category, error)
	Update(id, userID uuid.UUID, input UpdateCategoryInput) (domain.Category, error)
	Delete(id, userID uuid.UUID) error
}

type CategoryService struct {
	categories repository.CategoryRepository
	producer   *broker.Producer
}

func NewCategoryService(categories repository.CategoryRepository, producer *broker.Producer) *CategoryService {
	return &CategoryService{categories: categories, producer: producer}
}

func (s *CategoryService) Create(userID uuid.UUID, input CreateCategoryInput) (domain.Category, error) {
	name, err := domain.NewCategoryName(input.Name)
	if err != nil {
		return domain.Category{}, err
	}
	color, err := domain.NewHexColor(input.Color)
	if err != nil {
		return domain.Category{}, err
	}

	category, err := s.categories.Create(domain.NewCategory(name, color, userID))
	if err != nil {
		return domain.Category{}, err
	}

	s.producer.Publish(broker.CategoryCreated, userID, map[string]interface{}{
		"id":   category.ID.String(),
		"name": string(category.Name),
	})
	return category, nil
}

func (s *CategoryService) GetAll(userID uuid.UUID) ([]domain.Category, error) {
	return s.categories.GetAll(userID)
}

func (s *CategoryService) GetOneByID(id, userID uuid.UUID) (domain.Category, error) {
	return s.categories.GetOneByID(id, userID)
}

func (s *CategoryService) Update(id, userID uuid.UUID, input UpdateCategoryInput) (domain.Category, error) {
	category, err := s.categories.GetOneByID(id, userID)
	if err != nil {
		return domain.Category{}, err
	}

	if input.Name != nil {
		name, err := domain.NewCategoryName(*input.Name)
		if err != nil {
			return domain.Category{}, err
		}
		category.UpdateName(name)
	}
	if input.Color != nil {
		color, err := domain.NewHexColor(*input.Color)
		if err != nil {
			return domain.Category{}, err
		}
		category.UpdateColor(color)
	}

	updated, err := s.categories.Update(category)
	if err != nil {
		return domain.Category{}, err
	}

	s.producer.Publish(broker.CategoryUpdated, userID, map[string]interface{}{
		"id": updated.ID.String(),
	})
	return updated, nil
}

// Delete refuses to remove a category that still has tasks assigned, so a
// delete never silently orphans tasks.
func (s *CategoryService) Delete(id, userID uuid.UUID) error {
	hasTasks, err := s.categories.HasTasks(id, userID)
	if err != nil {
		return err
	}
	if hasTasks {
		return domain.ErrCategoryHasTasks
	}

	if err := s.categories.Delete(id, userID); err != nil {
		return err
	}

	s.producer.Publish(broker.CategoryDeleted, userID, map[string]interface{}{
		"id": id.String(),
	})
	return nil
}
