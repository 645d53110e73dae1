package services

import (
	"taskdeck/taskdeck/broker"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/repository"

	"github.com/google/uuid"
)

type CreateTagInput struct {
	Name  string
	Color string
}

type UpdateTagInput struct {
	Name  *string
	Color *string
}

type TagServiceInterface interface {
	Create(userID uuid.UUID, input CreateTagInput) (domain.Tag, error)
	GetAll(userID uuid.UUID) ([]domain.Tag, error)
	GetOneByID(id, userID uuid.UUID) (domain.Tag, error)
	GetByTaskID(taskID, userID uuid.UUID) ([]domain.Tag, error)
	Update(id, userID uuid.UUID, input UpdateTagInput) (domain.Tag, error)
	Delete(id, userID uuid.UUID) error
	AssignToTask(tagID, taskID, userID uuid.UUID) error
	UnassignFromTask(tagID, taskID, userID uuid.UUID) error
}

type TagService struct {
	tags     repository.TagRepository
	producer *broker.Producer
}

func NewTagService(tags repository.TagRepository, producer *broker.Producer) *TagService {
	return &TagService{tags: tags, producer: producer}
}

func (s *TagService) Create(userID uuid.UUID, input CreateTagInput) (domain.Tag, error) {
	name, err := domain.NewTagName(input.Name)
	if err != nil {
		return domain.Tag{}, err
	}
	color, err := domain.NewHexColor(input.Color)
	if err != nil {
		return domain.Tag{}, err
	}

	tag, err := s.tags.Create(domain.NewTag(name, color, userID))
	if err != nil {
		return domain.Tag{}, err
	}

	s.producer.Publish(broker.TagCreated, userID, map[string]interface{}{
		"id":   tag.ID.String(),
		"name": string(tag.Name),
	})
	return tag, nil
}

func (s *TagService) GetAll(userID uuid.UUID) ([]domain.Tag, error) {
	return s.tags.GetAll(userID)
}

func (s *TagService) GetOneByID(id, userID uuid.UUID) (domain.Tag, error) {
	return s.tags.GetOneByID(id, userID)
}

func (s *TagService) GetByTaskID(taskID, userID uuid.UUID) ([]domain.Tag, error) {
	return s.tags.GetByTaskID(taskID, userID)
}

func (s *TagService) Update(id, userID uuid.UUID, input UpdateTagInput) (domain.Tag, error) {
	tag, err := s.tags.GetOneByID(id, userID)
	if err != nil {
		return domain.Tag{}, err
	}

	if input.Name != nil {
		name, err := domain.NewTagName(*input.Name)
		if err != nil {
			return domain.Tag{}, err
		}
		tag.UpdateName(name)
	}
	if input.Color != nil {
		color, err := domain.NewHexColor(*input.Color)
		if err != nil {
			return domain.Tag{}, err
		}
		tag.UpdateColor(color)
	}

	updated, err := s.tags.Update(tag)
	if err != nil {
		return domain.Tag{}, err
	}

	s.producer.Publish(broker.TagUpdated, userID, map[string]interface{}{
		"id": updated.ID.String(),
	})
	return updated, nil
}

func (s *TagService) Delete(id, userID uuid.UUID) error {
	if _, err := s.tags.GetOneByID(id, userID); err != nil {
		return err
	}
	if err := s.tags.Delete(id, userID); err != nil {
		return err
	}

	s.producer.Publish(broker.TagDeleted, userID, map[string]interface{}{
		"id": id.String(),
	})
	return nil
}

// AssignToTask checks the tag belongs to the caller before touching the join
// table; the repository checks the task the same way.
func (s *TagService) AssignToTask(tagID, taskID, userID uuid.UUID) error {
	if _, err := s.tags.GetOneByID(tagID, userID); err != nil {
		return err
	}
	if err := s.tags.AssignToTask(tagID, taskID, userID); err != nil {
		return err
	}

	s.producer.Publish(broker.TagAssigned, userID, map[string]interface{}{
		"tagId":  tagID.String(),
		"taskId": taskID.String(),
	})
	return nil
}

func (s *TagService) UnassignFromTask(tagID, taskID, userID uuid.UUID) error {
	if _, err := s.tags.GetOneByID(tagID, userID); err != nil {
		return err
	}
	if err := s.tags.UnassignFromTask(tagID, taskID, userID); err != nil {
		return err
	}

	s.producer.Publish(broker.TagUnassigned, userID, map[string]interface{}{
		"tagId":  tagID.String(),
		"taskId": taskID.String(),
	})
	return nil
}
