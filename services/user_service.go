package services

import (
	"taskdeck/taskdeck/broker"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/repository"

	"github.com/google/uuid"
)

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserServiceInterface interface {
	GetByID(id uuid.UUID) (domain.User, error)
	Update(id uuid.UUID, input UpdateUserInput) (domain.User, error)
}

type UserService struct {
	users    repository.UserRepository
	producer *broker.Producer
}

func NewUserService(users repository.UserRepository, producer *broker.Producer) *UserService {
	return &UserService{users: users, producer: producer}
}

func (s *UserService) GetByID(id uuid.UUID) (domain.User, error) {
	return s.users.GetOneByID(id)
}

func (s *UserService) Update(id uuid.UUID, input UpdateUserInput) (domain.User, error) {
	user, err := s.users.GetOneByID(id)
	if err != nil {
		return domain.User{}, err
	}

	if input.Name != nil {
		name, err := domain.NewUserName(*input.Name)
		if err != nil {
			return domain.User{}, err
		}
		user.UpdateName(name)
	}
	if input.Email != nil {
		email, err := domain.NewEmail(*input.Email)
		if err != nil {
			return domain.User{}, err
		}
		user.UpdateEmail(email)
	}

	updated, err := s.users.Update(user)
	if err != nil {
		return domain.User{}, err
	}

	s.producer.Publish(broker.UserUpdated, updated.ID, map[string]interface{}{
		"id": updated.ID.String(),
	})
	return updated, nil
}
