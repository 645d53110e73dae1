package services

import (
	"errors"

	"taskdeck/taskdeck/broker"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/repository"
	"taskdeck/taskdeck/utils/token"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// TokenPair carries the two freshly signed tokens a successful login or
// refresh produces.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthServiceInterface interface {
	Register(input RegisterInput) (domain.User, TokenPair, error)
	Login(input LoginInput) (domain.User, TokenPair, error)
	Refresh(refreshToken string) (string, error)
}

type AuthService struct {
	users    repository.UserRepository
	tokens   *token.Manager
	producer *broker.Producer
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager, producer *broker.Producer) *AuthService {
	return &AuthService{users: users, tokens: tokens, producer: producer}
}

// Register creates the account and logs it in at once, so the response can
// carry session cookies.
func (s *AuthService) Register(input RegisterInput) (domain.User, TokenPair, error) {
	name, err := domain.NewUserName(input.Name)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return domain.User{}, TokenPair{}, err
	}

	exists, err := s.users.ExistsByEmail(string(email))
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	if exists {
		return domain.User{}, TokenPair{}, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}

	user, err := s.users.Create(domain.RegisterUser(name, email, string(hash)))
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}

	s.producer.Publish(broker.UserCreated, user.ID, map[string]interface{}{
		"id":    user.ID.String(),
		"email": string(user.Email),
	})

	pair, err := s.issueTokens(user)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// Login reports the same error for an unknown email and a wrong password so
// responses never reveal which accounts exist.
func (s *AuthService) Login(input LoginInput) (domain.User, TokenPair, error) {
	user, err := s.users.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return domain.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh re-issues only the access token. The refresh token stays as it is
// until it expires; a missing or invalid one never re-authenticates.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrRefreshTokenNotFound
	}

	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := s.users.GetOneByID(claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	return s.tokens.GenerateAccessToken(user.ID, string(user.Email))
}

func (s *AuthService) issueTokens(user domain.User) (TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, string(user.Email))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, string(user.Email))
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
