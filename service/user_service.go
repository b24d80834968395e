package service

import (
	"errors"
	"tenbank-api/model"
	"tenbank-api/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService handles registration and login for the presentation boundary.
type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed login credential.
func (s *UserService) Register(req model.RegisterRequest) (*model.User, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credential and issues a JWT for the principal.
func (s *UserService) Login(req model.LoginRequest) (string, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return GenerateJWT(user.ID, user.Email)
}
