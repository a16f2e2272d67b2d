package service

import (
	"context"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/pkg/security"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
)

type IUserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, userId uint) (*dto.UserResponse, error)
	ListAll(ctx context.Context) ([]*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *security.TokenManager
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, tokens *security.TokenManager, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		tokens:     tokens,
		log:        log,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Exact-match email lookup, as stored.
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Email is already in use")
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	s.log.Info("user", "user registered", map[string]interface{}{"user_id": user.Id})
	return &dto.TokenResponse{Token: token}, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Same outcome for unknown email and wrong password.
	if user == nil || !security.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperr.InvalidToken("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.Id)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

func (s *userService) GetProfile(ctx context.Context, userId uint) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return toUserResponse(user), nil
}

// ListAll returns the full user catalog. The endpoint is open; responses
// carry no password material.
func (s *userService) ListAll(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		response[i] = toUserResponse(user)
	}
	return response, nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
