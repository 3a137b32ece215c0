package usecase

import (
	"context"
	"time"

	"storage-rental/internal/data/entity"
	"storage-rental/internal/data/repository"
	"storage-rental/internal/dto/request"
	"storage-rental/internal/dto/response"
	"storage-rental/pkg/errs"
	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	const op = "register"

	// 1. Validate input
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errors))
		return nil, errs.New(errs.KindInvalid, op, "validation failed: "+utils.FormatValidationErrors(errors))
	}

	// 2. Email must be unused
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to check email", err)
	}
	if existingUser != nil {
		return nil, errs.New(errs.KindConflict, op, "email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, errs.Wrap(errs.KindStore, op, "failed to process password", err)
	}

	// 4. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         entity.Role(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, errs.Wrap(errs.KindStore, op, "failed to create account", err)
	}

	// 5. Issue token
	token, err := utils.GenerateToken(s.config.JWT, user.ID, user.Name, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, errs.Wrap(errs.KindStore, op, "failed to issue token", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	const op = "login"

	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errors))
		return nil, errs.New(errs.KindInvalid, op, "validation failed: "+utils.FormatValidationErrors(errors))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to find user", err)
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, errs.New(errs.KindUnauthorized, op, "invalid credentials")
	}

	token, err := utils.GenerateToken(s.config.JWT, user.ID, user.Name, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, errs.Wrap(errs.KindStore, op, "failed to issue token", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user),
	}, nil
}
