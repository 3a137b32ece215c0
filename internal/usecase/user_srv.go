package usecase

import (
	"context"

	"storage-rental/internal/data/repository"
	"storage-rental/internal/dto/request"
	"storage-rental/internal/dto/response"
	"storage-rental/pkg/errs"
	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	const op = "get_profile"

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load user", err)
	}
	if user == nil {
		return nil, errs.New(errs.KindNotFound, op, "user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	const op = "update_profile"

	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errors))
		return nil, errs.New(errs.KindInvalid, op, "validation failed: "+utils.FormatValidationErrors(errors))
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load user", err)
	}
	if user == nil {
		return nil, errs.New(errs.KindNotFound, op, "user not found")
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Phone); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, errs.Wrap(errs.KindStore, op, "failed to update profile", err)
	}

	user.Name = req.Name
	user.Phone = req.Phone

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}
