package service

import (
	"context"
	"fmt"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	userRepo *repository.UserRepository
	txRepo   *repository.TransactionRepository
	logger   *zap.Logger
}

func NewProfileService(userRepo *repository.UserRepository, txRepo *repository.TransactionRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		txRepo:   txRepo,
		logger:   logger,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	totalIncome, err := s.txRepo.SumByType(ctx, userID, models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.txRepo.SumByType(ctx, userID, models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	netWorth := totalIncome - totalExpense

	return &dto.ProfileResponse{
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		Bio:          user.Bio,
		FireTarget:   user.FireTarget,
		Premium:      user.Premium,
		NetWorth:     netWorth,
		FireProgress: FireProgress(netWorth, user.FireTarget),
	}, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) error {
	if req.DisplayName == "" {
		return fmt.Errorf("%w: display name is required", ErrValidation)
	}
	if req.FireTarget < 0 {
		return fmt.Errorf("%w: fire target must not be negative", ErrValidation)
	}

	return s.userRepo.UpdateProfile(ctx, userID, req.DisplayName, req.Bio, req.FireTarget)
}

func (s *ProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hash)
}
