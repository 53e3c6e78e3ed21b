package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"gorm.io/gorm"
)

// profileTxTimeout bounds the profile-update transaction. Generous because a
// brand-new industry means a model round trip inside the transaction.
const profileTxTimeout = 50 * time.Second

type UserUsecase struct {
	db          *gorm.DB
	userRepo    *repository.UserRepository
	insightRepo *repository.InsightRepository
	generator   service.TextGenerator
}

func NewUserUsecase(db *gorm.DB, userRepo *repository.UserRepository, insightRepo *repository.InsightRepository, generator service.TextGenerator) *UserUsecase {
	return &UserUsecase{db: db, userRepo: userRepo, insightRepo: insightRepo, generator: generator}
}

// SyncUser creates the User row on first authenticated visit and returns the
// existing row afterwards.
func (uc *UserUsecase) SyncUser(ctx context.Context, subject, email, name, imageURL string) (*dto.UserDTO, error) {
	if subject == "" {
		return nil, apperr.ErrUnauthorized
	}

	user, err := uc.userRepo.FindBySubject(subject)
	if err == nil {
		return toUserDTO(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		AuthSubject: subject,
		Email:       email,
		Name:        name,
		ImageURL:    imageURL,
	}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			user, err = uc.userRepo.FindBySubject(subject)
			if err != nil {
				return nil, err
			}
			return toUserDTO(user), nil
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrWriteFailure, err)
	}
	return toUserDTO(user), nil
}

func (uc *UserUsecase) GetOnboardingStatus(ctx context.Context, subject string) (*dto.OnboardingStatusDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	return &dto.OnboardingStatusDTO{IsOnboarded: user.IsOnboarded()}, nil
}

// UpdateProfile updates the user's industry, experience, bio and skills in
// one transaction that also guarantees an IndustryInsight exists for the new
// industry, generating one when missing. Both writes commit or neither does.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, subject string, req dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadRequest, err)
	}

	txCtx, cancel := context.WithTimeout(ctx, profileTxTimeout)
	defer cancel()

	err = uc.db.WithContext(txCtx).Transaction(func(tx *gorm.DB) error {
		insights := uc.insightRepo.WithTx(tx)

		if _, err := insights.FindByIndustry(req.Industry); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			generated, err := generateIndustryInsight(txCtx, uc.generator, req.Industry)
			if err != nil {
				return err
			}
			// Losing the create race must not abort the transaction, so the
			// insert ignores a conflicting winner instead of raising one.
			if err := insights.CreateIfAbsent(generated); err != nil {
				return err
			}
		}

		user.Industry = &req.Industry
		user.Experience = req.Experience
		user.Bio = req.Bio
		user.Skills = jsonColumn(req.Skills)
		return uc.userRepo.WithTx(tx).UpdateProfile(user)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrModelInvocation) || errors.Is(err, apperr.ErrParse) {
			return nil, err
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: profile update transaction timed out", apperr.ErrWriteFailure)
		}
		return nil, fmt.Errorf("%w: failed to update profile: %v", apperr.ErrWriteFailure, err)
	}

	return toUserDTO(user), nil
}
