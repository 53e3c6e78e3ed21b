package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/prompt"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoverLetterUsecase struct {
	userRepo        *repository.UserRepository
	coverLetterRepo *repository.CoverLetterRepository
	generator       service.TextGenerator
}

func NewCoverLetterUsecase(userRepo *repository.UserRepository, coverLetterRepo *repository.CoverLetterRepository, generator service.TextGenerator) *CoverLetterUsecase {
	return &CoverLetterUsecase{userRepo: userRepo, coverLetterRepo: coverLetterRepo, generator: generator}
}

func (uc *CoverLetterUsecase) Generate(ctx context.Context, subject string, req dto.GenerateCoverLetterRequest) (*dto.CoverLetterDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadRequest, err)
	}

	in := prompt.CoverLetterInput{
		Name:           user.Name,
		Skills:         user.SkillList(),
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
	}
	if user.Industry != nil {
		in.Industry = *user.Industry
	}
	if user.Experience != nil {
		in.Experience = *user.Experience
	}
	if user.Bio != nil {
		in.Bio = *user.Bio
	}

	text, err := uc.generator.GenerateText(ctx, prompt.CoverLetter(in))
	if err != nil {
		return nil, err
	}

	letter := &model.CoverLetter{
		UserID:         user.ID,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Content:        strings.TrimSpace(text),
		Status:         "completed",
	}
	if err := uc.coverLetterRepo.Create(letter); err != nil {
		return nil, fmt.Errorf("%w: failed to save cover letter: %v", apperr.ErrWriteFailure, err)
	}
	return toCoverLetterDTO(letter), nil
}

func (uc *CoverLetterUsecase) List(ctx context.Context, subject string) ([]dto.CoverLetterDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	letters, err := uc.coverLetterRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CoverLetterDTO, len(letters))
	for i := range letters {
		out[i] = *toCoverLetterDTO(&letters[i])
	}
	return out, nil
}

func (uc *CoverLetterUsecase) Get(ctx context.Context, subject string, id uuid.UUID) (*dto.CoverLetterDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	letter, err := uc.ownedLetter(user.ID, id)
	if err != nil {
		return nil, err
	}
	return toCoverLetterDTO(letter), nil
}

func (uc *CoverLetterUsecase) Delete(ctx context.Context, subject string, id uuid.UUID) error {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return err
	}
	if _, err := uc.ownedLetter(user.ID, id); err != nil {
		return err
	}
	return uc.coverLetterRepo.Delete(id)
}

func (uc *CoverLetterUsecase) ownedLetter(userID, id uuid.UUID) (*model.CoverLetter, error) {
	letter, err := uc.coverLetterRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cover letter", apperr.ErrNotFound)
		}
		return nil, err
	}
	if letter.UserID != userID {
		return nil, fmt.Errorf("%w: cover letter", apperr.ErrNotFound)
	}
	return letter, nil
}
