package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/prompt"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/fadilmartias/career-coach/internal/util"
)

type AssessmentUsecase struct {
	userRepo       *repository.UserRepository
	assessmentRepo *repository.AssessmentRepository
	generator      service.TextGenerator
}

func NewAssessmentUsecase(userRepo *repository.UserRepository, assessmentRepo *repository.AssessmentRepository, generator service.TextGenerator) *AssessmentUsecase {
	return &AssessmentUsecase{userRepo: userRepo, assessmentRepo: assessmentRepo, generator: generator}
}

// GenerateQuiz produces 10 multiple-choice questions for the caller's
// industry and skills. Nothing is persisted until the quiz is submitted.
func (uc *AssessmentUsecase) GenerateQuiz(ctx context.Context, subject string) ([]dto.QuizQuestion, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	if !user.IsOnboarded() {
		return nil, fmt.Errorf("%w: industry is not set for the user", apperr.ErrBadRequest)
	}

	text, err := uc.generator.GenerateText(ctx, prompt.Quiz(*user.Industry, user.SkillList()))
	if err != nil {
		return nil, err
	}

	var payload dto.QuizPayload
	if err := util.DecodeModelJSON(text, &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrParse, err)
	}
	return payload.Questions, nil
}

// SaveQuizResult grades the submitted answers against the recorded correct
// answers and persists one immutable Assessment. An improvement tip is only
// generated when at least one answer is wrong; a failed tip generation
// degrades to an empty tip instead of failing the save.
func (uc *AssessmentUsecase) SaveQuizResult(ctx context.Context, subject string, req dto.SaveQuizResultRequest) (*dto.AssessmentDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadRequest, err)
	}

	results := make([]dto.QuestionResult, len(req.Questions))
	var wrong []prompt.WrongAnswer
	for i, q := range req.Questions {
		answer := req.Answers[i]
		correct := q.CorrectAnswer == answer
		results[i] = dto.QuestionResult{
			Question:    q.Question,
			Answer:      q.CorrectAnswer,
			UserAnswer:  answer,
			IsCorrect:   correct,
			Explanation: q.Explanation,
		}
		if !correct {
			wrong = append(wrong, prompt.WrongAnswer{
				Question:      q.Question,
				CorrectAnswer: q.CorrectAnswer,
				UserAnswer:    answer,
			})
		}
	}

	improvementTip := ""
	if len(wrong) > 0 {
		industry := ""
		if user.Industry != nil {
			industry = *user.Industry
		}
		tip, err := uc.generator.GenerateText(ctx, prompt.ImprovementTip(industry, wrong))
		if err != nil {
			log.Printf("generate improvement tip: %v", err)
		} else {
			improvementTip = strings.TrimSpace(tip)
		}
	}

	assessment := &model.Assessment{
		UserID:         user.ID,
		QuizScore:      req.Score,
		Questions:      jsonColumn(results),
		Category:       "Technical",
		ImprovementTip: improvementTip,
	}
	if err := uc.assessmentRepo.Create(assessment); err != nil {
		return nil, fmt.Errorf("%w: failed to save quiz result: %v", apperr.ErrWriteFailure, err)
	}
	return toAssessmentDTO(assessment), nil
}

// GetAssessments returns the caller's assessments in ascending creation
// order.
func (uc *AssessmentUsecase) GetAssessments(ctx context.Context, subject string) ([]dto.AssessmentDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}

	assessments, err := uc.assessmentRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssessmentDTO, len(assessments))
	for i := range assessments {
		out[i] = *toAssessmentDTO(&assessments[i])
	}
	return out, nil
}
