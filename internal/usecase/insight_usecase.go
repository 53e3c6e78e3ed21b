package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/prompt"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/fadilmartias/career-coach/internal/util"
	"gorm.io/gorm"
)

type InsightUsecase struct {
	userRepo    *repository.UserRepository
	insightRepo *repository.InsightRepository
	generator   service.TextGenerator
}

func NewInsightUsecase(userRepo *repository.UserRepository, insightRepo *repository.InsightRepository, generator service.TextGenerator) *InsightUsecase {
	return &InsightUsecase{userRepo: userRepo, insightRepo: insightRepo, generator: generator}
}

// GetIndustryInsights returns the cached insight for the caller's industry,
// generating and persisting it on first need.
func (uc *InsightUsecase) GetIndustryInsights(ctx context.Context, subject string) (*dto.IndustryInsightDTO, error) {
	user, err := requireUser(uc.userRepo, subject)
	if err != nil {
		return nil, err
	}
	if !user.IsOnboarded() {
		return nil, fmt.Errorf("%w: industry is not set for the user", apperr.ErrBadRequest)
	}

	insight, err := uc.getOrCreateInsight(ctx, *user.Industry)
	if err != nil {
		return nil, err
	}
	return toInsightDTO(insight), nil
}

func (uc *InsightUsecase) getOrCreateInsight(ctx context.Context, industry string) (*model.IndustryInsight, error) {
	insight, err := uc.insightRepo.FindByIndustry(industry)
	if err == nil {
		return insight, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	generated, err := generateIndustryInsight(ctx, uc.generator, industry)
	if err != nil {
		return nil, err
	}
	if err := uc.insightRepo.Create(generated); err != nil {
		// Lost the create race for a never-before-seen industry; the unique
		// index on industry rejected us, so the winner's row exists now.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uc.insightRepo.FindByIndustry(industry)
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrWriteFailure, err)
	}
	return generated, nil
}

// RefreshDueInsights regenerates every insight whose refresh horizon has
// passed. A failed regeneration keeps the stale row and is picked up on the
// next scan.
func (uc *InsightUsecase) RefreshDueInsights(ctx context.Context) error {
	due, err := uc.insightRepo.FindDue(time.Now())
	if err != nil {
		return err
	}
	for i := range due {
		insight := &due[i]
		generated, err := generateIndustryInsight(ctx, uc.generator, insight.Industry)
		if err != nil {
			log.Printf("refresh insight for %s: %v", insight.Industry, err)
			continue
		}
		insight.SalaryRanges = generated.SalaryRanges
		insight.GrowthRate = generated.GrowthRate
		insight.DemandLevel = generated.DemandLevel
		insight.MarketOutlook = generated.MarketOutlook
		insight.TopSkills = generated.TopSkills
		insight.KeyTrends = generated.KeyTrends
		insight.RecommendedSkills = generated.RecommendedSkills
		insight.LastUpdated = generated.LastUpdated
		insight.NextUpdate = generated.NextUpdate
		if err := uc.insightRepo.Update(insight); err != nil {
			log.Printf("save refreshed insight for %s: %v", insight.Industry, err)
		}
	}
	return nil
}

// generateIndustryInsight runs the prompt -> model -> sanitize pipeline and
// shapes the payload into a persistable row. Shared by the request paths and
// the scheduled refresher.
func generateIndustryInsight(ctx context.Context, generator service.TextGenerator, industry string) (*model.IndustryInsight, error) {
	text, err := generator.GenerateText(ctx, prompt.IndustryInsights(industry))
	if err != nil {
		return nil, err
	}

	var payload dto.IndustryInsightPayload
	if err := util.DecodeModelJSON(text, &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrParse, err)
	}

	now := time.Now()
	return &model.IndustryInsight{
		Industry:          industry,
		SalaryRanges:      jsonColumn(payload.SalaryRanges),
		GrowthRate:        payload.GrowthRate,
		DemandLevel:       payload.DemandLevel,
		MarketOutlook:     payload.MarketOutlook,
		TopSkills:         jsonColumn(payload.TopSkills),
		KeyTrends:         jsonColumn(payload.KeyTrends),
		RecommendedSkills: jsonColumn(payload.RecommendedSkills),
		LastUpdated:       now,
		NextUpdate:        now.Add(model.InsightRefreshInterval),
	}, nil
}
