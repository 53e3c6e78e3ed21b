package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"gorm.io/gorm"
)

func newInsightUsecase(t *testing.T, gen *stubGenerator) (*InsightUsecase, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	uc := NewInsightUsecase(
		repository.NewUserRepository(db),
		repository.NewInsightRepository(db),
		gen,
	)
	return uc, db
}

func TestGetIndustryInsightsCreatesOnce(t *testing.T) {
	gen := &stubGenerator{fn: func(string) (string, error) { return fencedInsightJSON, nil }}
	uc, db := newInsightUsecase(t, gen)
	user := seedUser(t, db, "Technology", nil)

	first, err := uc.GetIndustryInsights(context.Background(), user.AuthSubject)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.Industry != "Technology" {
		t.Fatalf("got industry %q", first.Industry)
	}
	if first.DemandLevel != "High" || first.MarketOutlook != "Positive" {
		t.Fatalf("payload fields not persisted: %+v", first)
	}
	if len(first.SalaryRanges) != 5 {
		t.Fatalf("expected 5 salary ranges, got %d", len(first.SalaryRanges))
	}
	if !first.NextUpdate.After(time.Now().Add(6 * 24 * time.Hour)) {
		t.Fatal("next update should be about a week out")
	}

	second, err := uc.GetIndustryInsights(context.Background(), user.AuthSubject)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("second call should return the same record")
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generation, got %d", gen.calls)
	}

	var count int64
	if err := db.Model(&model.IndustryInsight{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 insight row, got %d", count)
	}
}

func TestGetIndustryInsightsWithoutIndustry(t *testing.T) {
	uc, db := newInsightUsecase(t, &stubGenerator{fn: func(string) (string, error) {
		t.Fatal("generator must not run without an industry")
		return "", nil
	}})
	user := seedUser(t, db, "", nil)

	if _, err := uc.GetIndustryInsights(context.Background(), user.AuthSubject); !errors.Is(err, apperr.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestGetIndustryInsightsParseFailureAborts(t *testing.T) {
	uc, db := newInsightUsecase(t, &stubGenerator{fn: func(string) (string, error) {
		return "I think the industry looks great!", nil
	}})
	user := seedUser(t, db, "Technology", nil)

	if _, err := uc.GetIndustryInsights(context.Background(), user.AuthSubject); !errors.Is(err, apperr.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}

	var count int64
	if err := db.Model(&model.IndustryInsight{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("no insight row should exist after a parse failure")
	}
}

func TestRefreshDueInsights(t *testing.T) {
	gen := &stubGenerator{fn: func(string) (string, error) { return insightJSON, nil }}
	uc, db := newInsightUsecase(t, gen)
	repo := repository.NewInsightRepository(db)

	stale := &model.IndustryInsight{
		Industry:    "Finance",
		GrowthRate:  1.0,
		DemandLevel: "Low",
		NextUpdate:  time.Now().Add(-time.Hour),
	}
	fresh := &model.IndustryInsight{
		Industry:    "Healthcare",
		GrowthRate:  2.0,
		DemandLevel: "Medium",
		NextUpdate:  time.Now().Add(time.Hour),
	}
	for _, insight := range []*model.IndustryInsight{stale, fresh} {
		if err := repo.Create(insight); err != nil {
			t.Fatalf("seed insight: %v", err)
		}
	}

	if err := uc.RefreshDueInsights(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 regeneration, got %d", gen.calls)
	}

	refreshed, err := repo.FindByIndustry("Finance")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if refreshed.GrowthRate != 7.5 || refreshed.DemandLevel != "High" {
		t.Fatalf("stale insight not refreshed: %+v", refreshed)
	}
	if !refreshed.NextUpdate.After(time.Now()) {
		t.Fatal("refresh should push next update into the future")
	}

	untouched, err := repo.FindByIndustry("Healthcare")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if untouched.GrowthRate != 2.0 {
		t.Fatal("fresh insight should not be regenerated")
	}
}

func TestRefreshDueInsightsKeepsStaleRowOnFailure(t *testing.T) {
	uc, db := newInsightUsecase(t, &stubGenerator{fn: func(string) (string, error) {
		return "", errors.New("upstream down")
	}})
	repo := repository.NewInsightRepository(db)

	stale := &model.IndustryInsight{
		Industry:   "Finance",
		GrowthRate: 1.0,
		NextUpdate: time.Now().Add(-time.Hour),
	}
	if err := repo.Create(stale); err != nil {
		t.Fatalf("seed insight: %v", err)
	}

	if err := uc.RefreshDueInsights(context.Background()); err != nil {
		t.Fatalf("a failed row should not fail the run: %v", err)
	}

	kept, err := repo.FindByIndustry("Finance")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if kept.GrowthRate != 1.0 {
		t.Fatal("failed regeneration must keep the stale row")
	}
}
