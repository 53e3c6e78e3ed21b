package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"gorm.io/gorm"
)

func newUserUsecase(t *testing.T, gen *stubGenerator) (*UserUsecase, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	uc := NewUserUsecase(
		db,
		repository.NewUserRepository(db),
		repository.NewInsightRepository(db),
		gen,
	)
	return uc, db
}

func TestSyncUserCreatesThenReturnsExisting(t *testing.T) {
	uc, db := newUserUsecase(t, &stubGenerator{})

	created, err := uc.SyncUser(context.Background(), "auth|sync-1", "dev@example.com", "Dev", "https://img.example.com/dev.png")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Email != "dev@example.com" || created.Name != "Dev" {
		t.Fatalf("created user not populated: %+v", created)
	}

	again, err := uc.SyncUser(context.Background(), "auth|sync-1", "other@example.com", "Other", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if again.ID != created.ID {
		t.Fatal("second sync should return the existing user")
	}
	if again.Email != "dev@example.com" {
		t.Fatal("sync must not overwrite the stored profile")
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 user row, got %d", count)
	}
}

func TestSyncUserWithoutSubject(t *testing.T) {
	uc, _ := newUserUsecase(t, &stubGenerator{})
	if _, err := uc.SyncUser(context.Background(), "", "dev@example.com", "Dev", ""); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetOnboardingStatus(t *testing.T) {
	uc, db := newUserUsecase(t, &stubGenerator{})
	fresh := seedUser(t, db, "", nil)

	status, err := uc.GetOnboardingStatus(context.Background(), fresh.AuthSubject)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status.IsOnboarded {
		t.Fatal("user without an industry must not be onboarded")
	}

	onboarded := &model.User{AuthSubject: "auth|onboarded", Email: "a@example.com", Name: "A"}
	industry := "Technology"
	onboarded.Industry = &industry
	if err := db.Create(onboarded).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	status, err = uc.GetOnboardingStatus(context.Background(), onboarded.AuthSubject)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !status.IsOnboarded {
		t.Fatal("user with an industry must be onboarded")
	}

	if _, err := uc.GetOnboardingStatus(context.Background(), "auth|missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfileCreatesInsightAndUser(t *testing.T) {
	gen := &stubGenerator{fn: func(string) (string, error) { return fencedInsightJSON, nil }}
	uc, db := newUserUsecase(t, gen)
	user := seedUser(t, db, "", nil)

	experience := 6
	bio := "Backend engineer moving into platform work"
	updated, err := uc.UpdateProfile(context.Background(), user.AuthSubject, dto.UpdateProfileRequest{
		Industry:   "Technology",
		Experience: &experience,
		Bio:        &bio,
		Skills:     []string{"Go", "Postgres"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Industry == nil || *updated.Industry != "Technology" {
		t.Fatalf("industry not updated: %+v", updated)
	}
	if updated.Experience == nil || *updated.Experience != 6 {
		t.Fatalf("experience not updated: %+v", updated)
	}
	if len(updated.Skills) != 2 || updated.Skills[0] != "Go" {
		t.Fatalf("skills not updated: %+v", updated.Skills)
	}

	var insightCount int64
	if err := db.Model(&model.IndustryInsight{}).Count(&insightCount).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if insightCount != 1 {
		t.Fatalf("expected exactly 1 insight row, got %d", insightCount)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generation, got %d", gen.calls)
	}

	stored := &model.User{}
	if err := db.First(stored, "auth_subject = ?", user.AuthSubject).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Industry == nil || *stored.Industry != "Technology" {
		t.Fatal("profile update not persisted")
	}
}

func TestUpdateProfileReusesExistingInsight(t *testing.T) {
	uc, db := newUserUsecase(t, &stubGenerator{fn: func(string) (string, error) {
		t.Fatal("generator must not run when the insight exists")
		return "", nil
	}})
	user := seedUser(t, db, "", nil)

	existing := &model.IndustryInsight{Industry: "Technology", DemandLevel: "High"}
	if err := db.Create(existing).Error; err != nil {
		t.Fatalf("seed insight: %v", err)
	}

	if _, err := uc.UpdateProfile(context.Background(), user.AuthSubject, dto.UpdateProfileRequest{Industry: "Technology"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestUpdateProfileRollsBackOnGenerationFailure(t *testing.T) {
	uc, db := newUserUsecase(t, &stubGenerator{fn: func(string) (string, error) {
		return "no json here", nil
	}})
	before := "Finance"
	user := seedUser(t, db, before, nil)

	bio := "switching tracks"
	_, err := uc.UpdateProfile(context.Background(), user.AuthSubject, dto.UpdateProfileRequest{
		Industry: "Technology",
		Bio:      &bio,
	})
	if !errors.Is(err, apperr.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}

	var insightCount int64
	if err := db.Model(&model.IndustryInsight{}).Count(&insightCount).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if insightCount != 0 {
		t.Fatal("failed transaction must not leave an insight row")
	}

	stored := &model.User{}
	if err := db.First(stored, "auth_subject = ?", user.AuthSubject).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Industry == nil || *stored.Industry != "Finance" {
		t.Fatal("failed transaction must keep the prior profile")
	}
	if stored.Bio != nil {
		t.Fatal("failed transaction must not persist the new bio")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	uc, db := newUserUsecase(t, &stubGenerator{})
	user := seedUser(t, db, "", nil)

	if _, err := uc.UpdateProfile(context.Background(), user.AuthSubject, dto.UpdateProfileRequest{}); !errors.Is(err, apperr.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for missing industry, got %v", err)
	}

	experience := -2
	req := dto.UpdateProfileRequest{Industry: "Technology", Experience: &experience}
	if _, err := uc.UpdateProfile(context.Background(), user.AuthSubject, req); !errors.Is(err, apperr.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for negative experience, got %v", err)
	}
}
