package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.IndustryInsight{}, &model.Assessment{}, &model.CoverLetter{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// stubGenerator answers every prompt with fn. Tests swap fn per scenario.
type stubGenerator struct {
	fn    func(prompt string) (string, error)
	calls int
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.fn(prompt)
}

func seedUser(t *testing.T, db *gorm.DB, industry string, skills []string) *model.User {
	t.Helper()
	user := &model.User{
		AuthSubject: "auth|" + strings.ReplaceAll(t.Name(), "/", "_"),
		Email:       "dev@example.com",
		Name:        "Dev",
	}
	if industry != "" {
		user.Industry = &industry
	}
	if skills != nil {
		b, _ := json.Marshal(skills)
		user.Skills = b
	}
	if err := repository.NewUserRepository(db).Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

const insightJSON = `{
  "salaryRanges": [
    {"role": "Software Engineer", "min": 70000, "max": 160000, "median": 110000, "location": "Remote"},
    {"role": "DevOps Engineer", "min": 80000, "max": 170000, "median": 120000, "location": "Remote"},
    {"role": "Data Scientist", "min": 85000, "max": 180000, "median": 125000, "location": "Remote"},
    {"role": "Product Manager", "min": 90000, "max": 190000, "median": 135000, "location": "Remote"},
    {"role": "Engineering Manager", "min": 120000, "max": 220000, "median": 160000, "location": "Remote"}
  ],
  "growthRate": 7.5,
  "demandLevel": "High",
  "topSkills": ["Go", "Kubernetes", "SQL", "AWS", "System Design"],
  "marketOutlook": "Positive",
  "keyTrends": ["AI adoption", "Platform engineering", "Edge computing", "Privacy regulation", "Remote work"],
  "recommendedSkills": ["LLM integration", "Terraform"]
}`

// fencedInsightJSON imitates the usual model habit of wrapping the reply.
const fencedInsightJSON = "```json\n" + insightJSON + "\n```"

func quizFixture(t *testing.T, n int) (string, []dto.QuizQuestion) {
	t.Helper()
	questions := make([]dto.QuizQuestion, n)
	for i := range questions {
		correct := fmt.Sprintf("correct-%d", i)
		questions[i] = dto.QuizQuestion{
			Question:      fmt.Sprintf("Question %d?", i),
			Options:       []string{"wrong-a", "wrong-b", "wrong-c", correct},
			CorrectAnswer: correct,
			Explanation:   fmt.Sprintf("Explanation %d", i),
		}
	}
	b, err := json.Marshal(dto.QuizPayload{Questions: questions})
	if err != nil {
		t.Fatalf("marshal quiz fixture: %v", err)
	}
	return "```json\n" + string(b) + "\n```", questions
}
