package usecase

import (
	"encoding/json"
	"log"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"gorm.io/datatypes"
)

// jsonColumn marshals v for a JSON column. The inputs are decoded model
// payloads and request fields, so a marshal failure means a shape bug; it is
// logged rather than silently persisted as null.
func jsonColumn(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("marshal %T for json column: %v", v, err)
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

func stringList(col datatypes.JSON) []string {
	var out []string
	if len(col) > 0 {
		_ = json.Unmarshal(col, &out)
	}
	return out
}

func toInsightDTO(insight *model.IndustryInsight) *dto.IndustryInsightDTO {
	var ranges []dto.SalaryRange
	if len(insight.SalaryRanges) > 0 {
		_ = json.Unmarshal(insight.SalaryRanges, &ranges)
	}
	return &dto.IndustryInsightDTO{
		ID:                insight.ID,
		Industry:          insight.Industry,
		SalaryRanges:      ranges,
		GrowthRate:        insight.GrowthRate,
		DemandLevel:       insight.DemandLevel,
		MarketOutlook:     insight.MarketOutlook,
		TopSkills:         stringList(insight.TopSkills),
		KeyTrends:         stringList(insight.KeyTrends),
		RecommendedSkills: stringList(insight.RecommendedSkills),
		LastUpdated:       insight.LastUpdated,
		NextUpdate:        insight.NextUpdate,
	}
}

func toAssessmentDTO(assessment *model.Assessment) *dto.AssessmentDTO {
	var results []dto.QuestionResult
	if len(assessment.Questions) > 0 {
		_ = json.Unmarshal(assessment.Questions, &results)
	}
	return &dto.AssessmentDTO{
		ID:             assessment.ID,
		UserID:         assessment.UserID,
		QuizScore:      assessment.QuizScore,
		Questions:      results,
		Category:       assessment.Category,
		ImprovementTip: assessment.ImprovementTip,
		CreatedAt:      assessment.CreatedAt,
	}
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		ImageURL:   user.ImageURL,
		Industry:   user.Industry,
		Bio:        user.Bio,
		Experience: user.Experience,
		Skills:     user.SkillList(),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toCoverLetterDTO(letter *model.CoverLetter) *dto.CoverLetterDTO {
	return &dto.CoverLetterDTO{
		ID:             letter.ID,
		CompanyName:    letter.CompanyName,
		JobTitle:       letter.JobTitle,
		JobDescription: letter.JobDescription,
		Content:        letter.Content,
		Status:         letter.Status,
		CreatedAt:      letter.CreatedAt,
		UpdatedAt:      letter.UpdatedAt,
	}
}
