package repository

import (
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

// FindByUserID returns the user's assessments in ascending creation order.
func (r *AssessmentRepository) FindByUserID(userID uuid.UUID) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&assessments).Error
	return assessments, err
}
