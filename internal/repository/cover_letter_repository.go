package repository

import (
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoverLetterRepository struct {
	db *gorm.DB
}

func NewCoverLetterRepository(db *gorm.DB) *CoverLetterRepository {
	return &CoverLetterRepository{db}
}

func (r *CoverLetterRepository) Create(letter *model.CoverLetter) error {
	return r.db.Create(letter).Error
}

func (r *CoverLetterRepository) FindByID(id uuid.UUID) (*model.CoverLetter, error) {
	var letter model.CoverLetter
	err := r.db.First(&letter, "id = ?", id).Error
	return &letter, err
}

func (r *CoverLetterRepository) FindByUserID(userID uuid.UUID) ([]model.CoverLetter, error) {
	var letters []model.CoverLetter
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&letters).Error
	return letters, err
}

func (r *CoverLetterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.CoverLetter{}, "id = ?", id).Error
}
