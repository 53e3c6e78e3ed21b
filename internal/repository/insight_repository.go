package repository

import (
	"time"

	"github.com/fadilmartias/career-coach/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InsightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{db}
}

func (r *InsightRepository) WithTx(tx *gorm.DB) *InsightRepository {
	return &InsightRepository{tx}
}

// Create relies on the unique index on industry: concurrent creates for the
// same industry surface gorm.ErrDuplicatedKey, which callers turn into a
// re-read of the winner's row.
func (r *InsightRepository) Create(insight *model.IndustryInsight) error {
	return r.db.Create(insight).Error
}

// CreateIfAbsent inserts the insight unless a row for its industry already
// exists. Losing a concurrent create is silent instead of a raised unique
// violation, so it stays safe inside an open transaction, where postgres
// would otherwise abort every statement after the error.
func (r *InsightRepository) CreateIfAbsent(insight *model.IndustryInsight) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "industry"}},
		DoNothing: true,
	}).Create(insight).Error
}

func (r *InsightRepository) FindByIndustry(industry string) (*model.IndustryInsight, error) {
	var insight model.IndustryInsight
	err := r.db.First(&insight, "industry = ?", industry).Error
	return &insight, err
}

func (r *InsightRepository) Update(insight *model.IndustryInsight) error {
	return r.db.Save(insight).Error
}

// FindDue returns insights whose refresh horizon has passed.
func (r *InsightRepository) FindDue(now time.Time) ([]model.IndustryInsight, error) {
	var insights []model.IndustryInsight
	err := r.db.Where("next_update <= ?", now).Find(&insights).Error
	return insights, err
}
