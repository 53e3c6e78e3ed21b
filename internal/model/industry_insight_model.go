package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InsightRefreshInterval is how far in the future NextUpdate is set whenever
// an insight is created or regenerated.
const InsightRefreshInterval = 7 * 24 * time.Hour

type IndustryInsight struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Industry          string         `gorm:"type:varchar(191);uniqueIndex" json:"industry"`
	SalaryRanges      datatypes.JSON `gorm:"type:jsonb" json:"salary_ranges"`
	GrowthRate        float64        `gorm:"type:float" json:"growth_rate"` // percentage
	DemandLevel       string         `gorm:"type:varchar(50)" json:"demand_level"`
	MarketOutlook     string         `gorm:"type:varchar(50)" json:"market_outlook"`
	TopSkills         datatypes.JSON `gorm:"type:jsonb" json:"top_skills"`
	KeyTrends         datatypes.JSON `gorm:"type:jsonb" json:"key_trends"`
	RecommendedSkills datatypes.JSON `gorm:"type:jsonb" json:"recommended_skills"`
	LastUpdated       time.Time      `json:"last_updated"`
	NextUpdate        time.Time      `json:"next_update"`
}

func (i *IndustryInsight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
