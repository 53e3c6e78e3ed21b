package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// IndustryInsightPayload is the JSON shape the model is instructed to return
// for an industry analysis.
type IndustryInsightPayload struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       string        `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     string        `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

var (
	demandLevels    = map[string]string{"high": "High", "medium": "Medium", "low": "Low"}
	marketOutlooks  = map[string]string{"positive": "Positive", "neutral": "Neutral", "negative": "Negative"}
)

// Validate checks field presence and the two enumerations, normalizing their
// casing. Models occasionally answer "HIGH" or "positive" for the same prompt.
func (p *IndustryInsightPayload) Validate() error {
	if len(p.SalaryRanges) == 0 {
		return fmt.Errorf("salaryRanges is empty")
	}
	for i, r := range p.SalaryRanges {
		if r.Role == "" {
			return fmt.Errorf("salaryRanges[%d].role is empty", i)
		}
	}
	level, ok := demandLevels[strings.ToLower(p.DemandLevel)]
	if !ok {
		return fmt.Errorf("demandLevel %q is not one of High/Medium/Low", p.DemandLevel)
	}
	p.DemandLevel = level
	outlook, ok := marketOutlooks[strings.ToLower(p.MarketOutlook)]
	if !ok {
		return fmt.Errorf("marketOutlook %q is not one of Positive/Neutral/Negative", p.MarketOutlook)
	}
	p.MarketOutlook = outlook
	if len(p.TopSkills) == 0 {
		return fmt.Errorf("topSkills is empty")
	}
	if len(p.KeyTrends) == 0 {
		return fmt.Errorf("keyTrends is empty")
	}
	return nil
}

type IndustryInsightDTO struct {
	ID                uuid.UUID     `json:"id"`
	Industry          string        `json:"industry"`
	SalaryRanges      []SalaryRange `json:"salary_ranges"`
	GrowthRate        float64       `json:"growth_rate"`
	DemandLevel       string        `json:"demand_level"`
	MarketOutlook     string        `json:"market_outlook"`
	TopSkills         []string      `json:"top_skills"`
	KeyTrends         []string      `json:"key_trends"`
	RecommendedSkills []string      `json:"recommended_skills"`
	LastUpdated       time.Time     `json:"last_updated"`
	NextUpdate        time.Time     `json:"next_update"`
}
