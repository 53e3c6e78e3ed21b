package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is one completed quiz attempt. Rows are immutable after create.
type Assessment struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	QuizScore      float64        `gorm:"type:float" json:"quiz_score"` // 0-100
	Questions      datatypes.JSON `gorm:"type:jsonb" json:"questions"`
	Category       string         `gorm:"type:varchar(100)" json:"category"`
	ImprovementTip string         `gorm:"type:text" json:"improvement_tip"` // empty when no wrong answers or generation failed
	CreatedAt      time.Time      `json:"created_at"`
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
