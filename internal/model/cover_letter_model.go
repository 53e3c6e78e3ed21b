package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoverLetter struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	CompanyName    string    `gorm:"type:varchar(255)" json:"company_name"`
	JobTitle       string    `gorm:"type:varchar(255)" json:"job_title"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	Content        string    `gorm:"type:text" json:"content"` // markdown
	Status         string    `gorm:"type:varchar(50)" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *CoverLetter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
