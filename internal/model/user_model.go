package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AuthSubject string         `gorm:"type:varchar(191);uniqueIndex" json:"auth_subject"`
	Email       string         `gorm:"type:varchar(255)" json:"email"`
	Name        string         `gorm:"type:varchar(255)" json:"name"`
	ImageURL    string         `gorm:"type:text" json:"image_url"`
	Industry    *string        `gorm:"type:varchar(191);index" json:"industry"`
	Bio         *string        `gorm:"type:text" json:"bio"`
	Experience  *int           `json:"experience"` // years
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SkillList decodes the stored skill tags. A missing or malformed column
// yields an empty list rather than an error.
func (u *User) SkillList() []string {
	if len(u.Skills) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(u.Skills, &skills); err != nil {
		return nil
	}
	return skills
}

func (u *User) IsOnboarded() bool {
	return u.Industry != nil && *u.Industry != ""
}
