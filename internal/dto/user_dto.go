package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Industry   string   `json:"industry"`
	Experience *int     `json:"experience"`
	Bio        *string  `json:"bio"`
	Skills     []string `json:"skills"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Industry == "" {
		return fmt.Errorf("industry is required")
	}
	if r.Experience != nil && (*r.Experience < 0 || *r.Experience > 80) {
		return fmt.Errorf("experience %d is out of range", *r.Experience)
	}
	return nil
}

type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url,omitempty"`
	Industry   *string   `json:"industry"`
	Bio        *string   `json:"bio"`
	Experience *int      `json:"experience"`
	Skills     []string  `json:"skills"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type OnboardingStatusDTO struct {
	IsOnboarded bool `json:"is_onboarded"`
}
