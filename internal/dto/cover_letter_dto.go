package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type GenerateCoverLetterRequest struct {
	CompanyName    string `json:"company_name"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

func (r *GenerateCoverLetterRequest) Validate() error {
	if r.CompanyName == "" {
		return fmt.Errorf("company_name is required")
	}
	if r.JobTitle == "" {
		return fmt.Errorf("job_title is required")
	}
	return nil
}

type CoverLetterDTO struct {
	ID             uuid.UUID `json:"id"`
	CompanyName    string    `json:"company_name"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description,omitempty"`
	Content        string    `json:"content"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
