package dto

import (
	"time"

	"career-guide/internal/domain/application"

	"github.com/google/uuid"
)

type SubmitApplicationRequest struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Skills      string `json:"skills"`
	Experience  string `json:"experience"`
	CoverLetter string `json:"cover_letter"`
	ResumeFile  string `json:"resume_file"`
}

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobTitle    string    `json:"job_title"`
	Company     string    `json:"company"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Skills      string    `json:"skills"`
	Experience  string    `json:"experience"`
	CoverLetter string    `json:"cover_letter"`
	ResumeFile  string    `json:"resume_file"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_date"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobTitle:    a.JobTitle,
		Company:     a.Company,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Skills:      a.Skills,
		Experience:  a.Experience,
		CoverLetter: a.CoverLetter,
		ResumeFile:  a.ResumeFile,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}
}
