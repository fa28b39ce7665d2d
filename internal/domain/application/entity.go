package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSubmitted = "Submitted"
	NoResumeFile    = "Not provided"
)

type Application struct {
	ID           uuid.UUID
	AccountEmail string
	JobTitle     string
	Company      string
	Name         string
	Email        string
	Phone        string
	Skills       string
	Experience   string
	CoverLetter  string
	ResumeFile   string
	Status       string
	AppliedAt    time.Time
}
