package entity

import "time"

type ExperienceType string

const (
	ExperienceFullTime   ExperienceType = "Full-time"
	ExperiencePartTime   ExperienceType = "Part-time"
	ExperienceContract   ExperienceType = "Contract"
	ExperienceInternship ExperienceType = "Internship"
	ExperienceFreelance  ExperienceType = "Freelance"
)

type Experience struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Location     string         `json:"location"`
	Period       string         `json:"period"`
	Type         ExperienceType `json:"type"`
	Description  string         `json:"description,omitempty"`
	Achievements []string       `json:"achievements"`
	Technologies []string       `json:"technologies"`
	Website      string         `json:"website,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (e *Experience) GetID() string { return e.ID }
