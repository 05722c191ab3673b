package entity

import "time"

type ProjectCategory string

const (
	CategoryWebsite  ProjectCategory = "website"
	CategoryML       ProjectCategory = "ml"
	CategoryAcademic ProjectCategory = "academic"
)

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
)

type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Image       string          `json:"image,omitempty"`
	Category    ProjectCategory `json:"category"`
	GithubURL   string          `json:"githubUrl,omitempty"`
	LiveURL     string          `json:"liveUrl,omitempty"`
	Featured    bool            `json:"featured"`
	Status      ProjectStatus   `json:"status"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Project) GetID() string { return p.ID }

func (p *Project) ApplyDefaults(now time.Time) {
	if p.Category == "" {
		p.Category = CategoryWebsite
	}
	if p.Status == "" {
		p.Status = StatusPlanned
	}
	if p.Date.IsZero() {
		p.Date = now
	}
}
