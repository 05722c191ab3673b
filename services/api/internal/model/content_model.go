package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Excerpt   string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	Image     string    `gorm:"type:varchar(500)"`
	Category  string    `gorm:"type:varchar(100)"`
	ReadTime  string    `gorm:"type:varchar(50)"`
	Date      time.Time `gorm:"not null;index"`
	Tags      []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostModel) TableName() string { return "posts" }

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type CertificateModel struct {
	ID           string   `gorm:"type:uuid;primary_key"`
	Title        string   `gorm:"type:varchar(255);not null"`
	Issuer       string   `gorm:"type:varchar(255);not null"`
	IssueDate    string   `gorm:"type:varchar(100);not null;index"`
	Description  string   `gorm:"type:text"`
	CredentialID string   `gorm:"type:varchar(255)"`
	Skills       []string `gorm:"serializer:json;type:jsonb"`
	VerifyURL    string   `gorm:"type:varchar(500)"`
	Image        string   `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CertificateModel) TableName() string { return "certificates" }

func (c *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type EducationModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	Degree       string    `gorm:"type:varchar(255);not null"`
	Institution  string    `gorm:"type:varchar(255);not null"`
	Period       string    `gorm:"type:varchar(100);not null"`
	Location     string    `gorm:"type:varchar(255);not null"`
	GPA          string    `gorm:"type:varchar(20)"`
	Description  string    `gorm:"type:text"`
	Achievements []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (EducationModel) TableName() string { return "education" }

func (e *EducationModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

type ExperienceModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Company      string    `gorm:"type:varchar(255);not null"`
	Location     string    `gorm:"type:varchar(255);not null"`
	Period       string    `gorm:"type:varchar(100);not null"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Description  string    `gorm:"type:text"`
	Achievements []string  `gorm:"serializer:json;type:jsonb"`
	Technologies []string  `gorm:"serializer:json;type:jsonb"`
	Website      string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (ExperienceModel) TableName() string { return "experience" }

func (e *ExperienceModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

type ProjectModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	URL         string `gorm:"type:varchar(500);not null"`
	Image       string `gorm:"type:varchar(500)"`
	Category    string `gorm:"type:varchar(20);default:'website'"`
	GithubURL   string `gorm:"type:varchar(500)"`
	LiveURL     string `gorm:"type:varchar(500)"`
	Featured    bool   `gorm:"default:false"`
	Status      string `gorm:"type:varchar(20);default:'planned'"`
	Date        time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (ProjectModel) TableName() string { return "projects" }

func (p *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type ReviewModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(255);not null"`
	Company   string    `gorm:"type:varchar(255);not null"`
	Text      string    `gorm:"type:text;not null"`
	Avatar    string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (ReviewModel) TableName() string { return "reviews" }

func (r *ReviewModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
