package entity

import "time"

type Certificate struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Issuer       string    `json:"issuer"`
	IssueDate    string    `json:"issueDate"`
	Description  string    `json:"description,omitempty"`
	CredentialID string    `json:"credentialId,omitempty"`
	Skills       []string  `json:"skills"`
	VerifyURL    string    `json:"verifyUrl,omitempty"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *Certificate) GetID() string { return c.ID }

type Education struct {
	ID           string    `json:"id"`
	Degree       string    `json:"degree"`
	Institution  string    `json:"institution"`
	Period       string    `json:"period"`
	Location     string    `json:"location"`
	GPA          string    `json:"gpa,omitempty"`
	Description  string    `json:"description,omitempty"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (e *Education) GetID() string { return e.ID }
