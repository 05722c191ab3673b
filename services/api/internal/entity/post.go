package entity

import "time"

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	ReadTime  string    `json:"readTime,omitempty"`
	Date      time.Time `json:"date"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Post) GetID() string { return p.ID }

func (p *Post) ApplyDefaults(now time.Time) {
	if p.Date.IsZero() {
		p.Date = now
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
