package entity

import "time"

// Review is a testimonial shown on the ratings page.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Text      string    `json:"text"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) GetID() string { return r.ID }
