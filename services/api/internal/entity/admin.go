package entity

import "time"

type AdminSession struct {
	ID        string    `json:"-"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type DashboardStats struct {
	Collections map[string]int64 `json:"collections"`
	Ratings     VoteCounter      `json:"ratings"`
}
