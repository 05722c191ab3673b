package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteCounterModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	TargetID  string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Likes     int64  `gorm:"not null;default:0"`
	Dislikes  int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (VoteCounterModel) TableName() string { return "vote_counters" }

func (v *VoteCounterModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
