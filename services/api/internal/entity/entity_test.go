package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVoteAction(t *testing.T) {
	assert.True(t, VoteLike.Valid())
	assert.True(t, VoteDislike.Valid())
	assert.False(t, VoteAction("love").Valid())
	assert.False(t, VoteAction("").Valid())

	likes, dislikes := VoteLike.Delta()
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(0), dislikes)

	likes, dislikes = VoteDislike.Delta()
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(1), dislikes)
}

func TestProject_ApplyDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	p := &Project{Title: "Demo"}
	p.ApplyDefaults(now)
	assert.Equal(t, CategoryWebsite, p.Category)
	assert.Equal(t, StatusPlanned, p.Status)
	assert.Equal(t, now, p.Date)

	kept := &Project{Category: CategoryML, Status: StatusCompleted, Date: now.Add(-time.Hour)}
	kept.ApplyDefaults(now)
	assert.Equal(t, CategoryML, kept.Category)
	assert.Equal(t, StatusCompleted, kept.Status)
	assert.Equal(t, now.Add(-time.Hour), kept.Date)
}

func TestPost_ApplyDefaults(t *testing.T) {
	now := time.Now()
	p := &Post{}
	p.ApplyDefaults(now)
	assert.Equal(t, now, p.Date)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}
