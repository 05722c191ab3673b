package entity

import "time"

// SiteTarget is the counter behind the site-wide ratings widget.
const SiteTarget = "site"

// MaxTargetIDLength bounds the target ids accepted by the vote endpoints.
const MaxTargetIDLength = 128

type VoteAction string

const (
	VoteLike    VoteAction = "like"
	VoteDislike VoteAction = "dislike"
)

func (a VoteAction) Valid() bool {
	return a == VoteLike || a == VoteDislike
}

// Delta returns the increments applied to likes and dislikes.
func (a VoteAction) Delta() (likes, dislikes int64) {
	switch a {
	case VoteLike:
		return 1, 0
	case VoteDislike:
		return 0, 1
	}
	return 0, 0
}

type VoteCounter struct {
	TargetID  string    `json:"targetId"`
	Likes     int64     `json:"likes"`
	Dislikes  int64     `json:"dislikes"`
	UpdatedAt time.Time `json:"-"`
}
