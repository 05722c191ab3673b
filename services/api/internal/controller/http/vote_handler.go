package http

import (
	"net/http"
	"strings"

	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VoteRequest struct {
	TargetID string `json:"targetId"`
	Action   string `json:"action"`
}

type RatingRequest struct {
	Vote string `json:"vote"`
}

type VoteHandler struct {
	voteUseCase usecase.VoteUseCase
	logger      *logger.Logger
}

func NewVoteHandler(voteUseCase usecase.VoteUseCase, logger *logger.Logger) *VoteHandler {
	return &VoteHandler{
		voteUseCase: voteUseCase,
		logger:      logger,
	}
}

// GetLikes godoc
// @Summary      Get vote counts for a target
// @Description  Creates the counter at zero on first read
// @Tags         votes
// @Produce      json
// @Param        targetId query string true "Target ID"
// @Success      200  {object}  entity.VoteCounter
// @Failure      400  {object}  map[string]string
// @Router       /likes [get]
func (h *VoteHandler) GetLikes(c *gin.Context) {
	targetID := c.Query("targetId")
	if strings.TrimSpace(targetID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing targetId"})
		return
	}
	h.respondCounter(c, targetID)
}

// PostLike godoc
// @Summary      Vote on a target
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request body VoteRequest true "Vote"
// @Success      200  {object}  entity.VoteCounter
// @Failure      400  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /likes [post]
func (h *VoteHandler) PostLike(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	h.vote(c, req.TargetID, entity.VoteAction(req.Action))
}

// GetRatings godoc
// @Summary      Get site-wide rating counts
// @Tags         votes
// @Produce      json
// @Success      200  {object}  entity.VoteCounter
// @Router       /ratings [get]
func (h *VoteHandler) GetRatings(c *gin.Context) {
	h.respondCounter(c, entity.SiteTarget)
}

// PostRating godoc
// @Summary      Rate the site
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request body RatingRequest true "like or dislike"
// @Success      200  {object}  entity.VoteCounter
// @Failure      400  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /ratings [post]
func (h *VoteHandler) PostRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote type"})
		return
	}
	h.vote(c, entity.SiteTarget, entity.VoteAction(req.Vote))
}

func (h *VoteHandler) respondCounter(c *gin.Context, targetID string) {
	counter, err := h.voteUseCase.Get(c.Request.Context(), targetID)
	if err != nil {
		writeError(c, h.logger, err, "Could not load likes")
		return
	}
	c.JSON(http.StatusOK, counter)
}

func (h *VoteHandler) vote(c *gin.Context, targetID string, action entity.VoteAction) {
	counter, err := h.voteUseCase.Vote(c.Request.Context(), targetID, action)
	if err != nil {
		writeError(c, h.logger, err, "Could not update likes")
		return
	}
	c.JSON(http.StatusOK, counter)
}
