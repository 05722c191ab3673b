package http

import (
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Company string `json:"company" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Avatar  string `json:"avatar"`
}

func (r *ReviewRequest) toEntity(id string) *entity.Review {
	return &entity.Review{
		ID:      id,
		Name:    r.Name,
		Role:    r.Role,
		Company: r.Company,
		Text:    r.Text,
		Avatar:  r.Avatar,
	}
}

func reviewRequestFrom(e *entity.Review) *ReviewRequest {
	return &ReviewRequest{
		Name:    e.Name,
		Role:    e.Role,
		Company: e.Company,
		Text:    e.Text,
		Avatar:  e.Avatar,
	}
}

type ReviewHandler struct {
	crud *collectionHandler[*entity.Review, ReviewRequest]
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{crud: &collectionHandler[*entity.Review, ReviewRequest]{
		name:       entity.CollectionReviews,
		useCase:    reviewUseCase,
		logger:     logger,
		toEntity:   func(id string, r *ReviewRequest) *entity.Review { return r.toEntity(id) },
		fromEntity: reviewRequestFrom,
	}}
}

// List godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        limit query int false "Page size (1-1000)"
// @Param        offset query int false "Documents to skip"
// @Param        page query int false "1-based page, requires limit"
// @Success      200  {array}   entity.Review
// @Router       /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) { h.crud.list(c) }

// Get godoc
// @Summary      Get review by ID
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Review ID"
// @Success      200  {object}  entity.Review
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) { h.crud.get(c) }

// Create godoc
// @Summary      Create review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body ReviewRequest true "Review"
// @Success      201  {object}  entity.Review
// @Failure      400  {object}  map[string]string
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) { h.crud.create(c) }

// Update godoc
// @Summary      Update review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body ReviewRequest true "Review with id"
// @Success      200  {object}  entity.Review
// @Failure      404  {object}  map[string]string
// @Router       /reviews [put]
func (h *ReviewHandler) Update(c *gin.Context) { h.crud.update(c) }

// Delete godoc
// @Summary      Delete review
// @Description  Also mounted at DELETE /ratings for the admin ratings page
// @Tags         reviews
// @Security     AdminSession
// @Param        id query string true "Review ID"
// @Success      200  {object}  map[string]bool
// @Router       /reviews [delete]
func (h *ReviewHandler) Delete(c *gin.Context) { h.crud.delete(c) }
