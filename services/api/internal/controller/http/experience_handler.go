package http

import (
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExperienceRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Period       string   `json:"period" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=Full-time Part-time Contract Internship Freelance"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	Website      string   `json:"website"`
}

func (r *ExperienceRequest) toEntity(id string) *entity.Experience {
	return &entity.Experience{
		ID:           id,
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Period:       r.Period,
		Type:         entity.ExperienceType(r.Type),
		Description:  r.Description,
		Achievements: r.Achievements,
		Technologies: r.Technologies,
		Website:      r.Website,
	}
}

func experienceRequestFrom(e *entity.Experience) *ExperienceRequest {
	return &ExperienceRequest{
		Title:        e.Title,
		Company:      e.Company,
		Location:     e.Location,
		Period:       e.Period,
		Type:         string(e.Type),
		Description:  e.Description,
		Achievements: e.Achievements,
		Technologies: e.Technologies,
		Website:      e.Website,
	}
}

type ExperienceHandler struct {
	crud *collectionHandler[*entity.Experience, ExperienceRequest]
}

func NewExperienceHandler(experienceUseCase usecase.ExperienceUseCase, logger *logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{crud: &collectionHandler[*entity.Experience, ExperienceRequest]{
		name:       entity.CollectionExperience,
		useCase:    experienceUseCase,
		logger:     logger,
		toEntity:   func(id string, r *ExperienceRequest) *entity.Experience { return r.toEntity(id) },
		fromEntity: experienceRequestFrom,
	}}
}

// List godoc
// @Summary      List experience entries
// @Tags         experience
// @Produce      json
// @Param        limit query int false "Page size (1-1000)"
// @Param        offset query int false "Documents to skip"
// @Param        page query int false "1-based page, requires limit"
// @Success      200  {array}   entity.Experience
// @Router       /experience [get]
func (h *ExperienceHandler) List(c *gin.Context) { h.crud.list(c) }

// Get godoc
// @Summary      Get experience entry by ID
// @Tags         experience
// @Produce      json
// @Param        id path string true "Experience ID"
// @Success      200  {object}  entity.Experience
// @Failure      404  {object}  map[string]string
// @Router       /experience/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) { h.crud.get(c) }

// Create godoc
// @Summary      Create experience entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body ExperienceRequest true "Experience"
// @Success      201  {object}  entity.Experience
// @Failure      400  {object}  map[string]string
// @Router       /experience [post]
func (h *ExperienceHandler) Create(c *gin.Context) { h.crud.create(c) }

// Update godoc
// @Summary      Update experience entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body ExperienceRequest true "Experience with id"
// @Success      200  {object}  entity.Experience
// @Failure      404  {object}  map[string]string
// @Router       /experience [put]
func (h *ExperienceHandler) Update(c *gin.Context) { h.crud.update(c) }

// Delete godoc
// @Summary      Delete experience entry
// @Tags         experience
// @Security     AdminSession
// @Param        id query string true "Experience ID"
// @Success      200  {object}  map[string]bool
// @Router       /experience [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) { h.crud.delete(c) }
