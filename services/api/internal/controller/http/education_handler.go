package http

import (
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EducationRequest struct {
	Degree       string   `json:"degree" binding:"required"`
	Institution  string   `json:"institution" binding:"required"`
	Period       string   `json:"period" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	GPA          string   `json:"gpa"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

func (r *EducationRequest) toEntity(id string) *entity.Education {
	return &entity.Education{
		ID:           id,
		Degree:       r.Degree,
		Institution:  r.Institution,
		Period:       r.Period,
		Location:     r.Location,
		GPA:          r.GPA,
		Description:  r.Description,
		Achievements: r.Achievements,
	}
}

func educationRequestFrom(e *entity.Education) *EducationRequest {
	return &EducationRequest{
		Degree:       e.Degree,
		Institution:  e.Institution,
		Period:       e.Period,
		Location:     e.Location,
		GPA:          e.GPA,
		Description:  e.Description,
		Achievements: e.Achievements,
	}
}

type EducationHandler struct {
	crud *collectionHandler[*entity.Education, EducationRequest]
}

func NewEducationHandler(educationUseCase usecase.EducationUseCase, logger *logger.Logger) *EducationHandler {
	return &EducationHandler{crud: &collectionHandler[*entity.Education, EducationRequest]{
		name:       entity.CollectionEducation,
		useCase:    educationUseCase,
		logger:     logger,
		toEntity:   func(id string, r *EducationRequest) *entity.Education { return r.toEntity(id) },
		fromEntity: educationRequestFrom,
	}}
}

// List godoc
// @Summary      List education entries
// @Tags         education
// @Produce      json
// @Param        limit query int false "Page size (1-1000)"
// @Param        offset query int false "Documents to skip"
// @Param        page query int false "1-based page, requires limit"
// @Success      200  {array}   entity.Education
// @Router       /education [get]
func (h *EducationHandler) List(c *gin.Context) { h.crud.list(c) }

// Get godoc
// @Summary      Get education entry by ID
// @Tags         education
// @Produce      json
// @Param        id path string true "Education ID"
// @Success      200  {object}  entity.Education
// @Failure      404  {object}  map[string]string
// @Router       /education/{id} [get]
func (h *EducationHandler) Get(c *gin.Context) { h.crud.get(c) }

// Create godoc
// @Summary      Create education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body EducationRequest true "Education"
// @Success      201  {object}  entity.Education
// @Failure      400  {object}  map[string]string
// @Router       /education [post]
func (h *EducationHandler) Create(c *gin.Context) { h.crud.create(c) }

// Update godoc
// @Summary      Update education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body EducationRequest true "Education with id"
// @Success      200  {object}  entity.Education
// @Failure      404  {object}  map[string]string
// @Router       /education [put]
func (h *EducationHandler) Update(c *gin.Context) { h.crud.update(c) }

// Delete godoc
// @Summary      Delete education entry
// @Tags         education
// @Security     AdminSession
// @Param        id query string true "Education ID"
// @Success      200  {object}  map[string]bool
// @Router       /education [delete]
func (h *EducationHandler) Delete(c *gin.Context) { h.crud.delete(c) }
