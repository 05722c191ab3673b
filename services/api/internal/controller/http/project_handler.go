package http

import (
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Image       string `json:"image"`
	Category    string `json:"category" binding:"omitempty,oneof=website ml academic"`
	GithubURL   string `json:"githubUrl"`
	LiveURL     string `json:"liveUrl"`
	Featured    bool   `json:"featured"`
	Status      string `json:"status" binding:"omitempty,oneof=completed in-progress planned"`
	Date        Date   `json:"date"`
}

func (r *ProjectRequest) toEntity(id string) *entity.Project {
	return &entity.Project{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Image:       r.Image,
		Category:    entity.ProjectCategory(r.Category),
		GithubURL:   r.GithubURL,
		LiveURL:     r.LiveURL,
		Featured:    r.Featured,
		Status:      entity.ProjectStatus(r.Status),
		Date:        r.Date.Time,
	}
}

func projectRequestFrom(p *entity.Project) *ProjectRequest {
	return &ProjectRequest{
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL,
		Image:       p.Image,
		Category:    string(p.Category),
		GithubURL:   p.GithubURL,
		LiveURL:     p.LiveURL,
		Featured:    p.Featured,
		Status:      string(p.Status),
		Date:        Date{p.Date},
	}
}

type ProjectHandler struct {
	crud *collectionHandler[*entity.Project, ProjectRequest]
}

func NewProjectHandler(projectUseCase usecase.ProjectUseCase, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{crud: &collectionHandler[*entity.Project, ProjectRequest]{
		name:       entity.CollectionProjects,
		useCase:    projectUseCase,
		logger:     logger,
		toEntity:   func(id string, r *ProjectRequest) *entity.Project { return r.toEntity(id) },
		fromEntity: projectRequestFrom,
	}}
}

// List godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        limit query int false "Page size (1-1000)"
// @Param        offset query int false "Documents to skip"
// @Param        page query int false "1-based page, requires limit"
// @Success      200  {array}   entity.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) { h.crud.list(c) }

// Get godoc
// @Summary      Get project by ID
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200  {object}  entity.Project
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) { h.crud.get(c) }

// Create godoc
// @Summary      Create project
// @Description  category defaults to website, status to planned
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body ProjectRequest true "Project"
// @Success      201  {object}  entity.Project
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) { h.crud.create(c) }

// Update godoc
// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body ProjectRequest true "Project with id"
// @Success      200  {object}  entity.Project
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects [put]
func (h *ProjectHandler) Update(c *gin.Context) { h.crud.update(c) }

// Delete godoc
// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Security     AdminSession
// @Param        id query string true "Project ID"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Router       /projects [delete]
func (h *ProjectHandler) Delete(c *gin.Context) { h.crud.delete(c) }
