package http

import (
	"encoding/json"
	"net/http"

	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CollectionRoutes is the route surface shared by every content collection.
type CollectionRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// collectionHandler implements CRUD for one collection. R is the request body,
// validated through gin binding tags.
type collectionHandler[D entity.Document, R any] struct {
	name       string
	useCase    usecase.CollectionUseCase[D]
	logger     *logger.Logger
	toEntity   func(id string, req *R) D
	fromEntity func(doc D) *R
}

func (h *collectionHandler[D, R]) list(c *gin.Context) {
	docs, err := h.useCase.List(c.Request.Context(), parsePage(c))
	if err != nil {
		writeError(c, h.logger, err, "Failed to load "+h.name)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *collectionHandler[D, R]) get(c *gin.Context) {
	doc, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err, "Failed to load "+h.name)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *collectionHandler[D, R]) create(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	created, err := h.useCase.Create(c.Request.Context(), h.toEntity("", &req))
	if err != nil {
		writeError(c, h.logger, err, "Failed to create "+h.name)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// update merges the body onto the stored document: fields absent from the body
// keep their current value.
func (h *collectionHandler[D, R]) update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if ref.ID == "" {
		ref.ID = c.Query("id")
	}
	if ref.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	ctx := c.Request.Context()
	current, err := h.useCase.Get(ctx, ref.ID)
	if err != nil {
		writeError(c, h.logger, err, "Failed to update "+h.name)
		return
	}

	req := h.fromEntity(current)
	if err := json.Unmarshal(body, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	updated, err := h.useCase.Update(ctx, h.toEntity(ref.ID, req))
	if err != nil {
		writeError(c, h.logger, err, "Failed to update "+h.name)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *collectionHandler[D, R]) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, "Failed to delete from "+h.name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
