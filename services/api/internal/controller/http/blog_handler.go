package http

import (
	"net/http"

	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Slug     string   `json:"slug" binding:"required"`
	Excerpt  string   `json:"excerpt" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	ReadTime string   `json:"readTime"`
	Date     Date     `json:"date"`
	Tags     []string `json:"tags"`
}

func (r *PostRequest) toEntity(id string) *entity.Post {
	return &entity.Post{
		ID:       id,
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Image:    r.Image,
		Category: r.Category,
		ReadTime: r.ReadTime,
		Date:     r.Date.Time,
		Tags:     r.Tags,
	}
}

func postRequestFrom(p *entity.Post) *PostRequest {
	return &PostRequest{
		Title:    p.Title,
		Slug:     p.Slug,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Image:    p.Image,
		Category: p.Category,
		ReadTime: p.ReadTime,
		Date:     Date{p.Date},
		Tags:     p.Tags,
	}
}

type BlogHandler struct {
	postUseCase usecase.PostUseCase
	crud        *collectionHandler[*entity.Post, PostRequest]
	logger      *logger.Logger
}

func NewBlogHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		postUseCase: postUseCase,
		logger:      logger,
		crud: &collectionHandler[*entity.Post, PostRequest]{
			name:       entity.CollectionBlog,
			useCase:    postUseCase,
			logger:     logger,
			toEntity:   func(id string, r *PostRequest) *entity.Post { return r.toEntity(id) },
			fromEntity: postRequestFrom,
		},
	}
}

// List godoc
// @Summary      List blog posts
// @Description  Blog posts, newest first
// @Tags         blog
// @Produce      json
// @Param        limit query int false "Page size (1-1000)"
// @Param        offset query int false "Documents to skip"
// @Param        page query int false "1-based page, requires limit"
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /blog [get]
func (h *BlogHandler) List(c *gin.Context) { h.crud.list(c) }

// Get godoc
// @Summary      Get blog post by ID
// @Tags         blog
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /blog/{id} [get]
func (h *BlogHandler) Get(c *gin.Context) { h.crud.get(c) }

// GetBySlug godoc
// @Summary      Get blog post by slug
// @Tags         blog
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /blog/slug/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.postUseCase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.logger, err, "Failed to load blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create godoc
// @Summary      Create blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body PostRequest true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /blog [post]
func (h *BlogHandler) Create(c *gin.Context) { h.crud.create(c) }

// Update godoc
// @Summary      Update blog post
// @Description  Fields present in the body replace the stored ones
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body PostRequest true "Post with id"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /blog [put]
func (h *BlogHandler) Update(c *gin.Context) { h.crud.update(c) }

// Delete godoc
// @Summary      Delete blog post
// @Tags         blog
// @Produce      json
// @Security     AdminSession
// @Param        id query string true "Post ID"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Router       /blog [delete]
func (h *BlogHandler) Delete(c *gin.Context) { h.crud.delete(c) }
