package http

import (
	"net/http"

	"portfolio/pkg/logger"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// multipart framing on top of the file itself
const uploadOverhead = 1 << 20

type UploadHandler struct {
	uploadUseCase usecase.UploadUseCase
	maxBytes      int64
	logger        *logger.Logger
}

func NewUploadHandler(uploadUseCase usecase.UploadUseCase, maxBytes int64, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		maxBytes:      maxBytes,
		logger:        logger,
	}
}

// Upload godoc
// @Summary      Upload an image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     AdminSession
// @Param        file formData file true "Image file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+uploadOverhead)
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	url, err := h.uploadUseCase.Upload(c.Request.Context(), file)
	if err != nil {
		writeError(c, h.logger, err, "Upload failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
