package http

import (
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CertificateRequest struct {
	Title        string   `json:"title" binding:"required"`
	Issuer       string   `json:"issuer" binding:"required"`
	IssueDate    string   `json:"issueDate" binding:"required"`
	Description  string   `json:"description"`
	CredentialID string   `json:"credentialId"`
	Skills       []string `json:"skills"`
	VerifyURL    string   `json:"verifyUrl"`
	Image        string   `json:"image"`
}

func (r *CertificateRequest) toEntity(id string) *entity.Certificate {
	return &entity.Certificate{
		ID:           id,
		Title:        r.Title,
		Issuer:       r.Issuer,
		IssueDate:    r.IssueDate,
		Description:  r.Description,
		CredentialID: r.CredentialID,
		Skills:       r.Skills,
		VerifyURL:    r.VerifyURL,
		Image:        r.Image,
	}
}

func certificateRequestFrom(e *entity.Certificate) *CertificateRequest {
	return &CertificateRequest{
		Title:        e.Title,
		Issuer:       e.Issuer,
		IssueDate:    e.IssueDate,
		Description:  e.Description,
		CredentialID: e.CredentialID,
		Skills:       e.Skills,
		VerifyURL:    e.VerifyURL,
		Image:        e.Image,
	}
}

type CertificateHandler struct {
	crud *collectionHandler[*entity.Certificate, CertificateRequest]
}

func NewCertificateHandler(certificateUseCase usecase.CertificateUseCase, logger *logger.Logger) *CertificateHandler {
	return &CertificateHandler{crud: &collectionHandler[*entity.Certificate, CertificateRequest]{
		name:       entity.CollectionCertificates,
		useCase:    certificateUseCase,
		logger:     logger,
		toEntity:   func(id string, r *CertificateRequest) *entity.Certificate { return r.toEntity(id) },
		fromEntity: certificateRequestFrom,
	}}
}

// List godoc
// @Summary      List certificates
// @Tags         certificates
// @Produce      json
// @Param        limit query int false "Page size (1-1000)"
// @Param        offset query int false "Documents to skip"
// @Param        page query int false "1-based page, requires limit"
// @Success      200  {array}   entity.Certificate
// @Router       /certificates [get]
func (h *CertificateHandler) List(c *gin.Context) { h.crud.list(c) }

// Get godoc
// @Summary      Get certificate by ID
// @Tags         certificates
// @Produce      json
// @Param        id path string true "Certificate ID"
// @Success      200  {object}  entity.Certificate
// @Failure      404  {object}  map[string]string
// @Router       /certificates/{id} [get]
func (h *CertificateHandler) Get(c *gin.Context) { h.crud.get(c) }

// Create godoc
// @Summary      Create certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body CertificateRequest true "Certificate"
// @Success      201  {object}  entity.Certificate
// @Failure      400  {object}  map[string]string
// @Router       /certificates [post]
func (h *CertificateHandler) Create(c *gin.Context) { h.crud.create(c) }

// Update godoc
// @Summary      Update certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Security     AdminSession
// @Param        request body CertificateRequest true "Certificate with id"
// @Success      200  {object}  entity.Certificate
// @Failure      404  {object}  map[string]string
// @Router       /certificates [put]
func (h *CertificateHandler) Update(c *gin.Context) { h.crud.update(c) }

// Delete godoc
// @Summary      Delete certificate
// @Tags         certificates
// @Security     AdminSession
// @Param        id query string true "Certificate ID"
// @Success      200  {object}  map[string]bool
// @Router       /certificates [delete]
func (h *CertificateHandler) Delete(c *gin.Context) { h.crud.delete(c) }
