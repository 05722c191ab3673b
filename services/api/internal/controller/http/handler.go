package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"portfolio/pkg/logger"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxPageLimit = 1000

func init() {
	// Report validation failures with json field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// parsePage reads limit, offset and page. Out of range values are ignored and
// page only applies together with limit.
func parsePage(c *gin.Context) usecase.Page {
	var page usecase.Page
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit >= 1 && limit <= maxPageLimit {
		page.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset >= 0 {
		page.Offset = offset
	}
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p >= 1 && page.Limit > 0 {
		page.Offset = (p - 1) * page.Limit
	}
	return page
}

// validationMessage lists missing required fields and invalid enum values.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	var required, invalid []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			required = append(required, fe.Field())
		case "oneof":
			invalid = append(invalid, fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			invalid = append(invalid, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	parts := make([]string, 0, 2)
	if len(required) == 1 {
		parts = append(parts, required[0]+" is required")
	} else if len(required) > 1 {
		parts = append(parts, strings.Join(required, ", ")+" are required")
	}
	parts = append(parts, invalid...)
	return strings.Join(parts, "; ")
}

// writeError maps use case errors to status codes. Anything unexpected is logged
// and answered with msg.
func writeError(c *gin.Context, log *logger.Logger, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecase.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "A document with the same unique field already exists"})
	case errors.Is(err, usecase.ErrInvalidAction),
		errors.Is(err, usecase.ErrInvalidTarget),
		errors.Is(err, usecase.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		log.Error("%s: %v", msg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
