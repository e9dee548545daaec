package recipes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/query"
	"recipe-backend/internal/shared/server/respond"
)

const defaultMaxBodyBytes = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc          *Service
	MaxBodyBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{Svc: svc, MaxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches recipe routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes", h.list)
	rg.POST("/recipes", h.create)
	rg.GET("/recipes/categories", h.categories)
}

func (h *Handler) list(c *gin.Context) {
	q, ok := query.FromValues(c.Request.URL.Query())
	if !ok {
		list, err := h.Svc.List(c.Request.Context())
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, ErrorCode(err), "Failed to read recipes")
			return
		}
		c.Set("resultCount", len(list))
		respond.OK(c, list)
		return
	}

	list, err := h.Svc.Query(c.Request.Context(), q)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCode(err), "Failed to read recipes")
		return
	}
	c.Set("resultCount", len(list))
	respond.OK(c, list)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return
		}
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if title, ok := payload["title"].(string); ok {
		c.Set("recipeTitle", title)
	}

	recipe, err := h.Svc.Create(c.Request.Context(), payload)
	if err != nil {
		switch {
		case IsValidation(err):
			respond.Error(c, http.StatusBadRequest, ErrorCode(err), errorMessage(err))
		case errors.Is(err, ErrDuplicateTitle):
			respond.Error(c, http.StatusConflict, ErrorCode(err), errorMessage(err))
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCode(err), errorMessage(err))
		}
		return
	}

	respond.Created(c, CreateResponse{Message: createdMessage, Recipe: recipe})
}

func (h *Handler) categories(c *gin.Context) {
	cats, err := h.Svc.Categories(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCode(err), "Failed to read recipes")
		return
	}
	respond.OK(c, cats)
}
