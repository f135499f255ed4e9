package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type importRequest struct {
	MapsURL string `json:"maps_url"`
	Query   string `json:"query"`
}

// --------------------------------------------------
// POST /restaurants/import
// --------------------------------------------------
func (h *Handler) Import(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.MapsURL == "" && req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maps_url or query is required"})
		return
	}

	view, err := h.service.Import(c.Request.Context(), userID, req.MapsURL, req.Query)
	if err == ErrProfileRequired {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "profile_required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// GET /restaurants/me
// --------------------------------------------------
func (h *Handler) ListSaved(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.service.ListSaved(c.Request.Context(), userID)
	if err == ErrProfileRequired {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "profile_required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if views == nil {
		views = []*MatchView{}
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": views})
}

// --------------------------------------------------
// GET /restaurants/:id/match
// --------------------------------------------------
func (h *Handler) Match(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.service.Match(c.Request.Context(), c.Param("id"), userID)
	if err == ErrProfileRequired {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "profile_required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID.(string), true
}
