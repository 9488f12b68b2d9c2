package handlers

import (
	"net/http"

	"band-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GigHandler handles HTTP requests for gig operations
type GigHandler struct {
	gigService service.GigServiceInterface
}

// NewGigHandler creates a new gig handler
func NewGigHandler(gigService service.GigServiceInterface) *GigHandler {
	return &GigHandler{
		gigService: gigService,
	}
}

// CreateGig handles POST /gigs
func (h *GigHandler) CreateGig(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.GigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	gig, err := h.gigService.CreateGig(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

// UpdateGig handles PUT /gigs/:id
func (h *GigHandler) UpdateGig(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gig ID"})
		return
	}

	var req service.GigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	gig, err := h.gigService.UpdateGig(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// GetGig handles GET /gigs/:id
func (h *GigHandler) GetGig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gig ID"})
		return
	}

	gig, err := h.gigService.GetGig(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// ListGigs handles GET /gigs with an optional scope of upcoming or past
func (h *GigHandler) ListGigs(c *gin.Context) {
	scope := c.DefaultQuery("scope", "")
	if scope != "" && scope != "upcoming" && scope != "past" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be upcoming or past"})
		return
	}

	gigs, err := h.gigService.ListGigs(scope)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gigs": gigs, "count": len(gigs)})
}

// SetAvailability handles PUT /gigs/:id/availability
func (h *GigHandler) SetAvailability(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gig ID"})
		return
	}

	var req service.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.gigService.SetAvailability(actor, id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}
