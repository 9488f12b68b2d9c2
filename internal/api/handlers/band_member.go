package handlers

import (
	"net/http"

	"band-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BandMemberHandler handles HTTP requests for roster operations
type BandMemberHandler struct {
	bandService service.BandServiceInterface
}

// NewBandMemberHandler creates a new band member handler
func NewBandMemberHandler(bandService service.BandServiceInterface) *BandMemberHandler {
	return &BandMemberHandler{
		bandService: bandService,
	}
}

// ListMembers handles GET /band-members
func (h *BandMemberHandler) ListMembers(c *gin.Context) {
	members, err := h.bandService.ListMembers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}

// AddMember handles POST /band-members
func (h *BandMemberHandler) AddMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.AddBandMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.bandService.AddMember(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /band-members/:id
func (h *BandMemberHandler) RemoveMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	if err := h.bandService.RemoveMember(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Band member removed"})
}

// RenameMember handles PUT /band-members/:id/name
func (h *BandMemberHandler) RenameMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	var req service.RenameBandMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.bandService.RenameMember(actor, id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Band member renamed"})
}

// SetInstrument handles PUT /band-members/:id/instrument
func (h *BandMemberHandler) SetInstrument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	var req service.SetInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.bandService.SetMemberInstrument(actor, id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Instrument updated"})
}
