package handlers

import (
	"net/http"

	"band-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InstrumentHandler handles HTTP requests for the instrument registry
type InstrumentHandler struct {
	bandService service.BandServiceInterface
}

// NewInstrumentHandler creates a new instrument handler
func NewInstrumentHandler(bandService service.BandServiceInterface) *InstrumentHandler {
	return &InstrumentHandler{
		bandService: bandService,
	}
}

// AddInstrumentRequest carries an instrument name
type AddInstrumentRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListInstruments handles GET /instruments
func (h *InstrumentHandler) ListInstruments(c *gin.Context) {
	instruments, err := h.bandService.ListInstruments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instruments": instruments, "count": len(instruments)})
}

// AddInstrument handles POST /instruments
func (h *InstrumentHandler) AddInstrument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req AddInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.bandService.AddInstrument(actor, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Instrument registered"})
}

// RemoveInstrument handles DELETE /instruments/:name
func (h *InstrumentHandler) RemoveInstrument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if err := h.bandService.RemoveInstrument(actor, name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Instrument removed"})
}
