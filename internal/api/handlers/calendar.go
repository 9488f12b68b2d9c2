package handlers

import (
	"net/http"

	"band-scheduler-backend/internal/database/models"
	"band-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarHandler serves calendar exports for gigs
type CalendarHandler struct {
	gigService service.GigServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(gigService service.GigServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		gigService: gigService,
	}
}

// DownloadICS handles GET /gigs/:id/calendar.ics
func (h *CalendarHandler) DownloadICS(c *gin.Context) {
	gig, ok := h.loadGig(c)
	if !ok {
		return
	}

	payload, err := service.BuildICS(gig)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="gig.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}

// GoogleLink handles GET /gigs/:id/calendar/google
func (h *CalendarHandler) GoogleLink(c *gin.Context) {
	gig, ok := h.loadGig(c)
	if !ok {
		return
	}

	link, err := service.GoogleCalendarURL(gig)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

// OutlookLink handles GET /gigs/:id/calendar/outlook
func (h *CalendarHandler) OutlookLink(c *gin.Context) {
	gig, ok := h.loadGig(c)
	if !ok {
		return
	}

	link, err := service.OutlookCalendarURL(gig)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

// loadGig resolves the gig through the service so exports see the same
// lifecycle state as every other read.
func (h *CalendarHandler) loadGig(c *gin.Context) (gig *models.Gig, ok bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gig ID"})
		return nil, false
	}

	gig, err = h.gigService.GetGigRecord(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return gig, true
}
