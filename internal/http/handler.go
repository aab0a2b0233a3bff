package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"train-assist-service/internal/service"
)

const apiVersion = "1.0.0"

type Handler struct {
	trainService  *service.TrainService
	reportService *service.ReportService
	log           zerolog.Logger
}

func NewHandler(
	trainService *service.TrainService,
	reportService *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		trainService:  trainService,
		reportService: reportService,
		log:           log,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   apiVersion,
	})
}

func (h *Handler) searchTrains(c *gin.Context) {
	source := strings.TrimSpace(c.Query("source"))
	destination := strings.TrimSpace(c.Query("destination"))

	trains, err := h.trainService.Search(c.Request.Context(), source, destination)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trains)
}

func (h *Handler) listCoaches(c *gin.Context) {
	trainID, err := strconv.Atoi(strings.TrimSpace(c.Param("trainId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid train id"))
		return
	}

	statuses, err := h.trainService.CoachStatuses(c.Request.Context(), trainID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

func (h *Handler) submitCrowdReport(c *gin.Context) {
	coachID, err := strconv.Atoi(strings.TrimSpace(c.Param("coachId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid coach id"))
		return
	}

	var req struct {
		ReporterName string `json:"reporterName" binding:"required,max=100"`
		Status       string `json:"status" binding:"required,max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.reportService.SubmitCrowd(c.Request.Context(), coachID, req.ReporterName, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info().
		Int("coach_id", coachID).
		Str("reporter", report.ReporterName).
		Str("status", report.Status).
		Msg("crowd report recorded")

	c.JSON(http.StatusCreated, report)
}

func (h *Handler) submitSOSReport(c *gin.Context) {
	var req struct {
		ReporterName string   `json:"reporterName" binding:"required,max=100"`
		TrainID      *int     `json:"trainId"`
		CoachID      *int     `json:"coachId"`
		Latitude     *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
		Longitude    *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
		Message      *string  `json:"message" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.reportService.SubmitSOS(c.Request.Context(), service.SubmitSOSInput{
		ReporterName: req.ReporterName,
		TrainID:      req.TrainID,
		CoachID:      req.CoachID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Message:      req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	event := h.log.Warn().Str("reporter", report.ReporterName)
	if report.TrainID != nil {
		event = event.Int("train_id", *report.TrainID)
	}
	if report.CoachID != nil {
		event = event.Int("coach_id", *report.CoachID)
	}
	event.Msg("SOS report received")

	c.JSON(http.StatusCreated, report)
}

func (h *Handler) listSOSReports(c *gin.Context) {
	reports, err := h.reportService.RecentSOS(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch err {
	case service.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case service.ErrNotFound:
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().
			Err(err).
			Str("path", c.FullPath()).
			Interface("params", c.Params).
			Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func errorResponse(msg string) gin.H {
	return gin.H{"error": msg}
}
