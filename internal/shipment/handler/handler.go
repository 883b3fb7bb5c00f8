package handler

import (
	"errors"
	"net/http"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShipmentHandler struct {
	uc     shipment.UseCase
	logger *zap.Logger
}

func NewShipmentHandler(uc shipment.UseCase, log *zap.Logger) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, logger: log}
}

// POST /shipments
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.uc.Create(c.Request.Context(), &dto.CreateShipmentInput{
		ShipmentNumber: req.ShipmentNumber,
		Notes:          req.Notes,
	})
	if err != nil {
		h.logger.Error("failed to create shipment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, s)
}

// GET /shipments
func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list shipments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, shipments)
}

// GET /shipments/:id
func (h *ShipmentHandler) Detail(c *gin.Context) {
	detail, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shipment.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to load shipment detail", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PATCH /shipments/:id/status
func (h *ShipmentHandler) AdvanceStatus(c *gin.Context) {
	var req dto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.uc.AdvanceStatus(c.Request.Context(), c.Param("id"), model.ShipmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, model.ErrInvalidShipmentStatus),
			errors.Is(err, model.ErrShipmentStatusFinal),
			errors.Is(err, model.ErrShipmentStatusNotNext):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to advance shipment status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, s)
}
