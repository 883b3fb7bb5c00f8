package handler

import (
	"errors"
	"net/http"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

// POST /shipments/:id/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.uc.Create(c.Request.Context(), &dto.CreateOrderInput{
		ShipmentID:      c.Param("id"),
		SKU:             req.SKU,
		ModelNumber:     req.ModelNumber,
		ProductName:     req.ProductName,
		Quantity:        req.Quantity,
		DestinationType: model.Destination(req.DestinationType),
		CompanyID:       req.CompanyID,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrShipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrCompanyRequired),
			errors.Is(err, order.ErrCompanyNotFound),
			errors.Is(err, model.ErrInvalidDestinationType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, o)
}

// PATCH /orders/:id
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.uc.SetStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, model.ErrInvalidOrderStatus),
			errors.Is(err, model.ErrOrderStatusNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update order status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}

// GET /orders/company?company_id=
func (h *OrderHandler) ListCompanyOrders(c *gin.Context) {
	orders, err := h.uc.ListCompanyOrders(c.Request.Context(), c.Query("company_id"))
	if err != nil {
		h.logger.Error("failed to list company orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /orders/amazon?status=&search=
func (h *OrderHandler) ListAmazonOrders(c *gin.Context) {
	orders, err := h.uc.ListAmazonOrders(c.Request.Context(), c.Query("status"), c.Query("search"))
	if err != nil {
		h.logger.Error("failed to list amazon orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}
