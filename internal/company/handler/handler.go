package handler

import (
	"errors"
	"net/http"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	uc     company.UseCase
	logger *zap.Logger
}

func NewCompanyHandler(uc company.UseCase, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, logger: log}
}

// POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), &dto.CompanyInput{
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		h.logger.Error("failed to create company", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), c.Param("id"), &dto.CompanyInput{
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to update company", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	err := h.uc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, company.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, company.ErrInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to delete company", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "company deleted"})
}
