package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salesdash/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for the
// sales endpoints.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleListSales handles GET /sales with pagination and sort parameters.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	req, err := pageRequestFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.salesService.List(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// handleCreateSale handles POST /sales.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req sales.Candidate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.salesService.Create(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// handleUpdateSale handles PUT /sales/:id. The body carries the record
// fields without the id.
func (h *salesHandler) handleUpdateSale(ctx *gin.Context) {
	id := ctx.Param("id")

	var req sales.Candidate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.salesService.Update(id, req)
	if err != nil {
		if errors.Is(err, sales.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sale)
}

// handleDeleteSale handles DELETE /sales/:id and echoes the deleted id.
func (h *salesHandler) handleDeleteSale(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.salesService.Delete(id); err != nil {
		if errors.Is(err, sales.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
			return
		}
		h.logger.Error("failed to delete sale", zap.String("sale_id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sale"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

// handleBulkCreate handles POST /sales/bulk. The batch is all-or-nothing.
func (h *salesHandler) handleBulkCreate(ctx *gin.Context) {
	var req []sales.Candidate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	created, err := h.salesService.BulkCreate(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// pageRequestFromQuery builds a PageRequest from list query parameters,
// falling back to the dashboard defaults for absent ones.
func pageRequestFromQuery(ctx *gin.Context) (sales.PageRequest, error) {
	req := sales.DefaultPageRequest()

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return sales.PageRequest{}, sales.ErrInvalidPage
		}
		req.Page = page
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return sales.PageRequest{}, sales.ErrInvalidLimit
		}
		req.Limit = limit
	}
	if raw := ctx.Query("sortField"); raw != "" {
		field, err := sales.ParseSortField(raw)
		if err != nil {
			return sales.PageRequest{}, err
		}
		req.SortField = field
	}
	if raw := ctx.Query("sortDirection"); raw != "" {
		dir, err := sales.ParseSortDirection(raw)
		if err != nil {
			return sales.PageRequest{}, err
		}
		req.SortDirection = dir
	}

	return req, req.Validate()
}
