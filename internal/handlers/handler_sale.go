package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
)

// saleHandler handles HTTP requests for POS sales.
type saleHandler struct {
	saleSvc portssvc.SaleSvcFacade
}

func registerSaleRoutes(rg *gin.RouterGroup, saleSvc portssvc.SaleSvcFacade, staff []domain.UserRole) {
	h := &saleHandler{saleSvc: saleSvc}

	sales := rg.Group("/sales", middleware.RequireRoles(staff...))
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
	}
}

// createSale godoc
// @Summary Finalize a sale
// @Description Prices the requested items, decrements stock atomically and persists the sale. A credit sale whose initial payment does not cover the total opens an installment ledger entry.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Insufficient stock or invalid payment"
// @Failure 404 {object} map[string]string "Unknown product or customer"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cashierUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.saleSvc.CreateSale(c.Request.Context(), req, cashierUserID)
	if err != nil {
		logger.Error("Failed to create sale", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	response := dto.ToSaleResponse(result.Sale)
	if result.LedgerEntry != nil {
		response.LedgerEntryID = result.LedgerEntry.EntryID
	}
	c.JSON(http.StatusCreated, response)
}

// listSales godoc
// @Summary List sales
// @Description Retrieves a paginated list of sales, newest first.
// @Tags sales
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	sales, nextToken, err := h.saleSvc.ListSales(c.Request.Context(), queryInt(c, "limit", 20), queryToken(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListSalesResponse{
		Sales:     dto.ToSaleResponses(sales),
		NextToken: nextToken,
	})
}

// getSale godoc
// @Summary Get a sale
// @Description Retrieves a sale with its line items.
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	sale, err := h.saleSvc.GetSaleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}
