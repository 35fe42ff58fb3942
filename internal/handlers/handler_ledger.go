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

// ledgerHandler handles HTTP requests for the installment ledger.
type ledgerHandler struct {
	ledgerSvc  portssvc.LedgerSvcFacade
	receiptSvc portssvc.ReceiptSvcFacade
}

func newLedgerHandler(ledgerSvc portssvc.LedgerSvcFacade, receiptSvc portssvc.ReceiptSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerSvc: ledgerSvc, receiptSvc: receiptSvc}
}

// registerLedgerRoutes registers all ledger routes. Only staff touch the
// ledger; members see their debt through the receipts handed to them.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade, receiptSvc portssvc.ReceiptSvcFacade, staff []domain.UserRole) {
	h := newLedgerHandler(ledgerSvc, receiptSvc)

	ledger := rg.Group("/ledger", middleware.RequireRoles(staff...))
	{
		ledger.POST("", h.createEntry)
		ledger.GET("", h.listEntries)
		ledger.GET("/:id", h.getEntry)
		ledger.POST("/:id/payments", h.addPayment)
		ledger.GET("/:id/receipt", h.getReceipt)
	}
}

// createEntry godoc
// @Summary Create a ledger entry
// @Description Records a new installment debt from a finalized sale or service transaction. Creation is idempotent on the entry ID: posting an existing ID returns the stored entry unchanged.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /ledger [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerSvc.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create ledger entry", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Retrieves a paginated list of ledger entries, newest first.
// @Tags ledger
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	limit := queryInt(c, "limit", 20)

	entries, nextToken, err := h.ledgerSvc.ListEntries(c.Request.Context(), limit, queryToken(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	})
}

// getEntry godoc
// @Summary Get a ledger entry
// @Description Retrieves a single ledger entry with its full payment history.
// @Tags ledger
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/{id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	entry, err := h.ledgerSvc.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// addPayment godoc
// @Summary Apply an installment payment
// @Description Applies one payment to the entry. Zero and negative amounts are rejected; overpayment is accepted and recorded in full while the remaining amount clamps at zero.
// @Tags ledger
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param payment body dto.AddPaymentRequest true "Payment amount"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/{id}/payments [post]
func (h *ledgerHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receivedByUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerSvc.AddPayment(c.Request.Context(), c.Param("id"), req, receivedByUserID)
	if err != nil {
		logger.Error("Failed to apply payment", slog.String("entry_id", c.Param("id")), slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// getReceipt godoc
// @Summary Download a payment receipt
// @Description Renders the entry's payment history as a printable PDF receipt.
// @Tags ledger
// @Produce application/pdf
// @Param id path string true "Entry ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/{id}/receipt [get]
func (h *ledgerHandler) getReceipt(c *gin.Context) {
	document, err := h.receiptSvc.RenderLedgerReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", document)
}
