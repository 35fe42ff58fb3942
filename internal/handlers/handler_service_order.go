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

// serviceOrderHandler handles HTTP requests for repair orders.
type serviceOrderHandler struct {
	orderSvc portssvc.ServiceOrderSvcFacade
}

func registerServiceOrderRoutes(rg *gin.RouterGroup, orderSvc portssvc.ServiceOrderSvcFacade, staff []domain.UserRole) {
	h := &serviceOrderHandler{orderSvc: orderSvc}

	orders := rg.Group("/service-orders", middleware.RequireRoles(staff...))
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PUT("/:id", h.updateOrder)
	}
}

// createOrder godoc
// @Summary Register a repair
// @Description Takes a device in for repair and assigns the tracking number the customer uses on the storefront.
// @Tags service-orders
// @Accept json
// @Produce json
// @Param order body dto.CreateServiceOrderRequest true "Device and complaint"
// @Success 201 {object} dto.ServiceOrderResponse
// @Security BearerAuth
// @Router /service-orders [post]
func (h *serviceOrderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.orderSvc.CreateOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create service order", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceOrderResponse(order))
}

// listOrders godoc
// @Summary List repairs
// @Tags service-orders
// @Produce json
// @Param status query string false "Filter by workflow status" Enums(RECEIVED, IN_PROGRESS, COMPLETED, DELIVERED, CANCELLED)
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ServiceOrderResponse
// @Security BearerAuth
// @Router /service-orders [get]
func (h *serviceOrderHandler) listOrders(c *gin.Context) {
	var status *domain.ServiceStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ServiceStatus(raw)
		status = &s
	}

	orders, err := h.orderSvc.ListOrders(c.Request.Context(), status, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]dto.ServiceOrderResponse, len(orders))
	for i := range orders {
		responses[i] = dto.ToServiceOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getOrder godoc
// @Summary Get a repair
// @Tags service-orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /service-orders/{id} [get]
func (h *serviceOrderHandler) getOrder(c *gin.Context) {
	order, err := h.orderSvc.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// updateOrder godoc
// @Summary Update a repair
// @Description Applies diagnosis and fee updates and moves the order through the workflow. Completing an order whose fee was not fully paid opens an installment ledger entry.
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body dto.UpdateServiceOrderRequest true "Fields to update"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} map[string]string "Invalid status transition"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /service-orders/{id} [put]
func (h *serviceOrderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.orderSvc.UpdateOrder(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		logger.Error("Failed to update service order", slog.String("order_id", c.Param("id")), slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(result.Order))
}
